package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/lab2439/uuid"
)

// The node registry hands every generator instance in a fleet a stable
// 6-byte node identifier for time-based UUIDs. RFC 4122 wants the node to
// stay constant across restarts so that (timestamp, clock sequence, node)
// never repeats; machines without a usable hardware address get a random
// multicast value once and keep it via Zookeeper plus a local cache file.
const (
	ZKRootPath = "/uuid_nodereg" // Root path in Zookeeper for node registration

	heartbeatInterval = 3 * time.Second
)

// Registry maintains this instance's node assignment and its Zookeeper session.
type Registry struct {
	mu       sync.Mutex // protects lastTime against concurrent heartbeats
	lastTime int64      // last wall-clock millisecond this node reported
	node     uuid.Node  // assigned 6-byte node identifier

	zkClient *zk.Conn // Zookeeper client connection
	service  string   // Service name (affects ZK node path)
	port     int      // Port (used to derive node uniqueness)
}

// NodeInfo represents info stored for each instance in both ZK and the cache file.
type NodeInfo struct {
	Node       string `json:"node"`        // Hex form of the 6 node bytes
	LastTime   int64  `json:"last_time"`   // Last timestamp this instance was active
	CreateTime int64  `json:"create_time"` // Creation timestamp
}

// NewRegistry connects to Zookeeper and recovers or assigns a node identifier.
func NewRegistry(zkServers []string, serviceName string, port int) (*Registry, error) {
	reg := &Registry{
		service: serviceName,
		port:    port,
	}

	c, _, err := zk.Connect(zkServers, time.Second*5)
	if err != nil {
		return nil, fmt.Errorf("connect zk failed: %v", err)
	}
	reg.zkClient = c

	node, err := reg.registerOrRecover()
	if err != nil {
		return nil, err
	}
	reg.node = node
	log.Printf("node registry initialized with node: %s", node)

	// Periodically upload heartbeat and update state in Zookeeper and the cache
	go reg.heartbeat()
	return reg, nil
}

// Node returns the stable node identifier assigned to this instance.
func (r *Registry) Node() uuid.Node {
	return r.node
}

// registerOrRecover recovers the node bytes from Zookeeper or the local
// cache, or assigns fresh random multicast bytes when neither knows this
// instance yet.
func (r *Registry) registerOrRecover() (uuid.Node, error) {
	servicePath := fmt.Sprintf("%s/%s", ZKRootPath, r.service)
	r.ensurePath(ZKRootPath)
	r.ensurePath(servicePath)

	nodeKey := r.nodeKey()

	var info NodeInfo

	exists, _, err := r.zkClient.Exists(nodeKey)
	if err != nil {
		return uuid.Node{}, fmt.Errorf("check node existence failed: %v", err)
	}

	now := time.Now().UnixMilli()

	if exists {
		data, _, err := r.zkClient.Get(nodeKey)
		if err != nil {
			return uuid.Node{}, fmt.Errorf("get node info failed: %v", err)
		}
		if err := json.Unmarshal(data, &info); err != nil {
			return uuid.Node{}, fmt.Errorf("decode node info failed: %v", err)
		}

		if info, err = refreshRecovered(info, now); err != nil {
			return uuid.Node{}, err
		}
		log.Printf("recovered node %s from zk", info.Node)
	} else if cached, err := r.loadLocalCache(); err == nil {
		if info, err = refreshRecovered(cached, now); err != nil {
			return uuid.Node{}, err
		}
		log.Printf("recovered node %s from local cache", info.Node)
	} else {
		// First registration: draw random multicast bytes so the value can
		// never collide with a registered IEEE 802 address.
		fresh, err := uuid.RandomNode{}.NodeID()
		if err != nil {
			return uuid.Node{}, fmt.Errorf("draw random node failed: %v", err)
		}
		info = NodeInfo{
			Node:       hex.EncodeToString(fresh[:]),
			LastTime:   now,
			CreateTime: now,
		}
	}

	node, err := decodeNode(info.Node)
	if err != nil {
		return uuid.Node{}, err
	}

	// Register or refresh the assignment in Zookeeper
	data, _ := json.Marshal(info)
	if exists {
		_, err = r.zkClient.Set(nodeKey, data, -1)
	} else {
		_, err = r.zkClient.Create(nodeKey, data, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return uuid.Node{}, fmt.Errorf("register node info failed: %v", err)
	}

	r.lastTime = info.LastTime
	r.saveLocalCache(info)
	return node, nil
}

// heartbeat periodically refreshes this instance's info in Zookeeper and the local cache.
func (r *Registry) heartbeat() {
	ticker := time.NewTicker(heartbeatInterval)

	for range ticker.C {
		now := time.Now().UnixMilli()

		r.mu.Lock()
		if now < r.lastTime {
			r.mu.Unlock()
			log.Printf("clock rollback detected during heartbeat! local: %d, last: %d", now, r.lastTime)
			continue
		}
		r.lastTime = now
		r.mu.Unlock()

		info := NodeInfo{
			Node:     hex.EncodeToString(r.node[:]),
			LastTime: now,
		}
		data, _ := json.Marshal(info)

		// Ignore errors, since Zookeeper may occasionally be unavailable
		r.zkClient.Set(r.nodeKey(), data, -1)

		r.saveLocalCache(info)
	}
}

func (r *Registry) nodeKey() string {
	return fmt.Sprintf("%s/%s/node-%d", ZKRootPath, r.service, r.port)
}

// ensurePath creates a ZK path if needed.
func (r *Registry) ensurePath(path string) {
	exists, _, _ := r.zkClient.Exists(path)
	if !exists {
		r.zkClient.Create(path, []byte{}, 0, zk.WorldACL(zk.PermAll))
	}
}

func (r *Registry) cacheFile() string {
	return fmt.Sprintf(".nodereg_cache_%d", r.port)
}

// saveLocalCache writes the given NodeInfo to a file for local recovery.
func (r *Registry) saveLocalCache(info NodeInfo) {
	data, _ := json.Marshal(info)
	os.WriteFile(r.cacheFile(), data, 0644)
}

// loadLocalCache reads a previously saved NodeInfo back.
func (r *Registry) loadLocalCache() (NodeInfo, error) {
	var info NodeInfo
	data, err := os.ReadFile(r.cacheFile())
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, err
	}
	return info, nil
}

// refreshRecovered validates a recovered record against the current clock
// and stamps it with the new heartbeat time, so a stale timestamp is never
// published back.
func refreshRecovered(info NodeInfo, now int64) (NodeInfo, error) {
	if now < info.LastTime {
		return info, fmt.Errorf("clock moved backwards: %d < %d", now, info.LastTime)
	}
	info.LastTime = now
	return info, nil
}

func decodeNode(s string) (uuid.Node, error) {
	var node uuid.Node
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 6 {
		return node, fmt.Errorf("invalid stored node %q", s)
	}
	copy(node[:], raw)
	return node, nil
}

func main() {
	// Please modify these with your real Zookeeper servers before use.
	reg, err := NewRegistry([]string{"127.0.0.1:2181"}, "uuid-demo", 8080)
	if err != nil {
		log.Fatalf("init registry: %v", err)
	}

	gen := uuid.NewGeneratorWithNode(uuid.FixedNode(reg.Node()))

	for i := 0; i < 5; i++ {
		id, err := gen.NewV1()
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		fmt.Printf("%s  node=%s ticks=%d\n", id, reg.Node(), id.Timestamp())
		time.Sleep(100 * time.Millisecond)
	}
}
