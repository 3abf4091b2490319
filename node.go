package uuid

import (
	"crypto/rand"
	"io"
	"net"
)

// Node is the trailing 6-byte identifier of a time-based UUID, typically an
// IEEE 802 hardware address.
type Node [6]byte

// String returns the node in hex notation, e.g. 00-2a-35-0d-13-80
func (n Node) String() string {
	return n.encode(hexLower)
}

// UpperString returns the node in uppercase hex notation, e.g. 00-2A-35-0D-13-80
func (n Node) UpperString() string {
	return n.encode(hexUpper)
}

func (n Node) encode(digits string) string {
	var buf [17]byte
	j := 0
	for i, b := range n {
		if i > 0 {
			buf[j] = '-'
			j++
		}
		buf[j] = digits[b>>4]
		buf[j+1] = digits[b&0x0f]
		j += 2
	}
	return string(buf[:])
}

// NodeProvider resolves the node identifier embedded in time-based UUIDs.
// Implementations: InterfaceNode, FixedNode, RandomNode.
type NodeProvider interface {
	NodeID() (Node, error)
}

// InterfaceNode resolves the node from a hardware network address.
type InterfaceNode struct {
	// Interface restricts the lookup to the named interface. Empty means
	// the first interface with a usable hardware address.
	Interface string

	// RandomFallback substitutes six random bytes with the multicast bit
	// set, as RFC 4122 section 4.5 mandates for hosts without a stable
	// hardware address, instead of returning ErrNodeUnavailable.
	RandomFallback bool
}

// NodeID returns the first usable hardware address. Without a fallback
// policy it fails with ErrNodeUnavailable when none is found.
func (p InterfaceNode) NodeID() (Node, error) {
	ifaces, err := net.Interfaces()
	if err == nil {
		for _, iface := range ifaces {
			if p.Interface != "" && iface.Name != p.Interface {
				continue
			}
			if len(iface.HardwareAddr) >= 6 {
				var n Node
				copy(n[:], iface.HardwareAddr)
				return n, nil
			}
		}
	}
	if p.RandomFallback {
		return RandomNode{}.NodeID()
	}
	return Node{}, ErrNodeUnavailable
}

// FixedNode is a caller-supplied node value. It never fails.
type FixedNode Node

// NodeID returns the fixed bytes unchanged
func (p FixedNode) NodeID() (Node, error) {
	return Node(p), nil
}

// RandomNode draws six random bytes and sets the multicast bit so the
// result can never collide with a registered IEEE 802 address.
type RandomNode struct {
	// Reader overrides crypto/rand as the entropy source. This is
	// primarily useful for testing with deterministic random sources.
	Reader io.Reader
}

// NodeID returns a fresh random multicast node value
func (p RandomNode) NodeID() (Node, error) {
	r := p.Reader
	if r == nil {
		r = rand.Reader
	}
	var n Node
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return Node{}, err
	}
	n[0] |= 0x01
	return n, nil
}
