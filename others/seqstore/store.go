package main

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lab2439/uuid"
)

// The sequence store keeps RFC 4122 generator state in stable storage
// (section 4.2.1 of the RFC): the node identifier, the clock sequence and
// the timestamp of the last checkpoint, keyed by generator identity. On
// every startup the stored clock sequence is bumped when the node changed
// or the clock appears to have moved backwards since the last checkpoint,
// which is exactly the situation the clock sequence exists to disambiguate.

// GeneratorState is one row of stable storage.
type GeneratorState struct {
	Owner     string    // generator identity, e.g. hostname
	Node      uuid.Node // 6-byte node identifier
	ClockSeq  uint16    // 14-bit clock sequence
	LastTicks uint64    // gregorian tick count of the last checkpoint
}

// StateDAO encapsulates all database operations on the uuid_state table.
type StateDAO struct {
	db *sql.DB
}

// NewStateDAO creates a new DAO with the provided database DSN.
func NewStateDAO(dsn string) (*StateDAO, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &StateDAO{db: db}, nil
}

// Acquire loads (or creates) the stable state for owner, reconciling it
// against the current node and clock inside a single transaction so that
// two racing instances of the same owner cannot both keep the old clock
// sequence.
func (dao *StateDAO) Acquire(ctx context.Context, owner string, node uuid.Node) (GeneratorState, error) {
	var state GeneratorState

	nowTicks, err := uuid.Now()
	if err != nil {
		return state, err
	}

	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return state, err
	}
	defer tx.Rollback()

	var (
		nodeHex   string
		clockSeq  uint16
		lastTicks uint64
	)
	err = tx.QueryRowContext(ctx,
		"SELECT node, clock_seq, last_ticks FROM uuid_state WHERE owner = ? FOR UPDATE",
		owner).Scan(&nodeHex, &clockSeq, &lastTicks)

	switch {
	case err == sql.ErrNoRows:
		// First run for this owner: seed the clock sequence from the
		// library's process-wide counter.
		clockSeq = uuid.ClockSequence() & 0x3fff
		_, err = tx.ExecContext(ctx,
			"INSERT INTO uuid_state (owner, node, clock_seq, last_ticks) VALUES (?, ?, ?, ?)",
			owner, hex.EncodeToString(node[:]), clockSeq, nowTicks)
		if err != nil {
			return state, fmt.Errorf("insert state: %w", err)
		}

	case err != nil:
		return state, fmt.Errorf("load state: %w", err)

	default:
		stored, derr := decodeNode(nodeHex)
		if derr != nil {
			return state, derr
		}

		// Node change or clock regression since the last checkpoint means
		// previously issued (timestamp, node) pairs could repeat; advance
		// the clock sequence to keep the new identifiers distinct.
		if stored != node || nowTicks < lastTicks {
			clockSeq = (clockSeq + 1) & 0x3fff
			log.Printf("advancing clock sequence for %s to %d (node changed: %v, clock regressed: %v)",
				owner, clockSeq, stored != node, nowTicks < lastTicks)
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE uuid_state SET node = ?, clock_seq = ?, last_ticks = ? WHERE owner = ?",
			hex.EncodeToString(node[:]), clockSeq, nowTicks, owner)
		if err != nil {
			return state, fmt.Errorf("update state: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return state, err
	}

	return GeneratorState{
		Owner:     owner,
		Node:      node,
		ClockSeq:  clockSeq,
		LastTicks: nowTicks,
	}, nil
}

// Checkpoint records the highest timestamp issued so far, so the next
// startup can detect clock regression.
func (dao *StateDAO) Checkpoint(ctx context.Context, owner string, ticks uint64) error {
	_, err := dao.db.ExecContext(ctx,
		"UPDATE uuid_state SET last_ticks = ? WHERE owner = ? AND last_ticks < ?",
		ticks, owner, ticks)
	return err
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
	// Please modify this DSN with your real DB credentials before use.
	//
	// Expected schema:
	//	CREATE TABLE uuid_state (
	//		owner      VARCHAR(128) PRIMARY KEY,
	//		node       CHAR(12)        NOT NULL,
	//		clock_seq  SMALLINT UNSIGNED NOT NULL,
	//		last_ticks BIGINT UNSIGNED NOT NULL
	//	);
	dsn := "lzww:123456@tcp(127.0.0.1:3306)/test_db?parseTime=true"

	dao, err := NewStateDAO(dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	owner, err := os.Hostname()
	if err != nil {
		owner = "unknown"
	}

	node, err := (uuid.InterfaceNode{RandomFallback: true}).NodeID()
	if err != nil {
		log.Fatalf("resolve node: %v", err)
	}

	ctx := context.Background()

	state, err := dao.Acquire(ctx, owner, node)
	if err != nil {
		log.Fatalf("acquire state: %v", err)
	}
	log.Printf("state for %s: node=%s clock_seq=%d", state.Owner, state.Node, state.ClockSeq)

	gen := uuid.NewGeneratorWithNode(uuid.FixedNode(state.Node))

	var last uint64
	for i := 0; i < 5; i++ {
		id, err := gen.NewV1()
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		last = id.Timestamp()
		fmt.Printf("%s  ticks=%d\n", id, last)
		time.Sleep(100 * time.Millisecond)
	}

	if err := dao.Checkpoint(ctx, owner, last); err != nil {
		log.Fatalf("checkpoint: %v", err)
	}
	log.Printf("checkpointed %s at %d", owner, last)
}
