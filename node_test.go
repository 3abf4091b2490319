package uuid

import (
	"bytes"
	"errors"
	"testing"
)

func TestNode_String(t *testing.T) {
	n := Node{0x00, 0x2a, 0x35, 0x0d, 0x13, 0x80}
	want := "00-2a-35-0d-13-80"
	if got := n.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}

	wantUpper := "00-2A-35-0D-13-80"
	if got := n.UpperString(); got != wantUpper {
		t.Errorf("UpperString() = %v, want %v", got, wantUpper)
	}
}

func TestFixedNode(t *testing.T) {
	p := FixedNode{0x03, 0x2a, 0x35, 0x0d, 0x13, 0x80}
	n, err := p.NodeID()
	if err != nil {
		t.Fatalf("NodeID() error = %v", err)
	}
	if n != Node(p) {
		t.Errorf("NodeID() = %v, want %v", n, Node(p))
	}
}

func TestRandomNode_MulticastBit(t *testing.T) {
	// A deterministic all-zero source makes the bit overwrite visible.
	p := RandomNode{Reader: bytes.NewReader(make([]byte, 6))}
	n, err := p.NodeID()
	if err != nil {
		t.Fatalf("NodeID() error = %v", err)
	}
	if n[0]&0x01 == 0 {
		t.Errorf("NodeID() = %v, multicast bit not set", n)
	}
	if n != (Node{0x01, 0, 0, 0, 0, 0}) {
		t.Errorf("NodeID() = %v, want 01-00-00-00-00-00", n)
	}
}

func TestRandomNode_Distinct(t *testing.T) {
	var p RandomNode
	a, err := p.NodeID()
	if err != nil {
		t.Fatalf("NodeID() error = %v", err)
	}
	b, err := p.NodeID()
	if err != nil {
		t.Fatalf("NodeID() error = %v", err)
	}
	if a == b {
		t.Errorf("two random nodes are identical: %v", a)
	}
}

func TestInterfaceNode_Unavailable(t *testing.T) {
	p := InterfaceNode{Interface: "no-such-interface"}
	_, err := p.NodeID()
	if !errors.Is(err, ErrNodeUnavailable) {
		t.Errorf("NodeID() error = %v, want %v", err, ErrNodeUnavailable)
	}
}

func TestInterfaceNode_UnavailableWithFallback(t *testing.T) {
	p := InterfaceNode{Interface: "no-such-interface", RandomFallback: true}
	n, err := p.NodeID()
	if err != nil {
		t.Fatalf("NodeID() error = %v", err)
	}
	if n[0]&0x01 == 0 {
		t.Errorf("fallback node %v lacks the multicast bit", n)
	}
}
