package uuid

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"
)

func TestGenerator_NewV1(t *testing.T) {
	gen := NewGenerator()

	u, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}

	if v, ok := u.Version(); !ok || v != VersionTimeBased {
		t.Errorf("Version() = (%v, %v), want (%v, true)", v, ok, VersionTimeBased)
	}
	if v, ok := u.Variant(); !ok || v != VariantRFC4122 {
		t.Errorf("Variant() = (%v, %v), want (%v, true)", v, ok, VariantRFC4122)
	}
	if u.Timestamp() == 0 {
		t.Error("Timestamp() = 0, want non-zero")
	}
}

func TestGenerator_NewV1_Time(t *testing.T) {
	before := time.Now().Truncate(time.Second)

	u, err := NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}

	got := u.Time()
	if got.Before(before) || got.After(time.Now().Add(time.Second)) {
		t.Errorf("Time() = %v, want close to %v", got, before)
	}
}

func TestGenerator_NewV1_NodeEmbedding(t *testing.T) {
	node := Node{0x03, 0x2a, 0x35, 0x0d, 0x13, 0x80}
	gen := NewGeneratorWithNode(FixedNode(node))

	u, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}

	if !bytes.Equal(u[10:], node[:]) {
		t.Errorf("node bytes = %x, want %x", u[10:], node[:])
	}
}

func TestGenerator_NewV1_NodeUnavailable(t *testing.T) {
	gen := NewGeneratorWithNode(InterfaceNode{Interface: "no-such-interface"})

	_, err := gen.NewV1()
	if !errors.Is(err, ErrNodeUnavailable) {
		t.Errorf("NewV1() error = %v, want %v", err, ErrNodeUnavailable)
	}
}

func TestGenerator_NewV2(t *testing.T) {
	gen := NewGeneratorWithNode(FixedNode{1, 2, 3, 4, 5, 6})

	tests := []struct {
		name    string
		domain  Domain
		localID uint32
	}{
		{"person", DomainPerson, uint32(os.Getuid())},
		{"group", DomainGroup, uint32(os.Getgid())},
		{"org", DomainOrg, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := gen.NewV2(tt.domain)
			if err != nil {
				t.Fatalf("NewV2() error = %v", err)
			}

			if v, ok := u.Version(); !ok || v != VersionDCESecurity {
				t.Errorf("Version() = (%v, %v), want (%v, true)", v, ok, VersionDCESecurity)
			}
			if v, ok := u.Variant(); !ok || v != VariantRFC4122 {
				t.Errorf("Variant() = (%v, %v), want (%v, true)", v, ok, VariantRFC4122)
			}
			if u[9] != byte(tt.domain) {
				t.Errorf("clock_seq_low = %#x, want domain %#x", u[9], byte(tt.domain))
			}

			gotLocal := uint32(u[0])<<24 | uint32(u[1])<<16 | uint32(u[2])<<8 | uint32(u[3])
			if gotLocal != tt.localID {
				t.Errorf("local id = %d, want %d", gotLocal, tt.localID)
			}
		})
	}
}

func TestGenerator_NewFromTicks(t *testing.T) {
	gen := NewGeneratorWithNode(FixedNode{1, 2, 3, 4, 5, 6})

	ticks, err := Ticks(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Ticks() error = %v", err)
	}

	u, err := gen.NewFromTicks(VersionTimeBased, ticks)
	if err != nil {
		t.Fatalf("NewFromTicks() error = %v", err)
	}

	if got := u.Timestamp(); got != ticks {
		t.Errorf("Timestamp() = %#x, want %#x", got, ticks)
	}
	if got := u.Time(); !got.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v, want 2024-06-01T12:00:00Z", got)
	}
}

func TestGenerator_NewFromTicks_UnsupportedVersion(t *testing.T) {
	gen := NewGenerator()

	for _, v := range []Version{VersionNameBasedMD5, VersionRandom, VersionNameBasedSHA1} {
		if _, err := gen.NewFromTicks(v, 0x1234); !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("NewFromTicks(%v) error = %v, want %v", v, err, ErrUnsupportedVersion)
		}
	}
}

func TestGenerator_NewFromNode(t *testing.T) {
	gen := NewGenerator()
	node := Node{0x03, 0x2a, 0x35, 0x0d, 0x13, 0x80}

	u, err := gen.NewFromNode(VersionTimeBased, node)
	if err != nil {
		t.Fatalf("NewFromNode() error = %v", err)
	}

	if v, ok := u.Version(); !ok || v != VersionTimeBased {
		t.Errorf("Version() = (%v, %v), want (%v, true)", v, ok, VersionTimeBased)
	}
	if !bytes.Equal(u[10:], node[:]) {
		t.Errorf("node bytes = %x, want %x", u[10:], node[:])
	}
}

func TestGenerator_NewFromNode_UnsupportedVersion(t *testing.T) {
	gen := NewGenerator()

	if _, err := gen.NewFromNode(VersionRandom, Node{}); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("NewFromNode() error = %v, want %v", err, ErrUnsupportedVersion)
	}
}

func TestGenerator_NewV4(t *testing.T) {
	u, err := NewV4()
	if err != nil {
		t.Fatalf("NewV4() error = %v", err)
	}

	if v, ok := u.Version(); !ok || v != VersionRandom {
		t.Errorf("Version() = (%v, %v), want (%v, true)", v, ok, VersionRandom)
	}
	if v, ok := u.Variant(); !ok || v != VariantRFC4122 {
		t.Errorf("Variant() = (%v, %v), want (%v, true)", v, ok, VariantRFC4122)
	}
}

func TestGenerator_NewV4_DeterministicReader(t *testing.T) {
	// Even an all-zero random draw must carry the fixed nibbles.
	gen := NewGeneratorWithReader(bytes.NewReader(make([]byte, 16)))

	u, err := gen.NewV4()
	if err != nil {
		t.Fatalf("NewV4() error = %v", err)
	}

	want := "00000000-0000-4000-1000-000000000000"
	if got := u.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestGenerator_NewV4_Distinct(t *testing.T) {
	const n = 100

	seen := make(map[UUID]bool, n)
	for i := 0; i < n; i++ {
		u, err := NewV4()
		if err != nil {
			t.Fatalf("NewV4() error = %v", err)
		}
		if seen[u] {
			t.Fatalf("NewV4() repeated value %v", u)
		}
		seen[u] = true
	}
}

func TestGenerator_NewV1_DistinctClockSequences(t *testing.T) {
	gen := NewGeneratorWithNode(FixedNode{1, 2, 3, 4, 5, 6})

	a, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}
	b, err := gen.NewV1()
	if err != nil {
		t.Fatalf("NewV1() error = %v", err)
	}

	seqA := uint16(a[8]&0x0f)<<8 | uint16(a[9])
	seqB := uint16(b[8]&0x0f)<<8 | uint16(b[9])
	if seqA == seqB {
		t.Errorf("consecutive clock sequences identical: %d", seqA)
	}
}
