package uuid

import (
	"crypto/rand"
	"io"
	"os"
)

// Generator produces UUIDs from a random source and a node provider. The
// zero-value dependencies are crypto/rand and a hardware-address lookup with
// the RFC 4122 random-multicast fallback; both are injectable for testing.
// Generators share the single process-wide clock sequence, so concurrent
// use, including across generators, stays safe without further locking.
type Generator struct {
	randReader io.Reader
	node       NodeProvider
}

// NewGenerator creates a generator with crypto/rand as the random source
// and a hardware-address node provider that falls back to random multicast
// bytes.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		node:       InterfaceNode{RandomFallback: true},
	}
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
		node:       InterfaceNode{RandomFallback: true},
	}
}

// NewGeneratorWithNode creates a generator with a custom node provider.
func NewGeneratorWithNode(p NodeProvider) *Generator {
	return &Generator{
		randReader: rand.Reader,
		node:       p,
	}
}

// NewV1 generates a time-based UUID from the current time, the next clock
// sequence value and the generator's node provider.
func (g *Generator) NewV1() (UUID, error) {
	ticks, err := Now()
	if err != nil {
		return Nil, err
	}
	node, err := g.node.NodeID()
	if err != nil {
		return Nil, err
	}
	return timeLayout(VersionTimeBased, ticks, node).Bytes(), nil
}

// NewV2 generates a DCE-security UUID for the given domain. The low field
// of the timestamp is replaced by a local identifier: the POSIX UID for
// DomainPerson, the GID for DomainGroup and zero for DomainOrg. The domain
// itself occupies the low clock sequence byte.
func (g *Generator) NewV2(d Domain) (UUID, error) {
	ticks, err := Now()
	if err != nil {
		return Nil, err
	}
	node, err := g.node.NodeID()
	if err != nil {
		return Nil, err
	}
	l := timeLayout(VersionDCESecurity, ticks, node)
	switch d {
	case DomainPerson:
		l.TimeLow = uint32(os.Getuid())
	case DomainGroup:
		l.TimeLow = uint32(os.Getgid())
	default:
		l.TimeLow = 0
	}
	l.ClockSeqLow = byte(d)
	return l.Bytes(), nil
}

// NewFromTicks generates a UUID from a caller-supplied 60-bit gregorian
// tick count. Only the time-based and DCE-security versions carry a
// timestamp; any other version fails with ErrUnsupportedVersion.
func (g *Generator) NewFromTicks(v Version, ticks uint64) (UUID, error) {
	if v != VersionTimeBased && v != VersionDCESecurity {
		return Nil, ErrUnsupportedVersion
	}
	node, err := g.node.NodeID()
	if err != nil {
		return Nil, err
	}
	return timeLayout(v, ticks&ticksMask, node).Bytes(), nil
}

// NewFromNode generates a UUID with a caller-supplied node value and the
// current time. Only the time-based and DCE-security versions carry a node;
// any other version fails with ErrUnsupportedVersion.
func (g *Generator) NewFromNode(v Version, node Node) (UUID, error) {
	if v != VersionTimeBased && v != VersionDCESecurity {
		return Nil, ErrUnsupportedVersion
	}
	ticks, err := Now()
	if err != nil {
		return Nil, err
	}
	return timeLayout(v, ticks, node).Bytes(), nil
}

// NewV4 generates a random UUID: 16 bytes from the generator's random
// source with the version and variant nibbles overwritten.
func (g *Generator) NewV4() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(g.randReader, u[:]); err != nil {
		return Nil, err
	}
	u[6] = u[6]&0x0f | byte(VersionRandom)<<4
	u[8] = u[8]&0x0f | byte(VariantRFC4122)<<4
	return u, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(uuid.NewV4())
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}

// defaultGenerator is the package-level generator used by the NewV*
// convenience functions
var defaultGenerator = NewGenerator()

// NewV1 generates a time-based UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// NewV2 generates a DCE-security UUID using the default generator.
func NewV2(d Domain) (UUID, error) {
	return defaultGenerator.NewV2(d)
}

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}
