package uuid

import (
	"encoding/binary"
	"strings"
	"time"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// The UUID is a 128-bit (16 byte) value; equality and ordering are byte-wise.
type UUID [16]byte

// Version identifies the generation algorithm, stored in the most
// significant 4 bits of octet 6.
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
)

// Variant identifies the identifier family, stored in the most significant
// 4 bits of octet 8. This package uses a full-nibble encoding: the RFC 4122
// family is the literal nibble value 1, not the variable-width 10x bit
// prefix, so generated values are not bit-compatible with implementations
// that follow RFC 4122 section 4.1.1 exactly.
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Domain is the DCE security-domain a version 2 UUID is relative to.
type Domain byte

const (
	DomainPerson Domain = iota
	DomainGroup
	DomainOrg
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// Name-space IDs from RFC 4122 Appendix C, for use with NewV3 and NewV5.
var (
	// NamespaceDNS is the name space for fully-qualified domain names
	NamespaceDNS = UUID{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}

	// NamespaceURL is the name space for URLs
	NamespaceURL = UUID{0x6b, 0xa7, 0xb8, 0x11, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}

	// NamespaceOID is the name space for ISO object identifiers
	NamespaceOID = UUID{0x6b, 0xa7, 0xb8, 0x12, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}

	// NamespaceX500 is the name space for X.500 distinguished names
	NamespaceX500 = UUID{0x6b, 0xa7, 0xb8, 0x14, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
)

// Version returns the version tag of the UUID. The second return value is
// false when the nibble does not name one of the five defined versions.
func (u UUID) Version() (Version, bool) {
	v := Version(u[6] >> 4)
	switch v {
	case VersionTimeBased, VersionDCESecurity, VersionNameBasedMD5, VersionRandom, VersionNameBasedSHA1:
		return v, true
	}
	return 0, false
}

// Variant returns the variant tag of the UUID. The second return value is
// false when the nibble is outside the four defined families.
func (u UUID) Variant() (Variant, bool) {
	v := Variant(u[8] >> 4)
	if v <= VariantFuture {
		return v, true
	}
	return 0, false
}

// Timestamp returns the 60-bit count of 100 ns gregorian-epoch ticks
// embedded in a time-based or DCE-security UUID, masking off the version
// nibble. It returns 0 for every other version.
func (u UUID) Timestamp() uint64 {
	v, ok := u.Version()
	if !ok || (v != VersionTimeBased && v != VersionDCESecurity) {
		return 0
	}
	return uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48 |
		uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
		uint64(binary.BigEndian.Uint32(u[0:4]))
}

// Time returns the embedded timestamp as a time.Time for time-based and
// DCE-security UUIDs, and the zero time for every other version.
func (u UUID) Time() time.Time {
	ticks := u.Timestamp()
	if ticks < gregorianToUnixTicks {
		return time.Time{}
	}
	return time.Unix(0, int64((ticks-gregorianToUnixTicks)*100))
}

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String returns the canonical lowercase representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], u, hexLower)
	return string(buf[:])
}

// UpperString returns the canonical uppercase representation of the UUID
func (u UUID) UpperString() string {
	var buf [36]byte
	encodeCanonical(buf[:], u, hexUpper)
	return string(buf[:])
}

// URN returns the UUID as a uniform resource name, e.g.
// urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479
func (u UUID) URN() string {
	return "urn:uuid:" + u.String()
}

// encodeCanonical writes the hyphenated 8-4-4-4-12 form into dst (36 bytes)
func encodeCanonical(dst []byte, u UUID, digits string) {
	j := 0
	for i, b := range u {
		switch i {
		case 4, 6, 8, 10:
			dst[j] = '-'
			j++
		}
		dst[j] = digits[b>>4]
		dst[j+1] = digits[b&0x0f]
		j += 2
	}
}

// IsValid reports whether s is a canonical 8-4-4-4-12 hex rendering of a
// UUID, case-insensitively and optionally prefixed with "urn:uuid:". The
// version digit must be in the range 0-5. The variant bits are not checked,
// so IsValid is a format predicate rather than a full RFC 4122 conformance
// validator.
func IsValid(s string) bool {
	if len(s) == 45 && strings.EqualFold(s[:9], "urn:uuid:") {
		s = s[9:]
	}
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	for i := 0; i < 36; i++ {
		switch i {
		case 8, 13, 18, 23:
			continue
		}
		if !isHexDigit(s[i]) {
			return false
		}
	}
	// The first digit of the third group carries the version.
	return s[14] >= '0' && s[14] <= '5'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
