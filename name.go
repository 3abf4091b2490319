package uuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
	"io"
)

// NewV3 generates a name-based UUID by hashing the namespace and name with
// MD5. Generation is deterministic: the same (space, name) pair always
// yields the same UUID.
func NewV3(space UUID, name string) UUID {
	return hashed(md5.New(), VersionNameBasedMD5, space, name)
}

// NewV5 generates a name-based UUID by hashing the namespace and name with
// SHA-1. Like NewV3 it is deterministic.
func NewV5(space UUID, name string) UUID {
	return hashed(sha1.New(), VersionNameBasedSHA1, space, name)
}

// hashed digests the canonical lowercase text of the namespace followed by
// the name, keeps the first 16 bytes and overwrites the version and variant
// nibbles in place.
func hashed(h hash.Hash, v Version, space UUID, name string) UUID {
	io.WriteString(h, space.String())
	io.WriteString(h, name)
	var u UUID
	copy(u[:], h.Sum(nil))
	u[6] = u[6]&0x0f | byte(v)<<4
	u[8] = u[8]&0x0f | byte(VariantRFC4122)<<4
	return u
}
