package uuid

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes a 32-character hexadecimal string to a UUID
func DecodeFromHex(s string) (UUID, error) {
	var u UUID
	if len(s) != 32 {
		return u, ErrInvalidFormat
	}
	if _, err := hex.Decode(u[:], []byte(s)); err != nil {
		return u, ErrInvalidFormat
	}
	return u, nil
}

// DecodeFromBase64 decodes a base64 string to a UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	var u UUID
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return u, ErrInvalidFormat
	}
	if len(data) != 16 {
		return u, ErrInvalidLength
	}
	copy(u[:], data)
	return u, nil
}

// DecodeFromBase64Std decodes a standard base64 string to a UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	var u UUID
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return u, ErrInvalidFormat
	}
	if len(data) != 16 {
		return u, ErrInvalidLength
	}
	copy(u[:], data)
	return u, nil
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != 16 {
		return u, ErrInvalidLength
	}
	copy(u[:], b)
	return u, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	u, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeCanonical(buf[:], u, hexLower)
	return buf[:], nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface. Only raw 16-byte values (and
// NULL) are accepted; the canonical text form is write-only in this package,
// so columns meant to round-trip must store the binary form.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) != 16 {
			return ErrInvalidLength
		}
		copy(u[:], src)
		return nil
	default:
		return fmt.Errorf("uuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface, storing the raw 16 bytes so
// that Scan can read the column back.
func (u UUID) Value() (driver.Value, error) {
	return u[:], nil
}
