package uuid

import "errors"

var (
	// ErrInvalidLength indicates that a byte slice is not 16 bytes long
	ErrInvalidLength = errors.New("uuid: invalid length (expected 16 bytes)")

	// ErrInvalidFormat indicates that an encoded form could not be decoded
	ErrInvalidFormat = errors.New("uuid: invalid encoded form")

	// ErrUnsupportedVersion indicates that a timestamp- or node-based entry
	// point was invoked with a version other than time-based or DCE security
	ErrUnsupportedVersion = errors.New("uuid: version is not time-based or DCE security")

	// ErrNodeUnavailable indicates that no usable hardware address was found
	// and no fallback policy was configured
	ErrNodeUnavailable = errors.New("uuid: no hardware address available")

	// ErrClockOverflow indicates that a point in time cannot be represented
	// as a 100-nanosecond gregorian tick count
	ErrClockOverflow = errors.New("uuid: timestamp outside representable range")
)
