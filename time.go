package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// gregorianToUnixTicks is the number of 100 ns intervals between the
// gregorian reform epoch (1582-10-15T00:00:00Z) and the Unix epoch.
const gregorianToUnixTicks = 0x01B21DD213814000

// ticksMask keeps the low 60 bits of a tick count, the width of the
// timestamp field.
const ticksMask = 1<<60 - 1

// Ticks converts t into a 60-bit count of 100 ns intervals since the
// gregorian reform epoch. Times before the Unix epoch cannot be represented
// and return ErrClockOverflow.
func Ticks(t time.Time) (uint64, error) {
	nano := t.UnixNano()
	if nano < 0 {
		return 0, ErrClockOverflow
	}
	ticks := uint64(nano)/100 + gregorianToUnixTicks
	if ticks < gregorianToUnixTicks {
		return 0, ErrClockOverflow
	}
	return ticks & ticksMask, nil
}

// Now returns the current time as a gregorian tick count.
func Now() (uint64, error) {
	return Ticks(time.Now())
}

// The clock sequence is a process-wide counter used to disambiguate
// identifiers generated while the clock is set backwards. It is seeded
// exactly once, on first use, from crypto/rand and only ever advances by
// atomic increment afterwards; it is never re-seeded for the lifetime of
// the process.
var (
	clockSeqOnce sync.Once
	clockSeq     uint32
)

func seedClockSeq() {
	var b [2]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err == nil {
		atomic.StoreUint32(&clockSeq, uint32(binary.BigEndian.Uint16(b[:])))
		return
	}
	// Entropy source failed; a time-derived seed still satisfies the
	// uniqueness role of the counter.
	atomic.StoreUint32(&clockSeq, uint32(time.Now().UnixNano()))
}

// ClockSequence returns the next value of the process-wide clock sequence.
// Concurrent callers always observe distinct values modulo wraparound.
func ClockSequence() uint16 {
	clockSeqOnce.Do(seedClockSeq)
	return uint16(atomic.AddUint32(&clockSeq, 1) - 1)
}
