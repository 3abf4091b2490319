package uuid

import "encoding/binary"

// Layout is the staging structure for the six RFC 4122 bit-fields before
// they are serialized into a UUID. The version tag lives in the top nibble
// of TimeHiAndVersion and the variant tag in the top nibble of
// ClockSeqHiAndReserved.
type Layout struct {
	// TimeLow is the low 32 bits of the 60-bit timestamp
	TimeLow uint32
	// TimeMid is the middle 16 bits of the timestamp
	TimeMid uint16
	// TimeHiAndVersion is the high 12 bits of the timestamp multiplexed
	// with the 4-bit version
	TimeHiAndVersion uint16
	// ClockSeqHiAndReserved is the high 4 bits of the clock sequence
	// multiplexed with the 4-bit variant
	ClockSeqHiAndReserved byte
	// ClockSeqLow is the low 8 bits of the clock sequence, or the domain
	// byte for DCE-security UUIDs
	ClockSeqLow byte
	// Node is the trailing 6-byte node identifier
	Node Node
}

// Bytes serializes the six fields in big-endian declaration order into the
// fixed 16-byte form.
func (l Layout) Bytes() UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], l.TimeLow)
	binary.BigEndian.PutUint16(u[4:6], l.TimeMid)
	binary.BigEndian.PutUint16(u[6:8], l.TimeHiAndVersion)
	u[8] = l.ClockSeqHiAndReserved
	u[9] = l.ClockSeqLow
	copy(u[10:], l.Node[:])
	return u
}

// Fields returns the four logical RFC 4122 fields, with the clock sequence
// combined into a single 16-bit value, plus the node as a 48-bit integer.
func (l Layout) Fields() (timeLow uint32, timeMid, timeHiAndVersion, clockSeq uint16, node uint64) {
	timeLow = l.TimeLow
	timeMid = l.TimeMid
	timeHiAndVersion = l.TimeHiAndVersion
	clockSeq = uint16(l.ClockSeqHiAndReserved)<<8 | uint16(l.ClockSeqLow)
	node = uint64(l.Node[0])<<40 |
		uint64(l.Node[1])<<32 |
		uint64(l.Node[2])<<24 |
		uint64(l.Node[3])<<16 |
		uint64(l.Node[4])<<8 |
		uint64(l.Node[5])
	return
}

// Timestamp reassembles the 60-bit tick count from the three time fields,
// masking off the version nibble.
func (l Layout) Timestamp() uint64 {
	return uint64(l.TimeHiAndVersion&0x0fff)<<48 |
		uint64(l.TimeMid)<<32 |
		uint64(l.TimeLow)
}

// timeLayout stages a time-based UUID of the given version, drawing the
// next value from the process-wide clock sequence.
func timeLayout(v Version, ticks uint64, node Node) Layout {
	seq := ClockSequence()
	return Layout{
		TimeLow:               uint32(ticks),
		TimeMid:               uint16(ticks >> 32),
		TimeHiAndVersion:      uint16(ticks>>48)&0x0fff | uint16(v)<<12,
		ClockSeqHiAndReserved: byte(seq>>8)&0x0f | byte(VariantRFC4122)<<4,
		ClockSeqLow:           byte(seq),
		Node:                  node,
	}
}
