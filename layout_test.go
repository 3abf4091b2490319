package uuid

import "testing"

func TestLayout_Bytes(t *testing.T) {
	l := Layout{
		TimeLow:               0xf47ac10b,
		TimeMid:               0x58cc,
		TimeHiAndVersion:      0x1372,
		ClockSeqHiAndReserved: 0x15,
		ClockSeqLow:           0x67,
		Node:                  Node{0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79},
	}
	want := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x13, 0x72, 0x15, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	if got := l.Bytes(); got != want {
		t.Errorf("Bytes() = %v, want %v", got, want)
	}
}

func TestLayout_Fields(t *testing.T) {
	l := Layout{
		TimeLow:               0x11223344,
		TimeMid:               0x5566,
		TimeHiAndVersion:      0x1788,
		ClockSeqHiAndReserved: 0x19,
		ClockSeqLow:           0xaa,
		Node:                  Node{0x00, 0x2a, 0x35, 0x0d, 0x13, 0x80},
	}

	timeLow, timeMid, timeHi, clockSeq, node := l.Fields()
	if timeLow != 0x11223344 {
		t.Errorf("timeLow = %#x, want 0x11223344", timeLow)
	}
	if timeMid != 0x5566 {
		t.Errorf("timeMid = %#x, want 0x5566", timeMid)
	}
	if timeHi != 0x1788 {
		t.Errorf("timeHiAndVersion = %#x, want 0x1788", timeHi)
	}
	if clockSeq != 0x19aa {
		t.Errorf("clockSeq = %#x, want 0x19aa", clockSeq)
	}
	if node != 0x002a350d1380 {
		t.Errorf("node = %#x, want 0x002a350d1380", node)
	}
}

func TestLayout_Timestamp(t *testing.T) {
	// 60-bit timestamp split across the three time fields, version nibble
	// masked off on reassembly.
	const ticks = 0x0ffeddccbbaa9988

	l := Layout{
		TimeLow:          uint32(ticks & 0xffffffff),
		TimeMid:          uint16(ticks >> 32 & 0xffff),
		TimeHiAndVersion: uint16(ticks>>48)&0x0fff | uint16(VersionTimeBased)<<12,
	}

	if got := l.Timestamp(); got != ticks {
		t.Errorf("Timestamp() = %#x, want %#x", got, ticks)
	}

	// The masked splits must land the expected field values.
	if l.TimeLow != 0xbbaa9988 {
		t.Errorf("TimeLow = %#x, want 0xbbaa9988", l.TimeLow)
	}
	if l.TimeMid != 0xddcc {
		t.Errorf("TimeMid = %#x, want 0xddcc", l.TimeMid)
	}
	if l.TimeHiAndVersion != 0x1ffe {
		t.Errorf("TimeHiAndVersion = %#x, want 0x1ffe", l.TimeHiAndVersion)
	}
}

func TestLayout_RoundTripThroughUUID(t *testing.T) {
	const ticks = 0x01ee1234567890ab

	l := timeLayout(VersionTimeBased, ticks, Node{1, 2, 3, 4, 5, 6})
	u := l.Bytes()

	if v, ok := u.Version(); !ok || v != VersionTimeBased {
		t.Errorf("Version() = (%v, %v), want (%v, true)", v, ok, VersionTimeBased)
	}
	if v, ok := u.Variant(); !ok || v != VariantRFC4122 {
		t.Errorf("Variant() = (%v, %v), want (%v, true)", v, ok, VariantRFC4122)
	}
	if got := u.Timestamp(); got != ticks {
		t.Errorf("Timestamp() = %#x, want %#x", got, ticks)
	}
	if got := u[10:16]; string(got) != string([]byte{1, 2, 3, 4, 5, 6}) {
		t.Errorf("node bytes = %v, want [1 2 3 4 5 6]", got)
	}
}
