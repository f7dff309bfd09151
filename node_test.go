package hamt

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSlotIndexSchedule(t *testing.T) {
	c := qt.New(t)

	// Levels 0..11 each take the next clean 5-bit slice.
	c.Assert(slotIndex(0x1f, 0), qt.Equals, uint32(0x1f))
	c.Assert(slotIndex(0x1f<<5, 1), qt.Equals, uint32(0x1f))
	c.Assert(slotIndex(0x1f<<55, 11), qt.Equals, uint32(0x1f))

	// Level 12 folds the remaining 4 bits (60..63) into one slot index,
	// so it only ever produces values in [0, 16).
	c.Assert(slotIndex(uint64(0xf)<<60, terminalLevel), qt.Equals, uint32(0xf))
	c.Assert(slotIndex(^uint64(0), terminalLevel) < 16, qt.IsTrue)
}

func TestPos(t *testing.T) {
	c := qt.New(t)

	bitmap := uint32(0b0010_0101) // bits 0, 2, 5 set
	c.Assert(pos(bitmap, 1<<0), qt.Equals, 0)
	c.Assert(pos(bitmap, 1<<2), qt.Equals, 1)
	c.Assert(pos(bitmap, 1<<5), qt.Equals, 2)
}

func TestBuildSplitDiverges(t *testing.T) {
	c := qt.New(t)

	// Two hashes differing only in their second 5-bit slice (S5 from the
	// spec's scenario list): the split should produce exactly one
	// wrapper level before the two leaves land in distinct slots.
	aHash := uint64(0x00000000_00000000)
	bHash := uint64(0x00000000_00000020)
	a := &entry[string, int]{hash: aHash, key: "a", value: 1}
	b := &entry[string, int]{hash: bHash, key: "b", value: 2}

	result := buildSplit[string, int](0, aHash, a, bHash, b)
	top, ok := result.(*node[string, int])
	c.Assert(ok, qt.IsTrue)
	c.Assert(len(top.slots), qt.Equals, 1)

	inner, ok := top.slots[0].(*node[string, int])
	c.Assert(ok, qt.IsTrue)
	c.Assert(len(inner.slots), qt.Equals, 2)
	for _, s := range inner.slots {
		_, isLeaf := s.(*entry[string, int])
		c.Assert(isLeaf, qt.IsTrue)
	}
}
