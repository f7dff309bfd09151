package hamt

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIteratorOverEmptyMapYieldsNothing(t *testing.T) {
	c := qt.New(t)

	m := NewComparable[string, int]()
	it := m.Iter()
	c.Assert(it.Next(), qt.IsFalse)
}

func TestIteratorOverSingleEntry(t *testing.T) {
	c := qt.New(t)

	m := NewComparable[string, int]().Plus("only", 7)
	it := m.Iter()
	c.Assert(it.Next(), qt.IsTrue)
	c.Assert(it.Key(), qt.Equals, "only")
	c.Assert(it.Value(), qt.Equals, 7)
	c.Assert(it.Next(), qt.IsFalse)
}

func TestIteratorDescendsIntoCollisionBuckets(t *testing.T) {
	c := qt.New(t)

	m := Empty[string, int](constantHash{})
	m = m.Plus("a", 1).Plus("b", 2).Plus("c", 3)

	seen := map[string]int{}
	it := m.Iter()
	for it.Next() {
		seen[it.Key()] = it.Value()
	}
	c.Assert(seen, qt.DeepEquals, map[string]int{"a": 1, "b": 2, "c": 3})
}

func TestIteratorUnaffectedByLaterWritesThroughSameRoot(t *testing.T) {
	c := qt.New(t)

	m := NewComparable[string, int]()
	for i := 0; i < 40; i++ {
		m = m.Plus(fmt.Sprintf("k%d", i), i)
	}

	it := m.Iter()
	// Write through the same root after the iterator is created and before
	// it is advanced; the write builds new nodes rather than mutating the
	// ones the iterator points into, so its view stays stable (grounded on
	// ctrie.go's read-only snapshot iteration).
	_ = m.Plus("extra", 999)

	count := 0
	for it.Next() {
		count++
	}
	c.Assert(count, qt.Equals, 40)
}
