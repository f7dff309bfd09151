package hamt

// Iterator yields every entry of a Map exactly once, via repeated calls
// to Next followed by Key/Value. Order is unspecified (depth-first over
// the trie, ascending slot index within each node, storage order within
// a bucket) but deterministic for a given hasher and insertion history.
//
// An Iterator is single-pass: once Next returns false it is exhausted. A
// second pass needs a fresh Iterator from the same (or a copy of the
// same) Map.
//
// Grounded on ctrie.go's Iter/iterFrame stack machine, adapted from three
// node kinds (cNode/lNode/tNode) to this package's two (node/bucket) plus
// the root-can-be-a-bare-leaf case.
type Iterator[K, V any] struct {
	stack []frame[K, V]
	key   K
	value V
}

type frame[K, V any] struct {
	leaf *entry[K, V] // set for a one-shot leaf frame
	n    *node[K, V]  // set while descending an interior node
	b    *bucket[K, V]
	idx  int // next slot/entry index to visit, for n and b frames
}

// Iter returns an iterator over m's entries. Since no write ever mutates
// a node already reachable from an existing Map value (node.go), the
// trie m.root points into stays exactly as it was for as long as the
// iterator holds a pointer into it, with no extra bookkeeping required.
func (m Map[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.push(m.root)
	return it
}

func (it *Iterator[K, V]) push(b branch[K, V]) {
	switch b := b.(type) {
	case nil:
	case *entry[K, V]:
		it.stack = append(it.stack, frame[K, V]{leaf: b})
	case *bucket[K, V]:
		it.stack = append(it.stack, frame[K, V]{b: b})
	case *node[K, V]:
		it.stack = append(it.stack, frame[K, V]{n: b})
	default:
		panic("hamt: slot occupied by unrecognized branch type")
	}
}

func (it *Iterator[K, V]) pop() {
	it.stack = it.stack[:len(it.stack)-1]
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator[K, V]) Next() bool {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		switch {
		case top.leaf != nil:
			it.key, it.value = top.leaf.key, top.leaf.value
			it.pop()
			return true

		case top.b != nil:
			if top.idx >= len(top.b.entries) {
				it.pop()
				continue
			}
			e := top.b.entries[top.idx]
			top.idx++
			it.key, it.value = e.key, e.value
			return true

		case top.n != nil:
			if top.idx >= len(top.n.slots) {
				it.pop()
				continue
			}
			child := top.n.slots[top.idx]
			top.idx++
			it.push(child)

		default:
			it.pop()
		}
	}
	return false
}

// Key returns the key of the entry Next most recently made current.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value of the entry Next most recently made current.
func (it *Iterator[K, V]) Value() V {
	return it.value
}
