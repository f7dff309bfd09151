package hamt

// insert returns the branch that should occupy the slot previously held
// by cur (nil meaning the slot, or the whole trie, was empty), together
// with whether the trie's size grew. level is the hash-slice level at
// which cur was found.
//
// Grounded on ctrie.go's iinsert, with the generation-CAS retry loop
// replaced by the always-copy helpers in node.go: there is nothing to
// retry here, because there is no in-place mutation to race against in
// the first place.
func insert[K, V any](h Hasher[K], cur branch[K, V], level int, e *entry[K, V]) (branch[K, V], bool) {
	switch c := cur.(type) {
	case nil:
		return e, true

	case *entry[K, V]:
		if h.Equal(c.key, e.key) {
			return e, false
		}
		if c.hash == e.hash {
			return newBucket(e.hash, []entry[K, V]{*c, *e}), true
		}
		return buildSplit[K, V](level, c.hash, c, e.hash, e), true

	case *bucket[K, V]:
		return insertIntoBucket(c, level, e, h.Equal)

	case *node[K, V]:
		bit := uint32(1) << slotIndex(e.hash, level)
		if c.bitmap&bit == 0 {
			return withInsertedSlot(c, bit, e), true
		}
		p := pos(c.bitmap, bit)
		newOccupant, grew := insert(h, c.slots[p], level+1, e)
		return withReplacedSlot(c, p, newOccupant), grew

	default:
		panic("hamt: slot occupied by unrecognized branch type")
	}
}

// buildSplit creates the shortest chain of single-slot interior nodes
// needed to separate two branches whose full hashes are aHash and bHash,
// starting from level. The hashes are known to differ; since levels
// 0..terminalLevel together slice every one of the 64 hash bits, they are
// guaranteed to diverge at or before terminalLevel.
//
// Grounded on ctrie.go's newMainNode, generalized from two S-nodes to any
// pair of branches (a leaf may be split against another leaf, or against
// a collision bucket whose own hash differs from the leaf's). a and b
// are placed directly into the new node(s); since nodes are never
// mutated after construction (node.go), there is nothing to account for
// beyond the new slice holding them.
func buildSplit[K, V any](level int, aHash uint64, a branch[K, V], bHash uint64, b branch[K, V]) branch[K, V] {
	ai := slotIndex(aHash, level)
	bi := slotIndex(bHash, level)
	switch {
	case ai == bi:
		if level >= terminalLevel {
			panic("hamt: hashes fully exhausted without diverging; they should have been merged into a bucket")
		}
		child := buildSplit[K, V](level+1, aHash, a, bHash, b)
		return newNode(uint32(1)<<ai, []branch[K, V]{child})
	case ai < bi:
		return newNode(uint32(1)<<ai|uint32(1)<<bi, []branch[K, V]{a, b})
	default:
		return newNode(uint32(1)<<ai|uint32(1)<<bi, []branch[K, V]{b, a})
	}
}

// insertIntoBucket handles the three cases from spec §4.3.3 when the
// slot being inserted into already holds a collision bucket: a same-hash
// key replacement, a same-hash new key appended to the bucket, or (if the
// new key's hash actually differs from the bucket's — the bucket was
// simply reached because the node above happened to route both to the
// same slot) a split into a fresh interior node holding the bucket and
// the new leaf. A bucket is never mutated in place, for the same reason
// node.go's with* helpers never mutate a node in place.
func insertIntoBucket[K, V any](b *bucket[K, V], level int, e *entry[K, V], eq func(K, K) bool) (branch[K, V], bool) {
	if b.hash != e.hash {
		return buildSplit[K, V](level, b.hash, b, e.hash, e), true
	}
	for i := range b.entries {
		if eq(b.entries[i].key, e.key) {
			entries := append([]entry[K, V](nil), b.entries...)
			entries[i] = *e
			return newBucket(b.hash, entries), false
		}
	}
	entries := make([]entry[K, V], len(b.entries)+1)
	copy(entries, b.entries)
	entries[len(b.entries)] = *e
	return newBucket(b.hash, entries), true
}
