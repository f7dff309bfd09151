package hamt

import "iter"

// FromSeq builds a map from a sequence of key/value pairs, folding Plus
// over each one in turn. It is sugar over repeated Plus calls — every
// intermediate map along the way is itself fully persistent — not a
// transient builder; there is no way to observe an in-progress, partially
// built state.
//
// Grounded on the reduce-style combinators the example pack's own iter
// package offers (iter.Map/iter.Reduce), expressed here against the
// standard library's iter.Seq2 rather than a bespoke Iter[T] interface.
func FromSeq[K, V any](h Hasher[K], seq iter.Seq2[K, V]) Map[K, V] {
	m := Empty[K, V](h)
	for k, v := range seq {
		m = m.Plus(k, v)
	}
	return m
}

// All returns a Seq2 over m's entries, suitable for range-over-func
// iteration. It is a thin adapter over Iterator for callers who prefer
// Go 1.23's range-over-func style to the explicit Next/Key/Value
// protocol.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
