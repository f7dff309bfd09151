package hamt

import "hash/maphash"

// Hasher defines the hash function and equivalence relation over keys of
// type K that the trie is built on. The core never hashes a key itself
// beyond calling Hash; hashing strategy and equality are entirely the
// caller's concern, per the package's external-collaborator boundary.
//
// Grounded on the example pack's anyhash.Hasher[T], adapted to return a
// plain uint64 rather than writing into a streaming maphash.Hash, since
// the trie only ever needs the final 64-bit digest.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(x, y K) bool
}

// Comparable is a Hasher for any comparable key type, using hash/maphash
// seeded once per process. Two Comparable[K] values always agree on
// hashing within a process but not across processes or runs, matching
// maphash's own guarantees.
//
// Mirrors anyhash.ComparableHasher[T] and ctrie.StringHash/BytesHash from
// the pack this module was grounded on.
type Comparable[K comparable] struct{}

var comparableSeed = maphash.MakeSeed()

func (Comparable[K]) Hash(key K) uint64 {
	var h maphash.Hash
	h.SetSeed(comparableSeed)
	maphash.WriteComparable(&h, key)
	return h.Sum64()
}

func (Comparable[K]) Equal(x, y K) bool {
	return x == y
}

// HashString hashes a string with the package-wide seed used by
// Comparable[string], exposed for callers who want to precompute a hash
// outside of the Hasher interface (e.g. to bucket keys before insertion).
func HashString(s string) uint64 {
	var h maphash.Hash
	h.SetSeed(comparableSeed)
	h.WriteString(s)
	return h.Sum64()
}

// HashBytes hashes a []byte with the package-wide seed used by
// Comparable[string]/Comparable[ [N]byte ] family types.
func HashBytes(b []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(comparableSeed)
	h.Write(b)
	return h.Sum64()
}
