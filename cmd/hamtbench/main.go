// Command hamtbench is a small smoke-test and rough timing harness for
// the hamt package: it drives Plus, Find, Remove and Iter over a
// generated key set and reports how long each phase took. It is not part
// of the library's public API and is never imported by package hamt.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/JohannesLichtenberger/hamt-go"
)

func main() {
	keys := flag.Int("keys", 100000, "number of distinct keys to insert")
	removeFrac := flag.Float64("remove-frac", 0.25, "fraction of keys removed after insertion")
	seed := flag.Uint64("seed", 1, "PRNG seed for the generated key order")
	flag.Parse()

	if *keys <= 0 {
		log.Fatalf("hamtbench: -keys must be positive, got %d", *keys)
	}
	if *removeFrac < 0 || *removeFrac > 1 {
		log.Fatalf("hamtbench: -remove-frac must be in [0,1], got %g", *removeFrac)
	}

	names := make([]string, *keys)
	for i := range names {
		names[i] = fmt.Sprintf("key-%d", i)
	}
	r := rand.New(rand.NewPCG(*seed, *seed^0xdeadbeef))
	r.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	m := hamt.NewComparable[string, int]()

	start := time.Now()
	for i, k := range names {
		m = m.Plus(k, i)
	}
	log.Printf("inserted %d keys in %s (len=%d)", len(names), time.Since(start), m.Len())

	start = time.Now()
	hits := 0
	for i, k := range names {
		if v, ok := m.Find(k); ok && v == i {
			hits++
		}
	}
	log.Printf("looked up %d keys in %s (%d hits)", len(names), time.Since(start), hits)

	toRemove := int(float64(len(names)) * *removeFrac)
	start = time.Now()
	for _, k := range names[:toRemove] {
		var removed bool
		m, removed = m.Remove(k)
		if !removed {
			log.Fatalf("hamtbench: expected %q to be present before removal", k)
		}
	}
	log.Printf("removed %d keys in %s (len=%d)", toRemove, time.Since(start), m.Len())

	start = time.Now()
	count := 0
	it := m.Iter()
	for it.Next() {
		count++
	}
	log.Printf("iterated %d entries in %s", count, time.Since(start))

	if count != m.Len() {
		log.Fatalf("hamtbench: iterator visited %d entries, map reports Len()=%d", count, m.Len())
	}
}
