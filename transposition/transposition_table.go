// Package transposition implements a fixed-size position cache keyed by
// Zobrist fingerprint. Each bucket holds two entries: a depth-preferred
// slot, only replaced by a strictly deeper entry, and an always-replace
// slot that takes every other write.
package transposition

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// DefaultNumBuckets is deliberately not a power of two.
const DefaultNumBuckets = 1<<12 + 1

const (
	depthSlot  = 0
	alwaysSlot = 1
)

// TableEntry is the best known score of a position at a search depth. It
// is only valid evidence for requests at the same or a shallower depth.
type TableEntry struct {
	Key   uint64
	Score float32
	Depth int

	valid bool
}

// NewEntry returns a storable entry.
func NewEntry(key uint64, score float32, depth int) TableEntry {
	return TableEntry{Key: key, Score: score, Depth: depth, valid: true}
}

func (e TableEntry) Valid() bool {
	return e.valid
}

type bucket [2]TableEntry

// TranspositionTable is owned by a single solver and is not safe for
// concurrent use.
type TranspositionTable struct {
	buckets []bucket
	hits    uint64
	misses  uint64
}

// NewTranspositionTable allocates numBuckets buckets. Entries are never
// evicted except by the replacement policy, so memory use is fixed.
func NewTranspositionTable(numBuckets int) *TranspositionTable {
	if numBuckets < 1 {
		numBuckets = DefaultNumBuckets
	}
	t := &TranspositionTable{buckets: make([]bucket, numBuckets)}
	log.Debug().Int("num-buckets", numBuckets).
		Int("estimated-total-memory-bytes", numBuckets*int(unsafe.Sizeof(bucket{}))).
		Uint64("total-system-memory-bytes", memory.TotalMemory()).
		Msg("transposition-table-size")
	return t
}

func (t *TranspositionTable) index(key uint64) uint64 {
	return key % uint64(len(t.buckets))
}

// Put stores e. If the depth-preferred slot is empty e goes there; if e is
// strictly deeper than the occupant, the occupant is demoted to the
// always-replace slot; otherwise e overwrites the always-replace slot.
func (t *TranspositionTable) Put(e TableEntry) {
	e.valid = true
	b := &t.buckets[t.index(e.Key)]
	switch {
	case !b[depthSlot].valid:
		b[depthSlot] = e
	case e.Depth > b[depthSlot].Depth:
		b[alwaysSlot] = b[depthSlot]
		b[depthSlot] = e
	default:
		b[alwaysSlot] = e
	}
}

// Get returns the first entry in key's bucket whose full key matches, and
// records a hit or a miss.
func (t *TranspositionTable) Get(key uint64) (TableEntry, bool) {
	b := &t.buckets[t.index(key)]
	for _, e := range b {
		if e.valid && e.Key == key {
			t.hits++
			return e, true
		}
	}
	t.misses++
	return TableEntry{}, false
}

func (t *TranspositionTable) Hits() uint64 {
	return t.hits
}

func (t *TranspositionTable) Misses() uint64 {
	return t.misses
}

// ResetCounts zeroes the hit and miss counters but keeps the entries.
func (t *TranspositionTable) ResetCounts() {
	t.hits = 0
	t.misses = 0
}

// Clear empties every bucket.
func (t *TranspositionTable) Clear() {
	clear(t.buckets)
}

func (t *TranspositionTable) NumBuckets() int {
	return len(t.buckets)
}

// Dump writes one line per bucket.
func (t *TranspositionTable) Dump(w io.Writer) error {
	for _, b := range t.buckets {
		line := ""
		for i, e := range b {
			if e.valid {
				line += fmt.Sprintf("slot%d %d %g %d", i+1, e.Key, e.Score, e.Depth)
			} else {
				line += fmt.Sprintf("slot%d empty", i+1)
			}
			if i == 0 {
				line += " "
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
