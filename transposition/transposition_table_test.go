package transposition

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestPutAndGet(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(DefaultNumBuckets)
	is.Equal(tt.NumBuckets(), 4097)

	tt.Put(NewEntry(9409641586937047728, 12.5, 3))
	e, ok := tt.Get(9409641586937047728)
	is.True(ok)
	is.True(e.Valid())
	is.Equal(e.Score, float32(12.5))
	is.Equal(e.Depth, 3)
	is.Equal(tt.Hits(), uint64(1))
	is.Equal(tt.Misses(), uint64(0))

	// same bucket, different key: a collision, not a hit.
	_, ok = tt.Get(9409641586937047728 + 4097)
	is.True(!ok)
	_, ok = tt.Get(1)
	is.True(!ok)
	is.Equal(tt.Misses(), uint64(2))

	tt.ResetCounts()
	is.Equal(tt.Hits(), uint64(0))
	is.Equal(tt.Misses(), uint64(0))
	_, ok = tt.Get(9409641586937047728)
	is.True(ok)
}

func TestReplacementPolicy(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(7)
	// keys 1, 8, 15, 22 all land in bucket 1.
	tt.Put(NewEntry(1, 1, 3))
	is.Equal(tt.buckets[1][depthSlot].Key, uint64(1))
	is.True(!tt.buckets[1][alwaysSlot].Valid())

	// shallower: goes to always-replace.
	tt.Put(NewEntry(8, 2, 2))
	is.Equal(tt.buckets[1][depthSlot].Key, uint64(1))
	is.Equal(tt.buckets[1][alwaysSlot].Key, uint64(8))

	// equal depth is not strictly deeper: always-replace, displacing 8.
	tt.Put(NewEntry(15, 3, 3))
	is.Equal(tt.buckets[1][depthSlot].Key, uint64(1))
	is.Equal(tt.buckets[1][alwaysSlot].Key, uint64(15))
	_, ok := tt.Get(8)
	is.True(!ok)

	// deeper: promoted, the old occupant is demoted.
	tt.Put(NewEntry(22, 4, 5))
	is.Equal(tt.buckets[1][depthSlot].Key, uint64(22))
	is.Equal(tt.buckets[1][alwaysSlot].Key, uint64(1))

	for _, k := range []uint64{1, 22} {
		_, ok := tt.Get(k)
		is.True(ok)
	}
}

func TestDepthPreferredMonotonicity(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(5)
	depths := []int{2, 1, 4, 3, 4, 0, 6, 2, 5, 7, 1, 7}
	highWater := 0
	for i, d := range depths {
		tt.Put(NewEntry(uint64(3+5*i), float32(i), d))
		if d > highWater {
			highWater = d
		}
		is.Equal(tt.buckets[3][depthSlot].Depth, highWater)
	}
}

func TestClearAndDump(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(3)
	tt.Put(NewEntry(4, -1.5, 2))

	var buf bytes.Buffer
	is.NoErr(tt.Dump(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 3)
	is.Equal(lines[0], "slot1 empty slot2 empty")
	is.Equal(lines[1], "slot1 4 -1.5 2 slot2 empty")

	tt.Clear()
	_, ok := tt.Get(4)
	is.True(!ok)
}
