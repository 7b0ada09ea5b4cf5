package stats

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestEmptySummary(t *testing.T) {
	is := is.New(t)
	h := &History{}
	s := h.Summary()
	is.Equal(s.Count, 0)
	is.Equal(s.MeanTime, time.Duration(0))
}

func TestSummary(t *testing.T) {
	is := is.New(t)
	h := &History{}
	h.Add(Run{MaxDepth: 5, Hits: 1, Misses: 3, Elapsed: 10 * time.Millisecond})
	h.Add(Run{MaxDepth: 5, Hits: 3, Misses: 1, Elapsed: 30 * time.Millisecond})
	h.Add(Run{MaxDepth: 5, Elapsed: 20 * time.Millisecond})

	is.Equal(h.Len(), 3)
	s := h.Summary()
	is.Equal(s.Count, 3)
	is.Equal(s.TotalTime, 60*time.Millisecond)
	is.Equal(s.MeanTime, 20*time.Millisecond)
	is.Equal(s.StdevTime, 10*time.Millisecond)
	is.Equal(s.MeanHitRate, 1.0/3)

	// Runs is a copy
	runs := h.Runs()
	runs[0].Hits = 99
	is.Equal(h.Runs()[0].Hits, uint64(1))
}
