// Package stats keeps the per-search run records a solver accumulates and
// summarizes them for profiling.
package stats

import (
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Run is the record of one top-level search.
type Run struct {
	MaxDepth int
	Hits     uint64
	Misses   uint64
	Nodes    int
	Elapsed  time.Duration
}

// HitRate is the fraction of cache probes that hit.
func (r Run) HitRate() float64 {
	if r.Hits+r.Misses == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Hits+r.Misses)
}

// History is an append-only list of runs.
type History struct {
	runs []Run
}

func (h *History) Add(r Run) {
	h.runs = append(h.runs, r)
}

// Runs returns a copy of the recorded runs.
func (h *History) Runs() []Run {
	return append([]Run(nil), h.runs...)
}

func (h *History) Len() int {
	return len(h.runs)
}

type Summary struct {
	Count       int
	TotalTime   time.Duration
	MeanTime    time.Duration
	StdevTime   time.Duration
	MeanHitRate float64
}

func (h *History) Summary() Summary {
	s := Summary{Count: len(h.runs)}
	if s.Count == 0 {
		return s
	}
	ms := make([]float64, len(h.runs))
	rates := make([]float64, len(h.runs))
	for i, r := range h.runs {
		s.TotalTime += r.Elapsed
		ms[i] = float64(r.Elapsed) / float64(time.Millisecond)
		rates[i] = r.HitRate()
	}
	mean, std := stat.MeanStdDev(ms, nil)
	s.MeanTime = time.Duration(mean * float64(time.Millisecond))
	if s.Count > 1 {
		s.StdevTime = time.Duration(std * float64(time.Millisecond))
	}
	s.MeanHitRate = stat.Mean(rates, nil)
	return s
}

// Log writes every run followed by the summary.
func (h *History) Log() {
	for _, r := range h.runs {
		log.Info().Int("max-depth", r.MaxDepth).
			Uint64("hits", r.Hits).
			Uint64("misses", r.Misses).
			Int("total-nodes", r.Nodes).
			Dur("time-taken", r.Elapsed).
			Msg("finished-analysis")
	}
	s := h.Summary()
	log.Info().Int("runs", s.Count).
		Dur("total-time", s.TotalTime).
		Dur("average-time", s.MeanTime).
		Dur("stdev-time", s.StdevTime).
		Float64("average-hit-rate", s.MeanHitRate).
		Msg("run-summary")
}
