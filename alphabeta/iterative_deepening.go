package alphabeta

import (
	"github.com/rs/zerolog/log"

	"github.com/flankware/othello/board"
)

// deepen values child by searching it at increasing depths and keeping
// the deepest result. The shallower passes fill the transposition table,
// which outlives this call.
func (s *Solver) deepen(child board.Board) float32 {
	maxPlies := s.maxSearchDepth - 2
	if maxPlies < 1 {
		maxPlies = 1
	}
	start := 1
	if !s.iterativeDeepeningOn {
		start = maxPlies
	}
	var v float32
	for p := start; p <= maxPlies; p++ {
		v = s.alphabeta(child, p, child.BlackMove(), -Infinity, Infinity)
		log.Trace().Int("plies", p).Float32("value", v).Msg("deepening-iteratively")
	}
	return v
}
