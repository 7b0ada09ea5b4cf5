// Package alphabeta implements the move searcher: depth-limited minimax
// with alpha-beta pruning, driven by iterative deepening and backed by a
// transposition table.
package alphabeta

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/flankware/othello/board"
	"github.com/flankware/othello/equity"
	"github.com/flankware/othello/move"
	"github.com/flankware/othello/stats"
	"github.com/flankware/othello/transposition"
	"github.com/flankware/othello/zobrist"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        for each child of node do
            α := max(α, alphabeta(child, depth − 1, α, β, FALSE))
            if α ≥ β then
                break (* β cut-off *)
        return α
    else
        for each child of node do
            β := min(β, alphabeta(child, depth − 1, α, β, TRUE))
            if β ≤ α then
                break (* α cut-off *)
        return β
**/

// Infinity bounds the initial search window.
const Infinity = math.MaxFloat32

var ErrBadDepth = errors.New("max search depth must be positive")

// Solver searches positions for the best move. Black is always the
// maximizing player. A Solver owns its hasher table, transposition table
// and run history; it is not safe for concurrent use, and fingerprints
// from different solvers are not comparable.
type Solver struct {
	zobrist   *zobrist.Zobrist
	ttable    *transposition.TranspositionTable
	evaluator *equity.CombinedStaticCalculator
	history   stats.History

	maxSearchDepth int

	iterativeDeepeningOn    bool
	transpositionTableOptim bool

	totalNodes int
}

// NewSolver creates a solver that searches up to maxSearchDepth. Iterative
// deepening runs depths 1 through maxSearchDepth-2; below 3 that range is
// empty and a single depth-1 pass is run instead.
func NewSolver(maxSearchDepth int) (*Solver, error) {
	if maxSearchDepth < 1 {
		return nil, ErrBadDepth
	}
	s := &Solver{
		zobrist:                 &zobrist.Zobrist{},
		ttable:                  transposition.NewTranspositionTable(transposition.DefaultNumBuckets),
		evaluator:               equity.NewCombinedStaticCalculator(),
		maxSearchDepth:          maxSearchDepth,
		iterativeDeepeningOn:    true,
		transpositionTableOptim: true,
	}
	s.zobrist.Initialize()
	return s, nil
}

// FindBestMove returns the best move for the side to move and the value of
// the position it leads to. It returns false if there is no legal move.
// Ties keep the first move generated.
func (s *Solver) FindBestMove(b board.Board) (move.RankedMove, bool) {
	tstart := time.Now()
	s.ttable.ResetCounts()
	s.totalNodes = 0

	var best move.RankedMove
	found := false
	maximizing := b.BlackMove()
	for _, m := range b.LegalMoves() {
		v := s.deepen(b.MakeMove(m))
		if !found || (maximizing && v > best.Heuristic) || (!maximizing && v < best.Heuristic) {
			best = move.RankedMove{Move: m, Heuristic: v}
			found = true
		}
	}
	if found {
		s.evaluator.LogBreakdown(b.MakeMove(best.Move))
	}

	s.addRun(time.Since(tstart))
	return best, found
}

// FindRankedMoves returns every legal move with its value, best first:
// descending when black is to move, ascending otherwise.
func (s *Solver) FindRankedMoves(b board.Board) []move.RankedMove {
	tstart := time.Now()
	s.ttable.ResetCounts()
	s.totalNodes = 0

	ranked := lo.Map(b.LegalMoves(), func(m move.Move, _ int) move.RankedMove {
		return move.RankedMove{Move: m, Heuristic: s.deepen(b.MakeMove(m))}
	})
	if b.BlackMove() {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Heuristic > ranked[j].Heuristic
		})
	} else {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Heuristic < ranked[j].Heuristic
		})
	}

	s.addRun(time.Since(tstart))
	return ranked
}

func (s *Solver) addRun(elapsed time.Duration) {
	run := stats.Run{
		MaxDepth: s.maxSearchDepth,
		Hits:     s.ttable.Hits(),
		Misses:   s.ttable.Misses(),
		Nodes:    s.totalNodes,
		Elapsed:  elapsed,
	}
	s.history.Add(run)
	log.Debug().Int("max-depth", run.MaxDepth).
		Uint64("hits", run.Hits).
		Uint64("misses", run.Misses).
		Int("total-nodes", run.Nodes).
		Dur("time-taken", run.Elapsed).
		Msg("finished-analysis")
}

// alphabeta returns the minimax value of b searched to depth. A position
// with no legal move for the side to move is scored statically; the turn
// is not passed to the opponent.
func (s *Solver) alphabeta(b board.Board, depth int, maximizingPlayer bool, α, β float32) float32 {
	s.totalNodes++
	if depth == 0 {
		return s.evaluator.Evaluate(b)
	}

	children := make([]board.Board, 0, 16)
	b.FindCurrentMoves(func(m move.Move) {
		children = append(children, b.MakeMove(m))
	})
	if len(children) == 0 {
		return s.evaluator.Evaluate(b)
	}

	var key uint64
	if s.transpositionTableOptim {
		key = s.zobrist.Hash(b)
		if entry, ok := s.ttable.Get(key); ok && entry.Depth >= depth {
			return entry.Score
		}
	}

	if maximizingPlayer {
		for _, child := range children {
			α = max(α, s.alphabeta(child, depth-1, false, α, β))
			if α >= β {
				break // β cut-off
			}
		}
		s.store(key, α, depth)
		return α
	}
	for _, child := range children {
		β = min(β, s.alphabeta(child, depth-1, true, α, β))
		if β <= α {
			break // α cut-off
		}
	}
	s.store(key, β, depth)
	return β
}

func (s *Solver) store(key uint64, score float32, depth int) {
	if !s.transpositionTableOptim {
		return
	}
	s.ttable.Put(transposition.NewEntry(key, score, depth))
}

// MaxSearchDepth is the depth this solver was configured with.
func (s *Solver) MaxSearchDepth() int {
	return s.maxSearchDepth
}

// Hits is the number of transposition table hits since the last top-level search started.
func (s *Solver) Hits() uint64 {
	return s.ttable.Hits()
}

func (s *Solver) Misses() uint64 {
	return s.ttable.Misses()
}

func (s *Solver) History() *stats.History {
	return &s.history
}

func (s *Solver) TranspositionTable() *transposition.TranspositionTable {
	return s.ttable
}

func (s *Solver) SetIterativeDeepening(i bool) {
	s.iterativeDeepeningOn = i
}

func (s *Solver) SetTranspositionTableOptim(t bool) {
	s.transpositionTableOptim = t
}
