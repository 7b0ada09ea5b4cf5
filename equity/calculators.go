package equity

import (
	"github.com/samber/lo"

	"github.com/flankware/othello/board"
	"github.com/flankware/othello/move"
)

var (
	allCells = lo.Range(board.NumCells)

	cornerCells = indices([][2]int8{{0, 0}, {0, 7}, {7, 0}, {7, 7}})

	// X squares (diagonal to a corner) followed by C squares (edge-adjacent).
	xcCells = indices([][2]int8{
		{1, 1}, {1, 6}, {6, 1}, {6, 6}, {0, 1}, {0, 6},
		{7, 1}, {7, 6}, {1, 0}, {1, 7}, {6, 0}, {6, 7},
	})
)

func indices(coords [][2]int8) []int {
	return lo.Map(coords, func(c [2]int8, _ int) int {
		return move.New(c[0], c[1]).Index()
	})
}

// ParityCalculator is the disc-count differential over the whole board.
type ParityCalculator struct{}

func (ParityCalculator) Value(b board.Board) float32 {
	return differential(countCells(b, allCells))
}

func (ParityCalculator) Type() string { return "parity" }

// CornerCalculator is the disc differential over the four corners, which
// can never be recaptured.
type CornerCalculator struct{}

func (CornerCalculator) Value(b board.Board) float32 {
	return differential(countCells(b, cornerCells))
}

func (CornerCalculator) Type() string { return "corner" }

// MobilityCalculator is the differential in available moves.
type MobilityCalculator struct{}

func (MobilityCalculator) Value(b board.Board) float32 {
	black := float32(b.CountPotentialMoves(board.Black))
	white := float32(b.CountPotentialMoves(board.White))
	return differential(black, white)
}

func (MobilityCalculator) Type() string { return "mobility" }

// XCSquareCalculator is the differential over the twelve squares next to
// the corners, with the sign inverted: a disc there opens the corner up
// to the opponent.
type XCSquareCalculator struct{}

func (XCSquareCalculator) Value(b board.Board) float32 {
	black, white := countCells(b, xcCells)
	return differential(white, black)
}

func (XCSquareCalculator) Type() string { return "xc-square" }

// StabilityCalculator is reserved for a stable-disc count. It always
// returns zero for now.
type StabilityCalculator struct{}

func (StabilityCalculator) Value(board.Board) float32 { return 0 }

func (StabilityCalculator) Type() string { return "stability" }
