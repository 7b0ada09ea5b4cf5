// Package equity computes the static heuristic value of a position. The
// value is a weighted sum of independent calculators, each roughly in
// [-1, 1]. Positive values favor black, negative values favor white.
package equity

import "github.com/flankware/othello/board"

// Calculator is one sub-heuristic of the static evaluation.
type Calculator interface {
	Value(b board.Board) float32
	Type() string
}

// differential is the (black-white)/(black+white) ratio used by every
// calculator so that their outputs are commensurable before weighting.
func differential(black, white float32) float32 {
	if black+white == 0 {
		return 0
	}
	return (black - white) / (black + white)
}

// countCells counts black and white discs among cells.
func countCells(b board.Board, cells []int) (black, white float32) {
	for _, idx := range cells {
		switch b.CellAt(idx) {
		case board.Black:
			black++
		case board.White:
			white++
		}
	}
	return
}
