// Package move holds the tile coordinate type that every search and codec
// layer passes around, plus its two-character text form (e.g. "d3").
package move

import (
	"errors"
	"fmt"
)

// BoardDim is the side length of the board.
const BoardDim = 8

var (
	ErrBadMoveLength  = errors.New("tile notation must be 2 characters long")
	ErrMoveOutOfRange = errors.New("tile must be between a1 and h8")
)

// Move is a board coordinate. Rows and columns are zero-based; the text
// form maps the column to a letter a-h and the row to a digit 1-8.
type Move struct {
	Row int8
	Col int8
}

func New(row, col int8) Move {
	return Move{Row: row, Col: col}
}

// FromIndex converts a cell index in [0, 64) to a Move.
func FromIndex(idx int) Move {
	return Move{Row: int8(idx / BoardDim), Col: int8(idx % BoardDim)}
}

// Index is the inverse of FromIndex.
func (m Move) Index() int {
	return int(m.Row)*BoardDim + int(m.Col)
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < BoardDim && m.Col < BoardDim
}

// Step returns the coordinate one step away in the direction (dr, dc).
func (m Move) Step(dr, dc int8) Move {
	return Move{Row: m.Row + dr, Col: m.Col + dc}
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(m.Col), m.Row+1)
}

// FromString parses the two-character form, e.g. "a1" or "h8".
func FromString(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMoveLength, s)
	}
	col := int(s[0]) - 'a'
	row := int(s[1]) - '1'
	if row < 0 || col < 0 || row >= BoardDim || col >= BoardDim {
		return Move{}, fmt.Errorf("%w: %q", ErrMoveOutOfRange, s)
	}
	return Move{Row: int8(row), Col: int8(col)}, nil
}

// RankedMove is a move together with the heuristic value of the position
// it leads to.
type RankedMove struct {
	Move      Move
	Heuristic float32
}

func (r RankedMove) String() string {
	return fmt.Sprintf("<move: %v heuristic: %.3f>", r.Move, r.Heuristic)
}
