// Package board implements the Othello position: a packed 8x8 grid of
// tri-state cells plus the side to move.
package board

import (
	"fmt"

	"github.com/flankware/othello/move"
)

// Color is the state of a single cell.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

const (
	NumCells = move.BoardDim * move.BoardDim

	cellsPerWord = 32
	cellMask     = 0x3
)

// Opposite returns the other player's color. Empty maps to Empty.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Symbol is the single-letter form used by the notation and display text.
func (c Color) Symbol() byte {
	switch c {
	case Black:
		return 'B'
	case White:
		return 'W'
	}
	return 'E'
}

// ColorFromSymbol is the inverse of Symbol.
func ColorFromSymbol(sym byte) (Color, bool) {
	switch sym {
	case 'E':
		return Empty, true
	case 'B':
		return Black, true
	case 'W':
		return White, true
	}
	return Empty, false
}

// Board is a complete position. Cells are packed two bits apiece into two
// 64-bit words, so a Board is a small value: copying it is how the search
// explores sibling branches without sharing state.
type Board struct {
	cells     [2]uint64
	blackMove bool
}

// NewBoard returns the standard starting position with black to move.
func NewBoard() Board {
	b := Board{blackMove: true}
	b.SetCell(move.New(3, 3), White)
	b.SetCell(move.New(3, 4), Black)
	b.SetCell(move.New(4, 3), Black)
	b.SetCell(move.New(4, 4), White)
	return b
}

// EmptyBoard returns a board with no discs and black to move.
func EmptyBoard() Board {
	return Board{blackMove: true}
}

func cellPos(m move.Move) (word int, shift uint) {
	if !m.InBounds() {
		panic(fmt.Sprintf("cell %d,%d out of range", m.Row, m.Col))
	}
	idx := m.Index()
	return idx / cellsPerWord, uint(idx%cellsPerWord) * 2
}

// SetCell overwrites the cell at m.
func (b *Board) SetCell(m move.Move, c Color) {
	w, shift := cellPos(m)
	b.cells[w] &^= cellMask << shift
	b.cells[w] |= uint64(c) << shift
}

// Cell returns the state of the cell at m.
func (b Board) Cell(m move.Move) Color {
	w, shift := cellPos(m)
	return Color((b.cells[w] >> shift) & cellMask)
}

// CellAt is Cell by flat index.
func (b Board) CellAt(idx int) Color {
	return b.Cell(move.FromIndex(idx))
}

// BlackMove reports whether black is the side to move.
func (b Board) BlackMove() bool {
	return b.blackMove
}

func (b *Board) SetBlackMove(black bool) {
	b.blackMove = black
}

// ColorToMove returns the color of the side to move.
func (b Board) ColorToMove() Color {
	if b.blackMove {
		return Black
	}
	return White
}

// Counts returns the number of black and white discs.
func (b Board) Counts() (black, white int) {
	for i := 0; i < NumCells; i++ {
		switch b.CellAt(i) {
		case Black:
			black++
		case White:
			white++
		}
	}
	return
}

// Pass returns a copy of the board with only the side to move flipped.
func (b Board) Pass() Board {
	b.blackMove = !b.blackMove
	return b
}
