// Package notation converts positions to and from their compact text form:
// eight run-length encoded rows separated by "/", followed by the side to
// move, e.g. the starting position
//
//	8E/8E/8E/3EWB3E/3EBW3E/8E/8E/8E/B
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/flankware/othello/board"
	"github.com/flankware/othello/move"
)

const rowSeparator = '/'

var (
	ErrTooManyColumns = errors.New("cannot have more than 8 cols per row")
	ErrTooFewColumns  = errors.New("row must have exactly 8 cols")
	ErrBadRunLength   = errors.New("run length must be a single digit between 1 and 8 followed by a symbol")
	ErrUnknownSymbol  = errors.New("tile symbol must be E, B or W")
	ErrUnknownTurn    = errors.New("turn must be B or W")
	ErrRowCount       = errors.New("notation must have 8 rows")
	ErrMissingTurn    = errors.New("notation is missing the turn marker")
	ErrTrailingData   = errors.New("unexpected data after the turn marker")
)

// Parse returns the position described by s.
func Parse(s string) (board.Board, error) {
	b := board.EmptyBoard()
	row, col := 0, 0
	count := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if row == move.BoardDim {
			switch c {
			case 'B':
				b.SetBlackMove(true)
			case 'W':
				b.SetBlackMove(false)
			default:
				return board.Board{}, fmt.Errorf("%w: got %q", ErrUnknownTurn, c)
			}
			if i != len(s)-1 {
				return board.Board{}, fmt.Errorf("%w: %q", ErrTrailingData, s[i+1:])
			}
			return b, nil
		}
		switch {
		case c == rowSeparator:
			if count != 0 {
				return board.Board{}, fmt.Errorf("%w (row %d)", ErrBadRunLength, row+1)
			}
			if col != move.BoardDim {
				return board.Board{}, fmt.Errorf("%w (row %d has %d)", ErrTooFewColumns, row+1, col)
			}
			row++
			col = 0
		case c >= '0' && c <= '9':
			if count != 0 || c == '0' || c == '9' {
				return board.Board{}, fmt.Errorf("%w (row %d)", ErrBadRunLength, row+1)
			}
			count = int(c - '0')
		default:
			color, ok := board.ColorFromSymbol(c)
			if !ok {
				return board.Board{}, fmt.Errorf("%w: got %q in row %d", ErrUnknownSymbol, c, row+1)
			}
			if count == 0 {
				count = 1
			}
			if col+count > move.BoardDim {
				return board.Board{}, fmt.Errorf("%w (row %d)", ErrTooManyColumns, row+1)
			}
			for ; count > 0; count-- {
				b.SetCell(move.New(int8(row), int8(col)), color)
				col++
			}
		}
	}
	if row < move.BoardDim {
		return board.Board{}, fmt.Errorf("%w: got %d", ErrRowCount, row)
	}
	return board.Board{}, ErrMissingTurn
}

// Encode is the exact inverse of Parse.
func Encode(b board.Board) string {
	var sb strings.Builder
	sb.Grow(66)
	for r := 0; r < move.BoardDim; r++ {
		run := 0
		var sym byte
		flush := func() {
			if run > 1 {
				sb.WriteString(strconv.Itoa(run))
			}
			if run > 0 {
				sb.WriteByte(sym)
			}
		}
		for c := 0; c < move.BoardDim; c++ {
			s := b.Cell(move.New(int8(r), int8(c))).Symbol()
			if run > 0 && s != sym {
				flush()
				run = 0
			}
			sym = s
			run++
		}
		flush()
		sb.WriteByte(rowSeparator)
	}
	sb.WriteByte(b.ColorToMove().Symbol())
	return sb.String()
}
