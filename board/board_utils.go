package board

import (
	"fmt"
	"strings"

	"github.com/flankware/othello/move"
)

// ToDisplayText renders the board as a grid with column letters across the
// top and row numbers down the side.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < move.BoardDim; c++ {
		fmt.Fprintf(&sb, "%c ", 'a'+c)
	}
	sb.WriteString("\n   " + strings.Repeat("-", move.BoardDim*2) + "\n")
	for r := 0; r < move.BoardDim; r++ {
		fmt.Fprintf(&sb, "%2d|", r+1)
		for c := 0; c < move.BoardDim; c++ {
			switch b.Cell(move.New(int8(r), int8(c))) {
			case Black:
				sb.WriteString("B ")
			case White:
				sb.WriteString("W ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", move.BoardDim*2) + "\n")
	black, white := b.Counts()
	turn := "white"
	if b.blackMove {
		turn = "black"
	}
	fmt.Fprintf(&sb, "black: %d white: %d, %s to move\n", black, white, turn)
	return sb.String()
}

func (b Board) String() string {
	return b.ToDisplayText()
}
