package board

import (
	"github.com/samber/lo"

	"github.com/flankware/othello/move"
)

var directions = [8][2]int8{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// FindCurrentMoves calls onMove for every destination available to the
// side to move. See FindPotentialMoves for duplicate semantics.
func (b Board) FindCurrentMoves(onMove func(move.Move)) {
	b.FindPotentialMoves(b.ColorToMove(), onMove)
}

// FindPotentialMoves calls onMove for every empty cell that color could
// play on. A destination is reported once per (disc, direction) flank that
// reaches it, so the same cell can be reported more than once.
func (b Board) FindPotentialMoves(color Color, onMove func(move.Move)) {
	opposite := color.Opposite()
	for i := 0; i < NumCells; i++ {
		disc := move.FromIndex(i)
		if b.Cell(disc) != color {
			continue
		}
		for _, d := range directions {
			tile := disc.Step(d[0], d[1])
			count := 0
			for tile.InBounds() && b.Cell(tile) == opposite {
				tile = tile.Step(d[0], d[1])
				count++
			}
			if count > 0 && tile.InBounds() && b.Cell(tile) == Empty {
				onMove(tile)
			}
		}
	}
}

// CurrentMoves collects FindCurrentMoves into a slice, duplicates included.
func (b Board) CurrentMoves() []move.Move {
	var moves []move.Move
	b.FindCurrentMoves(func(m move.Move) {
		moves = append(moves, m)
	})
	return moves
}

// LegalMoves is CurrentMoves with duplicates removed, first occurrence kept.
func (b Board) LegalMoves() []move.Move {
	return lo.Uniq(b.CurrentMoves())
}

// IsLegal reports whether m is a destination for the side to move.
func (b Board) IsLegal(m move.Move) bool {
	return lo.Contains(b.CurrentMoves(), m)
}

// CountPotentialMoves counts FindPotentialMoves callbacks for color.
func (b Board) CountPotentialMoves(color Color) int {
	count := 0
	b.FindPotentialMoves(color, func(move.Move) { count++ })
	return count
}

// GameOver reports whether neither side has a legal move.
func (b Board) GameOver() bool {
	return b.CountPotentialMoves(Black) == 0 && b.CountPotentialMoves(White) == 0
}

// MakeMove returns the position after the side to move plays m. The
// receiver is not modified. m is assumed to be legal.
func (b Board) MakeMove(m move.Move) Board {
	child := b
	current := b.ColorToMove()
	opposite := current.Opposite()

	child.blackMove = !child.blackMove
	child.SetCell(m, current)

	for _, d := range directions {
		first := m.Step(d[0], d[1])
		tile := first
		flank := false
		for tile.InBounds() {
			c := child.Cell(tile)
			if c == current {
				flank = true
				break
			}
			if c == Empty {
				break
			}
			tile = tile.Step(d[0], d[1])
		}
		if !flank {
			continue
		}
		for tile = first; tile.InBounds() && child.Cell(tile) == opposite; tile = tile.Step(d[0], d[1]) {
			child.SetCell(tile, current)
		}
	}
	return child
}
