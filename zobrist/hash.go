package zobrist

import (
	"lukechampine.com/frand"

	"github.com/flankware/othello/board"
)

const bignum = 1<<63 - 2

const numStates = 3

// Zobrist fingerprints positions by XOR-ing one random key per
// (cell, cell state). Keys are drawn once per instance, so fingerprints
// from two instances are not comparable.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable [board.NumCells][numStates]uint64
}

// Initialize draws a fresh table. Every key is a non-zero 63-bit value.
func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumCells; i++ {
		for j := 0; j < numStates; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
}

// Hash computes the fingerprint of b from scratch. It depends only on
// cell contents, not on move history or the side to move.
func (z *Zobrist) Hash(b board.Board) uint64 {
	key := uint64(0)
	for i := 0; i < board.NumCells; i++ {
		key ^= z.posTable[i][b.CellAt(i)]
	}
	return key
}
