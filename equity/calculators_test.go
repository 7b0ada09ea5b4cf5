package equity_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/flankware/othello/board"
	"github.com/flankware/othello/equity"
	"github.com/flankware/othello/move"
)

func TestInitialPositionIsEven(t *testing.T) {
	calc := equity.NewCombinedStaticCalculator()
	assert.Equal(t, float32(0), calc.Evaluate(board.NewBoard()))
}

func TestOpeningMove(t *testing.T) {
	calc := equity.NewCombinedStaticCalculator()
	b := board.NewBoard().MakeMove(move.New(2, 3))
	// 4 black vs 1 white; both sides have 3 moves; no corners or X/C squares.
	assert.InDelta(t, 0.6, equity.ParityCalculator{}.Value(b), 1e-6)
	assert.InDelta(t, 0, equity.MobilityCalculator{}.Value(b), 1e-6)
	assert.InDelta(t, 30, calc.Evaluate(b), 1e-4)
}

func TestCornerAndXCSquares(t *testing.T) {
	b := board.EmptyBoard()
	b.SetCell(move.New(0, 0), board.Black)
	b.SetCell(move.New(7, 7), board.White)
	b.SetCell(move.New(1, 1), board.White)

	assert.InDelta(t, -1.0/3, equity.ParityCalculator{}.Value(b), 1e-6)
	assert.InDelta(t, 0, equity.CornerCalculator{}.Value(b), 1e-6)
	assert.InDelta(t, 1, equity.MobilityCalculator{}.Value(b), 1e-6)
	// white holds the only X square, which is good for black.
	assert.InDelta(t, 1, equity.XCSquareCalculator{}.Value(b), 1e-6)
	assert.Equal(t, float32(0), equity.StabilityCalculator{}.Value(b))

	calc := equity.NewCombinedStaticCalculator()
	assert.InDelta(t, -50.0/3+100+50, calc.Evaluate(b), 1e-3)
}

func TestEmptyBoardDoesNotDivideByZero(t *testing.T) {
	calc := equity.NewCombinedStaticCalculator()
	assert.Equal(t, float32(0), calc.Evaluate(board.EmptyBoard()))
}

func TestCornerWeight(t *testing.T) {
	b := board.EmptyBoard()
	b.SetCell(move.New(0, 7), board.White)
	b.SetCell(move.New(3, 3), board.Black)
	assert.InDelta(t, -1, equity.CornerCalculator{}.Value(b), 1e-6)
	// parity 0, corner -100, no moves, no X/C squares.
	calc := equity.NewCombinedStaticCalculator()
	assert.InDelta(t, -100, calc.Evaluate(b), 1e-4)
}

func TestBreakdownSumsToEvaluation(t *testing.T) {
	b := board.EmptyBoard()
	b.SetCell(move.New(0, 0), board.Black)
	b.SetCell(move.New(7, 7), board.White)
	b.SetCell(move.New(1, 1), board.White)

	calc := equity.NewCombinedStaticCalculator()
	parts := calc.Breakdown(b)
	assert.Len(t, parts, 5)
	assert.InDelta(t, 100, parts["mobility"], 1e-4)
	assert.InDelta(t, 50, parts["xc-square"], 1e-4)
	var total float32
	for _, v := range parts {
		total += v
	}
	assert.InDelta(t, calc.Evaluate(b), total, 1e-4)
}

func TestLogBreakdown(t *testing.T) {
	var buf bytes.Buffer
	oldLogger, oldLevel := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = oldLogger
		zerolog.SetGlobalLevel(oldLevel)
	}()
	log.Logger = zerolog.New(&buf)

	calc := equity.NewCombinedStaticCalculator()
	b := board.NewBoard().MakeMove(move.New(2, 3))

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	calc.LogBreakdown(b)
	assert.Empty(t, buf.String())

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	calc.LogBreakdown(b)
	assert.Contains(t, buf.String(), `"evaluator":"CombinedStaticCalculator"`)
	assert.Contains(t, buf.String(), `"parity":`)
	assert.Contains(t, buf.String(), `"message":"static-evaluation"`)
}
