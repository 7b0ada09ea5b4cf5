package equity

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/flankware/othello/board"
)

const (
	ParityWeight    = 50
	CornerWeight    = 100
	MobilityWeight  = 100
	XCSquareWeight  = 50
	StabilityWeight = 100
)

type weightedCalculator struct {
	calc   Calculator
	weight float32
}

// CombinedStaticCalculator sums its calculators linearly. The sum is not
// normalized; it is only meaningful relative to other values from the
// same calculator set.
type CombinedStaticCalculator struct {
	calculators []weightedCalculator
}

// NewCombinedStaticCalculator returns the standard evaluator.
func NewCombinedStaticCalculator() *CombinedStaticCalculator {
	return &CombinedStaticCalculator{
		calculators: []weightedCalculator{
			{ParityCalculator{}, ParityWeight},
			{CornerCalculator{}, CornerWeight},
			{MobilityCalculator{}, MobilityWeight},
			{XCSquareCalculator{}, XCSquareWeight},
			{StabilityCalculator{}, StabilityWeight},
		},
	}
}

// Evaluate returns the heuristic value of b.
func (c *CombinedStaticCalculator) Evaluate(b board.Board) float32 {
	var total float32
	for _, wc := range c.calculators {
		total += wc.weight * wc.calc.Value(b)
	}
	return total
}

// Breakdown returns each calculator's weighted contribution, keyed by its
// Type. The contributions sum to Evaluate.
func (c *CombinedStaticCalculator) Breakdown(b board.Board) map[string]float32 {
	parts := make(map[string]float32, len(c.calculators))
	for _, wc := range c.calculators {
		parts[wc.calc.Type()] = wc.weight * wc.calc.Value(b)
	}
	return parts
}

// LogBreakdown logs Breakdown at debug level.
func (c *CombinedStaticCalculator) LogBreakdown(b board.Board) {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}
	ev := log.Debug().Str("evaluator", c.Type())
	var total float32
	for _, wc := range c.calculators {
		v := wc.weight * wc.calc.Value(b)
		total += v
		ev = ev.Float32(wc.calc.Type(), v)
	}
	ev.Float32("total", total).Msg("static-evaluation")
}

func (c *CombinedStaticCalculator) Type() string {
	return "CombinedStaticCalculator"
}
