package autoplay

import "github.com/tursodatabase/pentris/internal/tetris"

// Placement is the board after a candidate mino was dropped and locked
type Placement struct {
	Grid  *tetris.Grid
	Lines int
}

// Evaluator scores a placement, higher is better
type Evaluator interface {
	Evaluate(p Placement) float64
}

// WeightedEvaluator combines evaluators with weights
type WeightedEvaluator struct {
	evaluators []Evaluator
	weights    []float64
}

// NewWeightedEvaluator creates a weighted sum of evaluators
func NewWeightedEvaluator(evaluators []Evaluator, weights []float64) *WeightedEvaluator {
	return &WeightedEvaluator{
		evaluators: evaluators,
		weights:    weights,
	}
}

// Evaluate returns the weighted sum of every evaluator
func (w *WeightedEvaluator) Evaluate(p Placement) float64 {
	score := 0.0
	for i, ev := range w.evaluators {
		score += w.weights[i] * ev.Evaluate(p)
	}
	return score
}

// DefaultEvaluator is the usual height, lines, holes and bumpiness mix
func DefaultEvaluator() *WeightedEvaluator {
	return NewWeightedEvaluator(
		[]Evaluator{&HeightEvaluator{}, &LinesEvaluator{}, &HolesEvaluator{}, &BumpinessEvaluator{}},
		[]float64{-0.51, 0.76, -0.36, -0.18},
	)
}

// HeightEvaluator sums the column heights
type HeightEvaluator struct{}

func (e *HeightEvaluator) Evaluate(p Placement) float64 {
	total := 0
	for _, height := range columnHeights(p.Grid) {
		total += height
	}
	return float64(total)
}

// LinesEvaluator counts the rows cleared by the placement
type LinesEvaluator struct{}

func (e *LinesEvaluator) Evaluate(p Placement) float64 {
	return float64(p.Lines)
}

// HolesEvaluator counts empty cells with a locked cell above them
type HolesEvaluator struct{}

func (e *HolesEvaluator) Evaluate(p Placement) float64 {
	holes := 0
	for x := 0; x < p.Grid.Width(); x++ {
		covered := false
		for y := 0; y < p.Grid.Height(); y++ {
			if !p.Grid.IsEmpty(x, y) {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return float64(holes)
}

// BumpinessEvaluator sums the height differences of neighbouring columns
type BumpinessEvaluator struct{}

func (e *BumpinessEvaluator) Evaluate(p Placement) float64 {
	heights := columnHeights(p.Grid)
	bumpiness := 0
	for i := 1; i < len(heights); i++ {
		diff := heights[i] - heights[i-1]
		if diff < 0 {
			diff = -diff
		}
		bumpiness += diff
	}
	return float64(bumpiness)
}

func columnHeights(grid *tetris.Grid) []int {
	heights := make([]int, grid.Width())
	for x := range heights {
		for y := 0; y < grid.Height(); y++ {
			if !grid.IsEmpty(x, y) {
				heights[x] = grid.Height() - y
				break
			}
		}
	}
	return heights
}
