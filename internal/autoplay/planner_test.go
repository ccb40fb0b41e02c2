package autoplay

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/tursodatabase/pentris/internal/tetris"
)

func newEngine(c *qt.C, names ...string) *tetris.Engine {
	shapes := make([]*tetris.Shape, len(names))
	for i, name := range names {
		shape, ok := tetris.Tetrominoes().Shape(name)
		c.Assert(ok, qt.IsTrue)
		shapes[i] = shape
	}
	engine, err := tetris.NewEngine(tetris.Tetrominoes(), tetris.DefaultRules(), 1, tetris.WithRandomizer(tetris.NewSequence(shapes...)))
	c.Assert(err, qt.IsNil)
	return engine
}

func play(engine *tetris.Engine, inputs []tetris.Input) tetris.View {
	for _, input := range inputs {
		engine.Input(input)
	}
	return engine.Frame()
}

func TestBestPlanFlatOnEmptyBoard(t *testing.T) {
	c := qt.New(t)

	engine := newEngine(c, "I")
	before := engine.Board().String()
	plan, ok := NewPlanner(DefaultEvaluator()).BestPlan(engine.Board())
	c.Assert(ok, qt.IsTrue)
	c.Assert(engine.Board().String(), qt.Equals, before)
	c.Assert(plan.Inputs[len(plan.Inputs)-1], qt.Equals, tetris.InputHardDrop)
	c.Assert(plan.Rotation%2, qt.Equals, 0)

	view := play(engine, plan.Inputs)
	filled := 0
	for x := 0; x < 10; x++ {
		if view.Cells[39][x] != tetris.ColorEmpty {
			filled++
		}
		c.Assert(view.Cells[38][x], qt.Equals, tetris.ColorEmpty)
	}
	c.Assert(filled, qt.Equals, 4)
	c.Assert(view.Cells[39][0] != tetris.ColorEmpty || view.Cells[39][9] != tetris.ColorEmpty, qt.IsTrue)
}

func TestBestPlanClearsLine(t *testing.T) {
	c := qt.New(t)

	engine := newEngine(c, "I")
	for x := 0; x < 9; x++ {
		engine.Board().Grid().SetCell(x, 39, tetris.ColorRed)
	}
	plan, ok := NewPlanner(DefaultEvaluator()).BestPlan(engine.Board())
	c.Assert(ok, qt.IsTrue)
	c.Assert(plan.Rotation%2, qt.Equals, 1)

	play(engine, plan.Inputs)
	c.Assert(engine.Score().Lines, qt.Equals, 1)
	c.Assert(engine.Score().Score, qt.Equals, 100)
}

func TestPlayerOncePerMino(t *testing.T) {
	c := qt.New(t)

	engine := newEngine(c, "T", "O")
	player := NewPlayer(NewPlanner(DefaultEvaluator()))

	inputs := player.Next(engine.Board(), engine.Pieces())
	c.Assert(inputs, qt.Not(qt.HasLen), 0)
	c.Assert(player.Next(engine.Board(), engine.Pieces()), qt.IsNil)

	play(engine, inputs)
	c.Assert(engine.Pieces(), qt.Equals, 1)
	c.Assert(player.Next(engine.Board(), engine.Pieces()), qt.Not(qt.HasLen), 0)
}

func TestPlayerLongGame(t *testing.T) {
	c := qt.New(t)

	engine, err := tetris.NewEngine(tetris.Tetrominoes(), tetris.DefaultRules(), 3)
	c.Assert(err, qt.IsNil)
	player := NewPlayer(NewPlanner(DefaultEvaluator()))
	for engine.Pieces() < 100 && !engine.GameOver() {
		play(engine, player.Next(engine.Board(), engine.Pieces()))
	}
	c.Assert(engine.GameOver(), qt.IsFalse)
	c.Assert(engine.Score().Lines > 0, qt.IsTrue)
}

func TestEvaluators(t *testing.T) {
	c := qt.New(t)

	grid := tetris.NewGrid(4, 4)
	grid.SetCell(0, 1, tetris.ColorRed)
	grid.SetCell(2, 3, tetris.ColorRed)
	placement := Placement{Grid: grid, Lines: 2}

	c.Assert((&HeightEvaluator{}).Evaluate(placement), qt.Equals, 4.0)
	c.Assert((&HolesEvaluator{}).Evaluate(placement), qt.Equals, 2.0)
	c.Assert((&BumpinessEvaluator{}).Evaluate(placement), qt.Equals, 5.0)
	c.Assert((&LinesEvaluator{}).Evaluate(placement), qt.Equals, 2.0)

	weighted := NewWeightedEvaluator([]Evaluator{&HeightEvaluator{}, &LinesEvaluator{}}, []float64{1, 10})
	c.Assert(weighted.Evaluate(placement), qt.Equals, 24.0)
}
