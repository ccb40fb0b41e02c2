package tetris

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func newTestEngine(c *qt.C, handler EventHandler, shapes ...*Shape) *Engine {
	engine, err := NewEngine(Tetrominoes(), DefaultRules(), 1, WithRandomizer(NewSequence(shapes...)), WithEventHandler(handler))
	c.Assert(err, qt.IsNil)
	return engine
}

func TestEngineNewGame(t *testing.T) {
	c := qt.New(t)

	engine, err := NewEngine(Tetrominoes(), DefaultRules(), 7)
	c.Assert(err, qt.IsNil)
	view := engine.View()
	c.Assert(view.Active, qt.HasLen, 4)
	c.Assert(view.Ghost, qt.HasLen, 4)
	c.Assert(view.Next, qt.IsNotNil)
	c.Assert(view.Hold, qt.IsNil)
	c.Assert(view.Level, qt.Equals, 1)
	c.Assert(view.Score, qt.Equals, 0)
	c.Assert(strings.Count(view.String(), "\n"), qt.Equals, 20)

	rules := DefaultRules()
	rules.Width = 2
	_, err = NewEngine(Tetrominoes(), rules, 7)
	c.Assert(err, qt.ErrorIs, ErrInvalidRules)
}

func TestEngineHardDropLocksSameFrame(t *testing.T) {
	c := qt.New(t)

	var events []EventType
	engine := newTestEngine(c, func(event Event) {
		events = append(events, event.Type)
	}, tetromino(c, "I"), tetromino(c, "O"))

	engine.Input(InputHardDrop)
	engine.Input(InputMoveLeft)
	view := engine.Frame()

	c.Assert(engine.Pieces(), qt.Equals, 1)
	c.Assert(view.Cells[39][2], qt.Equals, ColorEmpty)
	for x := 3; x <= 6; x++ {
		c.Assert(view.Cells[39][x], qt.Equals, ColorCyan)
	}
	mino, ok := engine.Board().Current()
	c.Assert(ok, qt.IsTrue)
	c.Assert(mino.Shape().Name(), qt.Equals, "O")
	c.Assert(mino.Position(), qt.Equals, Point{X: 4, Y: 18})
	c.Assert(events, qt.DeepEquals, []EventType{EventSpawn, EventLock, EventSpawn})
}

func TestEngineGravity(t *testing.T) {
	c := qt.New(t)

	engine := newTestEngine(c, nil, tetromino(c, "T"))
	for i := 0; i < 29; i++ {
		engine.Frame()
	}
	mino, _ := engine.Board().Current()
	c.Assert(mino.Position().Y, qt.Equals, 18)
	engine.Frame()
	mino, _ = engine.Board().Current()
	c.Assert(mino.Position().Y, qt.Equals, 19)

	engine.Input(InputSoftDrop)
	engine.Frame()
	mino, _ = engine.Board().Current()
	c.Assert(mino.Position().Y, qt.Equals, 20)
	c.Assert(engine.Frames(), qt.Equals, 31)
}

func TestEngineLockDelay(t *testing.T) {
	c := qt.New(t)

	engine := newTestEngine(c, nil, tetromino(c, "O"))
	engine.Board().HardDrop()

	for i := 0; i < 29; i++ {
		engine.Frame()
	}
	c.Assert(engine.Pieces(), qt.Equals, 0)
	engine.Frame()
	c.Assert(engine.Pieces(), qt.Equals, 1)
}

func TestEngineLockDelayResetsWhenAirborne(t *testing.T) {
	c := qt.New(t)

	engine := newTestEngine(c, nil, tetromino(c, "O"))
	engine.Board().Grid().SetCell(5, 39, ColorRed)
	engine.Board().HardDrop()
	mino, _ := engine.Board().Current()
	c.Assert(mino.Position(), qt.Equals, Point{X: 4, Y: 37})

	for i := 0; i < 20; i++ {
		engine.Frame()
	}
	engine.Input(InputMoveLeft)
	engine.Frame()
	c.Assert(engine.Board().CheckLockCondition(), qt.IsFalse)

	// gravity lands the mino on frame 30, then the full delay runs again
	for i := 0; i < 9; i++ {
		engine.Frame()
	}
	mino, _ = engine.Board().Current()
	c.Assert(mino.Position(), qt.Equals, Point{X: 3, Y: 38})
	for i := 0; i < 28; i++ {
		engine.Frame()
	}
	c.Assert(engine.Pieces(), qt.Equals, 0)
	engine.Frame()
	c.Assert(engine.Pieces(), qt.Equals, 1)
}

func TestEngineTetris(t *testing.T) {
	c := qt.New(t)

	var cleared []Event
	engine := newTestEngine(c, func(event Event) {
		if event.Type == EventLinesCleared {
			cleared = append(cleared, event)
		}
	}, tetromino(c, "I"))
	for y := 36; y < 40; y++ {
		for x := 0; x < 10; x++ {
			if x != 5 {
				engine.Board().Grid().SetCell(x, y, ColorRed)
			}
		}
	}

	engine.Input(InputRotateCW)
	engine.Input(InputHardDrop)
	view := engine.Frame()

	score := engine.Score()
	c.Assert(score.Score, qt.Equals, 800)
	c.Assert(score.Level, qt.Equals, 1)
	c.Assert(score.LinesTowardNextLevel, qt.Equals, 8)
	c.Assert(view.Lines, qt.Equals, 4)
	c.Assert(cleared, qt.HasLen, 1)
	c.Assert(cleared[0].Lines, qt.Equals, 4)
	c.Assert(cleared[0].Award.ScoreDelta, qt.Equals, 800)
	for y := 36; y < 40; y++ {
		for x := 0; x < 10; x++ {
			c.Assert(view.Cells[y][x], qt.Equals, ColorEmpty)
		}
	}
}

func TestEngineHold(t *testing.T) {
	c := qt.New(t)

	engine := newTestEngine(c, nil, tetromino(c, "T"), tetromino(c, "I"), tetromino(c, "O"))
	engine.Input(InputHold)
	engine.Input(InputHold)
	view := engine.Frame()
	c.Assert(view.Hold.Name(), qt.Equals, "T")
	c.Assert(view.Next.Name(), qt.Equals, "O")
	c.Assert(view.CanHold, qt.IsFalse)
	mino, _ := engine.Board().Current()
	c.Assert(mino.Shape().Name(), qt.Equals, "I")
}

func TestEngineHoldTopOut(t *testing.T) {
	c := qt.New(t)

	var events []EventType
	engine := newTestEngine(c, func(event Event) {
		events = append(events, event.Type)
	}, tetromino(c, "O"), tetromino(c, "I"))
	mino, _ := engine.Board().Current()
	c.Assert(mino.Shape().Name(), qt.Equals, "I")
	c.Assert(engine.Board().Next().Name(), qt.Equals, "O")

	// the held I brings in O, whose spawn cell is taken
	engine.Board().Grid().SetCell(4, 18, ColorRed)
	engine.Input(InputHold)
	view := engine.Frame()

	c.Assert(view.GameOver, qt.IsTrue)
	c.Assert(engine.GameOver(), qt.IsTrue)
	c.Assert(events, qt.DeepEquals, []EventType{EventSpawn, EventGameOver})
	c.Assert(view.Hold.Name(), qt.Equals, "I")
	c.Assert(view.Active, qt.HasLen, 0)
}

func TestEngineTopOut(t *testing.T) {
	c := qt.New(t)

	var buffer bytes.Buffer
	gameOvers := 0
	engine, err := NewEngine(Tetrominoes(), DefaultRules(), 1,
		WithRandomizer(NewSequence(tetromino(c, "O"))),
		WithLogger(log.New(&buffer, "", 0)),
		WithEventHandler(func(event Event) {
			if event.Type == EventGameOver {
				gameOvers++
			}
		}))
	c.Assert(err, qt.IsNil)

	for i := 0; i < 20 && !engine.GameOver(); i++ {
		engine.Input(InputHardDrop)
		engine.Frame()
	}
	c.Assert(engine.GameOver(), qt.IsTrue)
	c.Assert(engine.Pieces(), qt.Equals, 11)
	c.Assert(gameOvers, qt.Equals, 1)
	c.Assert(buffer.String(), qt.Contains, "Engine GameOver start")

	frames := engine.Frames()
	engine.Input(InputMoveLeft)
	view := engine.Frame()
	c.Assert(view.GameOver, qt.IsTrue)
	c.Assert(engine.Frames(), qt.Equals, frames)

	c.Assert(engine.Run(context.Background(), time.Millisecond, nil), qt.IsNil)

	engine.Reset()
	c.Assert(engine.GameOver(), qt.IsFalse)
	c.Assert(engine.Pieces(), qt.Equals, 0)
	c.Assert(engine.View().Cells[39][4], qt.Equals, ColorEmpty)
}

func TestEngineRunCancel(t *testing.T) {
	c := qt.New(t)

	engine := newTestEngine(c, nil, tetromino(c, "T"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Assert(engine.Run(ctx, time.Hour, nil), qt.ErrorIs, context.Canceled)
	c.Assert(engine.Frames(), qt.Equals, 0)
}

func TestInputNames(t *testing.T) {
	c := qt.New(t)

	for input := InputMoveLeft; input <= InputHold; input++ {
		parsed, err := ParseInput(input.String())
		c.Assert(err, qt.IsNil)
		c.Assert(parsed, qt.Equals, input)
	}
	_, err := ParseInput("spin")
	c.Assert(err, qt.IsNotNil)
	c.Assert(Input(42).String(), qt.Equals, "input(42)")
}
