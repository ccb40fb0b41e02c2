package tetris

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGridBounds(t *testing.T) {
	c := qt.New(t)

	grid := NewGrid(10, 40)
	c.Assert(grid.InBounds(0, 0), qt.IsTrue)
	c.Assert(grid.InBounds(9, 39), qt.IsTrue)
	c.Assert(grid.InBounds(10, 0), qt.IsFalse)
	c.Assert(grid.InBounds(0, -1), qt.IsFalse)

	// dropped
	grid.SetCell(-1, 5, ColorRed)
	grid.SetCell(10, 5, ColorRed)
	grid.SetCell(3, 40, ColorRed)
	c.Assert(grid.String(), qt.Equals, NewGrid(10, 40).String())

	defer func() {
		err, ok := recover().(error)
		c.Assert(ok, qt.IsTrue)
		c.Assert(err, qt.ErrorIs, ErrOutOfBounds)
	}()
	grid.Cell(10, 0)
	c.Fatal("Cell(10, 0) did not panic")
}

func TestGridClearEmptyRow(t *testing.T) {
	c := qt.New(t)

	grid := NewGrid(10, 40)
	grid.ClearRow(39)
	c.Assert(grid.Rows(), qt.DeepEquals, NewGrid(10, 40).Rows())

	grid.SetCell(2, 30, ColorBlue)
	before := grid.Rows()
	grid.ClearRow(-1)
	grid.ClearRow(40)
	c.Assert(grid.Rows(), qt.DeepEquals, before)
}

func TestGridClearRowShiftsDown(t *testing.T) {
	c := qt.New(t)

	grid := NewGrid(4, 6)
	for i := 0; i < 4; i++ {
		grid.SetCell(i, 5, ColorRed)
	}
	grid.SetCell(1, 4, ColorBlue)
	grid.SetCell(2, 3, ColorYellow)
	c.Assert(grid.RowFull(5), qt.IsTrue)
	c.Assert(grid.RowFull(4), qt.IsFalse)

	grid.ClearRow(5)
	c.Assert(grid.String(), qt.Equals, "....\n....\n....\n....\n..#.\n.#..\n")
	c.Assert(grid.Cell(1, 5), qt.Equals, ColorBlue)
	c.Assert(grid.Cell(2, 4), qt.Equals, ColorYellow)
	c.Assert(grid.RowFull(5), qt.IsFalse)
}

func TestGridClone(t *testing.T) {
	c := qt.New(t)

	grid := NewGrid(5, 5)
	grid.SetCell(0, 0, ColorRed)
	clone := grid.Clone()
	clone.SetCell(1, 1, ColorBlue)
	c.Assert(grid.IsEmpty(1, 1), qt.IsTrue)
	c.Assert(clone.Cell(0, 0), qt.Equals, ColorRed)

	grid.Reset()
	c.Assert(grid.IsEmpty(0, 0), qt.IsTrue)
	c.Assert(clone.IsEmpty(0, 0), qt.IsFalse)
}
