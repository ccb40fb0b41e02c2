package tetris

import (
	"github.com/gdamore/tcell/v2"
)

// Mino is a positioned, rotated and colored instance of a shape. It is a
// value: probing a move works on a copy and never touches the original.
type Mino struct {
	shape    *Shape
	x        int
	y        int
	rotation int
	color    tcell.Color
	ghost    bool
}

// NewMino creates a mino in rotation state 0 with its box at x, y
func NewMino(shape *Shape, x int, y int) Mino {
	return Mino{
		shape: shape,
		x:     x,
		y:     y,
		color: shape.color,
	}
}

// Shape returns the shape of the mino
func (mino Mino) Shape() *Shape {
	return mino.shape
}

// Position returns the top-left corner of the bounding box
func (mino Mino) Position() Point {
	return Point{X: mino.x, Y: mino.y}
}

// Rotation returns the rotation state in [0, 3]
func (mino Mino) Rotation() int {
	return mino.rotation
}

// Color returns the draw color
func (mino Mino) Color() tcell.Color {
	return mino.color
}

// IsGhost reports whether the mino is a ghost preview
func (mino Mino) IsGhost() bool {
	return mino.ghost
}

// Translate moves the mino. It is never validated here.
func (mino *Mino) Translate(dx int, dy int) {
	mino.x += dx
	mino.y += dy
}

// Rotate changes the rotation state, wrapping in both directions
func (mino *Mino) Rotate(direction Direction) {
	mino.rotation = normalizeRotation(mino.rotation + int(direction))
}

// Cells returns the absolute grid cells covered by the mino
func (mino Mino) Cells() []Point {
	cells := mino.shape.Cells(mino.rotation)
	for i := range cells {
		cells[i].X += mino.x
		cells[i].Y += mino.y
	}
	return cells
}

// Ghost returns a ghost colored copy of the mino
func (mino Mino) Ghost() Mino {
	mino.color = ColorGhost
	mino.ghost = true
	return mino
}

// KickCandidates returns the ordered kick offsets of the shape. The first
// entry is always the zero offset.
func (mino Mino) KickCandidates(from int, to int) []Point {
	return mino.shape.Kicks(from, to)
}

// CloneMove creates copy of the mino and moves it
func (mino Mino) CloneMove(dx int, dy int) Mino {
	mino.Translate(dx, dy)
	return mino
}

// CloneRotate creates copy of the mino and rotates it
func (mino Mino) CloneRotate(direction Direction) Mino {
	mino.Rotate(direction)
	return mino
}
