package tetris

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kamstrup/intmap"
	"golang.org/x/exp/slices"
)

// KickTable maps a (from, to) rotation pair to the ordered wall kick
// offsets tried for that rotation.
type KickTable map[[2]int][]Point

// Shape is the immutable definition of a piece variant: its base cells
// inside a size x size box, its color and its wall kick table.
type Shape struct {
	name      string
	size      int
	color     tcell.Color
	base      []Point
	rotations [4][]Point
	kicks     *intmap.Map[uint32, []Point]
}

// NewShape creates a shape and precomputes its four rotations. Every kick
// list starts with the zero offset, so the unmodified rotation is tried first.
func NewShape(name string, size int, color tcell.Color, kicks KickTable, cells ...Point) *Shape {
	shape := &Shape{
		name:  name,
		size:  size,
		color: color,
		base:  slices.Clone(cells),
		kicks: intmap.New[uint32, []Point](len(kicks)),
	}
	for rotation := 0; rotation < 4; rotation++ {
		shape.rotations[rotation] = OccupiedCells(shape, rotation)
	}
	for pair, offsets := range kicks {
		if len(offsets) == 0 || offsets[0] != (Point{}) {
			offsets = append([]Point{{}}, offsets...)
		}
		shape.kicks.Put(kickKey(pair[0], pair[1]), slices.Clone(offsets))
	}
	return shape
}

// Name returns the variant name
func (shape *Shape) Name() string {
	return shape.name
}

// Size returns the side of the bounding box
func (shape *Shape) Size() int {
	return shape.size
}

// Color returns the palette color of the shape
func (shape *Shape) Color() tcell.Color {
	return shape.color
}

// Len returns the number of cells of the shape
func (shape *Shape) Len() int {
	return len(shape.base)
}

// Cells returns the cells of the shape at a rotation, relative to the box
func (shape *Shape) Cells(rotation int) []Point {
	return slices.Clone(shape.rotations[normalizeRotation(rotation)])
}

// Kicks returns the ordered kick offsets for a rotation from one state to
// another. Pairs missing from the table only try the zero offset.
func (shape *Shape) Kicks(from int, to int) []Point {
	offsets, ok := shape.kicks.Get(kickKey(normalizeRotation(from), normalizeRotation(to)))
	if !ok {
		return []Point{{}}
	}
	return slices.Clone(offsets)
}

func kickKey(from int, to int) uint32 {
	return uint32(from)<<2 | uint32(to)
}

// OccupiedCells computes the cells of shape after rotation clockwise quarter
// turns. A turn reverses the rows of the box and then transposes it. Cells
// are returned in row-major order.
func OccupiedCells(shape *Shape, rotation int) []Point {
	box := make([][]bool, shape.size)
	for y := range box {
		box[y] = make([]bool, shape.size)
	}
	for _, cell := range shape.base {
		box[cell.Y][cell.X] = true
	}

	for i := 0; i < normalizeRotation(rotation); i++ {
		box = boxRotateRight(box)
	}

	cells := make([]Point, 0, len(shape.base))
	for y, line := range box {
		for x, filled := range line {
			if filled {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// boxRotateRight returns a copy of box turned a quarter turn clockwise
func boxRotateRight(box [][]bool) [][]bool {
	length := len(box)
	rotated := make([][]bool, length)
	for i := 0; i < length; i++ {
		rotated[i] = make([]bool, length)
	}

	for i := 0; i < length; i++ {
		for j := 0; j < length; j++ {
			rotated[i][j] = box[length-1-j][i]
		}
	}

	return rotated
}
