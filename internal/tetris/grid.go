package tetris

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrOutOfBounds is the panic value (wrapped) for reads outside the grid
var ErrOutOfBounds = errors.New("cell out of bounds")

// Grid is a fixed size store of locked cells, indexed column first
type Grid struct {
	width  int
	height int
	colors [][]tcell.Color
}

// NewGrid creates a clear grid
func NewGrid(width int, height int) *Grid {
	grid := &Grid{width: width, height: height}
	grid.colors = make([][]tcell.Color, width)
	for i := 0; i < width; i++ {
		grid.colors[i] = make([]tcell.Color, height)
	}
	grid.Reset()
	return grid
}

// Width returns the number of columns
func (grid *Grid) Width() int {
	return grid.width
}

// Height returns the number of rows, hidden rows included
func (grid *Grid) Height() int {
	return grid.height
}

// Reset clears every cell
func (grid *Grid) Reset() {
	for i := 0; i < grid.width; i++ {
		for j := 0; j < grid.height; j++ {
			grid.colors[i][j] = ColorEmpty
		}
	}
}

// InBounds reports whether x, y addresses a cell
func (grid *Grid) InBounds(x int, y int) bool {
	return x >= 0 && x < grid.width && y >= 0 && y < grid.height
}

// SetCell sets the color of a cell. Out of bounds writes are dropped.
func (grid *Grid) SetCell(x int, y int, color tcell.Color) {
	if !grid.InBounds(x, y) {
		return
	}
	grid.colors[x][y] = color
}

// Cell returns the color of a cell. The caller must check bounds first:
// reading outside the grid panics with ErrOutOfBounds.
func (grid *Grid) Cell(x int, y int) tcell.Color {
	if !grid.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, x, y, grid.width, grid.height))
	}
	return grid.colors[x][y]
}

// IsEmpty reports whether a cell holds the clear sentinel. Same bounds
// precondition as Cell.
func (grid *Grid) IsEmpty(x int, y int) bool {
	return grid.Cell(x, y) == ColorEmpty
}

// RowFull reports whether every column of row is occupied
func (grid *Grid) RowFull(row int) bool {
	if row < 0 || row >= grid.height {
		return false
	}
	for i := 0; i < grid.width; i++ {
		if grid.colors[i][row] == ColorEmpty {
			return false
		}
	}
	return true
}

// ClearRow erases row: in every column the row is reset, everything above it
// shifts down by one and the top cell becomes empty.
func (grid *Grid) ClearRow(row int) {
	if row < 0 || row >= grid.height {
		return
	}
	for i := 0; i < grid.width; i++ {
		grid.colors[i][row] = ColorEmpty
	}
	for j := row; j > 0; j-- {
		for i := 0; i < grid.width; i++ {
			grid.colors[i][j] = grid.colors[i][j-1]
		}
	}
	for i := 0; i < grid.width; i++ {
		grid.colors[i][0] = ColorEmpty
	}
}

// Rows returns a row major copy of the cells
func (grid *Grid) Rows() [][]tcell.Color {
	rows := make([][]tcell.Color, grid.height)
	for j := 0; j < grid.height; j++ {
		rows[j] = make([]tcell.Color, grid.width)
		for i := 0; i < grid.width; i++ {
			rows[j][i] = grid.colors[i][j]
		}
	}
	return rows
}

// Clone returns a deep copy of the grid
func (grid *Grid) Clone() *Grid {
	clone := &Grid{width: grid.width, height: grid.height}
	clone.colors = make([][]tcell.Color, grid.width)
	for i := 0; i < grid.width; i++ {
		clone.colors[i] = make([]tcell.Color, grid.height)
		copy(clone.colors[i], grid.colors[i])
	}
	return clone
}

// String renders the grid with '#' for occupied and '.' for empty cells
func (grid *Grid) String() string {
	var builder strings.Builder
	for j := 0; j < grid.height; j++ {
		for i := 0; i < grid.width; i++ {
			if grid.colors[i][j] == ColorEmpty {
				builder.WriteByte('.')
			} else {
				builder.WriteByte('#')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
