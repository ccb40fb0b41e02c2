package tetris

import (
	"github.com/gdamore/tcell/v2"
)

const (
	// RotateCW turns a mino a quarter turn clockwise
	RotateCW Direction = 1
	// RotateCCW turns a mino a quarter turn counter-clockwise
	RotateCCW Direction = -1

	// ColorEmpty is the clear sentinel stored in empty grid cells
	ColorEmpty = tcell.ColorBlack
	// ColorGhost is the color of a ghost mino
	ColorGhost = tcell.ColorGray

	ColorCyan    = tcell.ColorAqua    // I
	ColorBlue    = tcell.ColorBlue    // J
	ColorOrange  = tcell.ColorOrange  // L
	ColorYellow  = tcell.ColorYellow  // O
	ColorGreen   = tcell.ColorLime    // S
	ColorMagenta = tcell.ColorFuchsia // T
	ColorRed     = tcell.ColorRed     // Z
	ColorPurple  = tcell.ColorPurple
	ColorTeal    = tcell.ColorTeal
	ColorWhite   = tcell.ColorWhite
	ColorGold    = tcell.ColorGold
	ColorPink    = tcell.ColorPink
	ColorViolet  = tcell.ColorViolet
	ColorOlive   = tcell.ColorOlive
	ColorSilver  = tcell.ColorSilver
	ColorNavy    = tcell.ColorNavy
	ColorMaroon  = tcell.ColorMaroon
	ColorGreen2  = tcell.ColorGreen
)

type (
	// Direction is a rotation direction
	Direction int

	// Point is a cell coordinate or a kick offset. Y grows downward.
	Point struct {
		X int
		Y int
	}
)

// normalizeRotation maps any integer onto a rotation state in [0, 3]
func normalizeRotation(rotation int) int {
	return ((rotation % 4) + 4) % 4
}
