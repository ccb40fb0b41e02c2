package tetris

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// View is a read-only snapshot of a game, rebuilt at the end of every frame.
// Cells are row major and include the hidden rows.
type View struct {
	Width       int
	Height      int
	HiddenRows  int
	Cells       [][]tcell.Color
	Active      []Point
	ActiveColor tcell.Color
	Ghost       []Point
	Next        *Shape
	Hold        *Shape
	CanHold     bool
	Score       int
	Level       int
	Lines       int
	Combo       int
	GameOver    bool
	Frame       int
	Pieces      int
}

func (engine *Engine) buildView() View {
	board := engine.board
	view := View{
		Width:      board.grid.width,
		Height:     board.grid.height,
		HiddenRows: engine.rules.HiddenRows,
		Cells:      board.grid.Rows(),
		Next:       board.Next(),
		Hold:       board.Held(),
		CanHold:    board.CanHold(),
		Score:      engine.score.Score,
		Level:      engine.score.Level,
		Lines:      engine.score.Lines,
		Combo:      engine.score.Combo,
		GameOver:   board.GameOver(),
		Frame:      engine.frame,
		Pieces:     engine.pieces,
	}

	if mino, ok := board.Current(); ok {
		view.Active = mino.Cells()
		view.ActiveColor = mino.Color()
	}
	if ghost, ok := board.GhostPosition(); ok {
		view.Ghost = ghost.Cells()
	}

	return view
}

// String draws the visible rows: '#' locked, '@' active, '+' ghost, '.' empty
func (view View) String() string {
	lines := make([][]byte, view.Height)
	for j := range lines {
		lines[j] = make([]byte, view.Width)
		for i := range lines[j] {
			if view.Cells[j][i] == ColorEmpty {
				lines[j][i] = '.'
			} else {
				lines[j][i] = '#'
			}
		}
	}
	for _, cell := range view.Ghost {
		lines[cell.Y][cell.X] = '+'
	}
	for _, cell := range view.Active {
		lines[cell.Y][cell.X] = '@'
	}

	var builder strings.Builder
	for _, line := range lines[view.HiddenRows:] {
		builder.Write(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}
