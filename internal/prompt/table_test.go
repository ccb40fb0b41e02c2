package prompt

import (
	"testing"

	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	qt "github.com/frankban/quicktest"
)

func gameRows() []tbl.Row {
	return Rows([][]string{
		{"0b4f6a1e", "tetromino", "12,400", "2 hours ago"},
		{"7c21d9aa", "pentomino", "3,150", "yesterday"},
		{"9e0d55c2", "pentomino", "48,900", "3 days ago"},
	})
}

func newGamePicker() *picker {
	columns := Columns([]string{"ID", "Variant", "Score", "Finished"}, []int{8, 10, 8, 12})
	return newPicker(columns, gameRows(), 0)
}

func typeText(m *picker, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestPickerEnter(t *testing.T) {
	c := qt.New(t)

	m := newGamePicker()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c.Assert(cmd, qt.IsNotNil)
	c.Assert(m.done, qt.IsTrue)
	c.Assert(m.choice, qt.Equals, "7c21d9aa")
	c.Assert(m.View(), qt.Equals, "")
}

func TestPickerFilter(t *testing.T) {
	c := qt.New(t)

	m := newGamePicker()
	typeText(m, "PENTO")
	c.Assert(m.table.Rows(), qt.HasLen, 2)
	c.Assert(m.View(), qt.Contains, `filter "PENTO"`)

	typeText(m, "x")
	c.Assert(m.table.Rows(), qt.HasLen, 0)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c.Assert(m.choice, qt.Equals, "")

	m = newGamePicker()
	typeText(m, "48,9")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c.Assert(m.choice, qt.Equals, "9e0d55c2")
}

func TestPickerBackspace(t *testing.T) {
	c := qt.New(t)

	m := newGamePicker()
	typeText(m, "tetz")
	c.Assert(m.table.Rows(), qt.HasLen, 0)
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	c.Assert(m.filter, qt.Equals, "tet")
	c.Assert(m.table.Rows(), qt.HasLen, 1)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c.Assert(m.choice, qt.Equals, "0b4f6a1e")
}

func TestPickerCancel(t *testing.T) {
	c := qt.New(t)

	m := newGamePicker()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	c.Assert(cmd, qt.IsNotNil)
	c.Assert(m.done, qt.IsTrue)
	c.Assert(m.choice, qt.Equals, "")
}

func TestFilterRows(t *testing.T) {
	c := qt.New(t)

	rows := gameRows()
	c.Assert(filterRows(rows, ""), qt.HasLen, 3)
	c.Assert(filterRows(rows, "  "), qt.HasLen, 3)
	c.Assert(filterRows(rows, "ago"), qt.HasLen, 2)
	c.Assert(filterRows(rows, "7C21"), qt.DeepEquals, rows[1:2])
}
