package prompt

import (
	"fmt"
	"os"
	"strings"

	tm "github.com/buger/goterm"
	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	pickerFooter = lipgloss.NewStyle().Faint(true)
)

// picker narrows a table with a typed filter and returns the first column
// of the chosen row.
type picker struct {
	table  tbl.Model
	all    []tbl.Row
	filter string
	done   bool
	choice string
}

func newPicker(columns []tbl.Column, rows []tbl.Row, initPos int) *picker {
	t := tbl.New(
		tbl.WithColumns(columns),
		tbl.WithRows(rows),
		tbl.WithFocused(true),
	)
	if initPos >= 0 && initPos < len(rows) {
		t.SetCursor(initPos)
	}

	s := tbl.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &picker{table: t, all: rows}
}

func (m *picker) Init() tea.Cmd {
	return nil
}

func (m *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.done = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		if len(m.table.Rows()) > 0 {
			if row := m.table.SelectedRow(); len(row) > 0 {
				m.choice = row[0]
			}
		}
		return m, tea.Quit
	case tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.setFilter(string(runes[:len(runes)-1]))
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.setFilter(m.filter + string(key.Runes))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// setFilter keeps the rows with a cell containing filter, ignoring case
func (m *picker) setFilter(filter string) {
	m.filter = filter
	rows := filterRows(m.all, filter)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func filterRows(rows []tbl.Row, filter string) []tbl.Row {
	needle := strings.ToLower(strings.TrimSpace(filter))
	if needle == "" {
		return rows
	}
	matched := make([]tbl.Row, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

func (m *picker) View() string {
	if m.done {
		return ""
	}
	// header takes 3 lines, the footer 2 and earlier output at most 5
	height := len(m.table.Rows())
	if limit := tm.Height() - 10; limit > 0 && limit < height {
		height = limit
	}
	m.table.SetHeight(height)

	footer := fmt.Sprintf("%d of %d  type to filter, enter to pick, esc to cancel", len(m.table.Rows()), len(m.all))
	if m.filter != "" {
		footer = fmt.Sprintf("filter %q  %s", m.filter, footer)
	}
	return pickerBorder.Render(m.table.View()) + "\n" + pickerFooter.Render(footer) + "\n"
}

// Table lets the user pick a row and returns its first column, or an empty
// string when the prompt is cancelled. Typing filters the rows.
func Table(columns []tbl.Column, rows []tbl.Row, initPos int) string {
	m := newPicker(columns, rows, initPos)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		os.Exit(130)
	}
	return m.choice
}

// Columns creates table columns of the given titles and widths
func Columns(titles []string, widths []int) []tbl.Column {
	columns := make([]tbl.Column, len(titles))
	for i, title := range titles {
		columns[i] = tbl.Column{Title: title, Width: widths[i]}
	}
	return columns
}

// Rows converts plain string rows to table rows
func Rows(data [][]string) []tbl.Row {
	rows := make([]tbl.Row, len(data))
	for i, row := range data {
		rows[i] = tbl.Row(row)
	}
	return rows
}
