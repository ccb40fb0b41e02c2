package prompt

import (
	"fmt"
	"os"
	"sync"

	spn "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type SpinnerT struct {
	spinner   spn.Model
	prefix    string
	mu        sync.Mutex
	suffix    string
	done      int
	total     int
	quitting  bool
	cancelled bool
	finished  chan bool
}

func newSpinner(prefix, suffix string, total int) *SpinnerT {
	s := spn.New()
	s.Spinner = spn.Dot
	return &SpinnerT{spinner: s, prefix: prefix, suffix: suffix, total: total}
}

func (m *SpinnerT) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *SpinnerT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.mu.Lock()
	quitting := m.quitting
	m.mu.Unlock()
	if quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.mu.Lock()
			m.quitting, m.cancelled = true, true
			m.mu.Unlock()
			return m, tea.Quit
		}
		return m, nil
	case error:
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *SpinnerT) View() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s%s %s", m.prefix, m.spinner.View(), m.status())
}

func (m *SpinnerT) status() string {
	if m.total == 0 {
		return m.suffix
	}
	return fmt.Sprintf("%s (%d/%d)", m.suffix, m.done, m.total)
}

func (m *SpinnerT) Stop() {
	m.mu.Lock()
	m.quitting = true
	m.mu.Unlock()
	if m.finished != nil {
		<-m.finished
	}
}

func (m *SpinnerT) Text(t string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = t
}

// Step counts one finished unit of work. Safe for concurrent use.
func (m *SpinnerT) Step() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done++
	if !isInteractive {
		fmt.Println(m.status())
	}
}

func (m *SpinnerT) Start() {
	if !isInteractive {
		fmt.Println(m.status())
		return
	}

	ch := make(chan bool)
	m.finished = ch
	m.quitting = false
	m.cancelled = false
	go func() {
		defer close(ch)
		tea.NewProgram(m).Run()
		if m.cancelled {
			os.Exit(130)
		}
	}()
}

func Spinner(text string) *SpinnerT {
	spinner := newSpinner("", text, 0)
	spinner.Start()
	return spinner
}

// Progress starts a spinner that counts steps up to total
func Progress(text string, total int) *SpinnerT {
	spinner := newSpinner("", text, total)
	spinner.Start()
	return spinner
}
