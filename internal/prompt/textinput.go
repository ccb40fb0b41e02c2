package prompt

import (
	"errors"
	"fmt"

	ti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tursodatabase/pentris/internal"
)

var ErrCancelled = errors.New("cancelled by user")

type textinput struct {
	textInput ti.Model
	validate  func(string) error
	invalid   error
	err       error
	done      bool
	prompt    string
}

func newTextinput(prompt, placeholder, value string, validate func(string) error) textinput {
	ti := ti.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40

	return textinput{
		textInput: ti,
		validate:  validate,
		prompt:    prompt,
	}
}

func (m textinput) Init() tea.Cmd {
	return ti.Blink
}

func (m textinput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCancelled
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.validate != nil {
				// stay open until the value is accepted
				if m.invalid = m.validate(m.textInput.Value()); m.invalid != nil {
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}

	case error:
		m.err = msg
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textinput) View() string {
	if m.done {
		return ""
	}

	hint := "(press <enter> to submit)"
	if m.invalid != nil {
		hint = internal.Warn(m.invalid.Error())
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", m.prompt, m.textInput.View(), hint)
}

// TextInput asks for a value. validate, when set, is run on submit and the
// prompt stays open until it returns nil.
func TextInput(prompt, placeholder, value string, validate func(string) error) (string, error) {
	if !isInteractive {
		return "", fmt.Errorf("%s: no terminal to prompt on", prompt)
	}
	p := tea.NewProgram(newTextinput(prompt, placeholder, value, validate))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := m.(textinput)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", m)
	}

	return model.textInput.Value(), model.err
}
