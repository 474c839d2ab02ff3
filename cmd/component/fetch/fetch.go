package fetch

import (
	"github.com/askpdf/askpdf-cli/theme"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(theme.Accent)

// Model is a spinner with a message shown while a request is in flight.
type Model struct {
	spinner spinner.Model
	waitMsg string

	done bool
}

// New creates a new fetch model.
// waitMsg is the message to display while waiting for the fetch to complete.
func New(waitMsg string) Model {
	return Model{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		waitMsg: waitMsg,
	}
}

type DoneMsg struct{}

func (m Model) Done() DoneMsg {
	return DoneMsg{}
}

// Running reports whether the spinner is still shown.
func (m Model) Running() bool {
	return !m.done
}

// WithMessage returns a copy of m showing msg instead.
func (m Model) WithMessage(msg string) Model {
	m.waitMsg = msg
	return m
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.waitMsg
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return m.spinner.Tick
}

// Update updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case DoneMsg:
		m.done = true
		return m, nil
	}
	if m.done {
		return m, nil
	}
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}
