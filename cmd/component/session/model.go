// Package session is the interactive chat page: upload one document,
// then ask questions about it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/askpdf/askpdf-cli/cmd/component/fetch"
	"github.com/askpdf/askpdf-cli/page"
	"github.com/askpdf/askpdf-cli/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Submitter interface {
	Submit(ctx context.Context) error
}

type Clicker interface {
	Begin() func(ctx context.Context) error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().PaddingLeft(2)
	mutedStyle  = lipgloss.NewStyle().Foreground(theme.Muted)
	errStyle    = lipgloss.NewStyle().Foreground(theme.Alert)
)

type uploadDoneMsg struct{ err error }

type askDoneMsg struct{ err error }

type Model struct {
	ctx      context.Context
	upload   Submitter
	ask      Clicker
	bridge   *Bridge
	fileName string

	waiting   fetch.Model
	uploading bool
	showQA    bool
	input     textinput.Model
	answer    string
	hasAnswer bool
	inFlight  int
	err       error
}

func New(ctx context.Context, upload Submitter, ask Clicker, bridge *Bridge, fileName string) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask something about " + fileName
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.Width = 60

	return Model{
		ctx:       ctx,
		upload:    upload,
		ask:       ask,
		bridge:    bridge,
		fileName:  fileName,
		waiting:   fetch.New("Uploading " + fileName),
		uploading: true,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	ctx, upload := m.ctx, m.upload
	return tea.Batch(m.waiting.Init(), func() tea.Msg {
		return uploadDoneMsg{err: upload.Submit(ctx)}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submitQuestion()
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case ShowQuestionsMsg:
		m.showQA = true
		return m, m.input.Focus()
	case AnswerMsg:
		m.answer = msg.Text
		m.hasAnswer = true
		return m, nil
	case uploadDoneMsg:
		m.uploading = false
		if msg.err != nil {
			m.err = fmt.Errorf("upload: %w", msg.err)
		}
		m.settleSpinner()
		return m, nil
	case askDoneMsg:
		m.inFlight--
		if msg.err != nil && !errors.Is(msg.err, page.ErrSuperseded) {
			m.err = msg.err
		}
		m.settleSpinner()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.waiting, cmd = m.waiting.Update(msg)
	cmds = append(cmds, cmd)
	if m.showQA {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submitQuestion is the ask button: it does not wait for earlier questions.
func (m Model) submitQuestion() (tea.Model, tea.Cmd) {
	if !m.showQA {
		return m, nil
	}

	m.bridge.Question().set(m.input.Value())
	run := m.ask.Begin()
	ctx := m.ctx
	askCmd := func() tea.Msg {
		return askDoneMsg{err: run(ctx)}
	}

	m.err = nil
	m.inFlight++
	if m.inFlight == 1 && !m.uploading {
		m.waiting = fetch.New(pendingMessage(m.inFlight))
		return m, tea.Batch(m.waiting.Init(), askCmd)
	}
	m.waiting = m.waiting.WithMessage(pendingMessage(m.inFlight))
	return m, askCmd
}

// settleSpinner stops the spinner once nothing is pending.
func (m *Model) settleSpinner() {
	switch {
	case m.uploading:
	case m.inFlight > 0:
		m.waiting = m.waiting.WithMessage(pendingMessage(m.inFlight))
	default:
		m.waiting, _ = m.waiting.Update(m.waiting.Done())
	}
}

func pendingMessage(n int) string {
	if n == 1 {
		return "Waiting for an answer"
	}
	return fmt.Sprintf("Waiting for %d answers", n)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("askpdf · " + m.fileName))
	b.WriteString("\n\n")

	if m.showQA {
		b.WriteString(labelStyle.Render("Question"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Answer"))
		b.WriteString("\n")
		if m.hasAnswer {
			b.WriteString(answerStyle.Render(m.answer))
		}
		b.WriteString("\n\n")
	}

	if m.waiting.Running() {
		b.WriteString(m.waiting.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	help := "esc quit"
	if m.showQA {
		help = "enter ask · " + help
	}
	b.WriteString(mutedStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}
