package session

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Bridge turns page element calls into messages for the running program,
// so every change to what is shown happens on the program's event loop.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)

	question QuestionField
}

func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets where messages go, typically (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

// Show reveals the question section.
func (b *Bridge) Show() {
	b.post(ShowQuestionsMsg{})
}

// SetText replaces the shown answer.
func (b *Bridge) SetText(text string) {
	b.post(AnswerMsg{Text: text})
}

// Question is the field the ask flow reads from.
// The model keeps it in sync with the text input.
func (b *Bridge) Question() *QuestionField {
	return &b.question
}

// QuestionField is a page.TextField backed by the session text input.
type QuestionField struct {
	mu    sync.Mutex
	value string
}

func (q *QuestionField) Value() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.value
}

func (q *QuestionField) set(v string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.value = v
}

type ShowQuestionsMsg struct{}

type AnswerMsg struct {
	Text string
}
