// Package page binds user-facing elements to the upload and ask flows.
//
// Elements are passed in explicitly so a terminal session, a one-shot
// command and a test can all drive the same flows.
package page

import (
	"sync"

	"github.com/askpdf/askpdf-cli/model"
)

// FilePicker yields the file chosen for the next upload, or nil.
type FilePicker interface {
	Selected() *model.SelectedFile
}

// Section is a part of the page that starts hidden.
type Section interface {
	Show()
}

// TextField is an editable single-line input.
type TextField interface {
	Value() string
}

// TextDisplay shows plain text. SetText may be called from any goroutine.
type TextDisplay interface {
	SetText(text string)
}

type StaticFile struct {
	File *model.SelectedFile
}

func (s StaticFile) Selected() *model.SelectedFile { return s.File }

type StaticText string

func (s StaticText) Value() string { return string(s) }

type SectionFunc func()

func (f SectionFunc) Show() { f() }

type DisplayFunc func(text string)

func (f DisplayFunc) SetText(text string) { f(text) }

// Recorder is a TextDisplay that remembers every write.
type Recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *Recorder) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, text)
}

// Text returns the last written text.
func (r *Recorder) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}

func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}
