package page

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/askpdf/askpdf-cli/client"
)

// ErrSuperseded is returned by Click when a newer click started before
// this one's answer arrived. The stale answer is not displayed.
var ErrSuperseded = errors.New("answer superseded by a newer question")

type AskFlow struct {
	asker   client.Asker
	field   TextField
	display TextDisplay
	console *slog.Logger

	// generation of the most recent click
	generation atomic.Uint64
	// mu keeps the staleness check and the display write together
	mu sync.Mutex
}

func NewAskFlow(asker client.Asker, field TextField, display TextDisplay, console *slog.Logger) *AskFlow {
	if console == nil {
		console = slog.Default()
	}
	return &AskFlow{
		asker:   asker,
		field:   field,
		display: display,
		console: console,
	}
}

// Click sends the field's current text and shows the answer.
//
// Clicks may overlap. Only the answer to the latest click is shown; an
// older answer that arrives afterwards is dropped with ErrSuperseded.
// On error the display is left untouched.
func (f *AskFlow) Click(ctx context.Context) error {
	return f.Begin()(ctx)
}

// Begin does the synchronous part of a click: it reads the field and makes
// this click the latest one. The returned func sends the request and
// shows the answer.
func (f *AskFlow) Begin() func(ctx context.Context) error {
	question := f.field.Value()
	gen := f.generation.Add(1)
	logger := f.console.With("generation", gen)

	return func(ctx context.Context) error {
		logger.Debug("asking question", "question", question)
		answer, err := f.asker.Ask(ctx, question)
		if err != nil {
			logger.Debug("ask failed", "error", err)
			return err
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		if latest := f.generation.Load(); latest != gen {
			logger.Debug("dropping stale answer", "latest", latest)
			return ErrSuperseded
		}
		if !answer.Present() {
			logger.Warn("response has no answer field")
		}
		f.display.SetText(answer.Text())
		return nil
	}
}
