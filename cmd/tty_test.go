package cmd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/askpdf/askpdf-cli/client"
	"github.com/askpdf/askpdf-cli/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitFor behaves like a spinner left running until action finishes.
func waitFor(_ string, action func()) error {
	action()
	return nil
}

func TestSpin(t *testing.T) {
	t.Run("ActionFinishes", func(t *testing.T) {
		var answer string
		err := spin(context.Background(), waitFor, "Asking", func(context.Context) {
			answer = "Paris"
		})
		require.NoError(t, err)
		assert.Equal(t, "Paris", answer)
	})
	t.Run("QuitCancelsAndWaits", func(t *testing.T) {
		started := make(chan struct{})
		quit := func(string, func()) error {
			<-started
			return nil
		}

		var cancelled atomic.Bool
		err := spin(context.Background(), quit, "Asking", func(ctx context.Context) {
			close(started)
			<-ctx.Done()
			cancelled.Store(true)
		})
		assert.ErrorIs(t, err, errInterrupted)
		assert.True(t, cancelled.Load())
	})
	t.Run("SpinnerErrorWins", func(t *testing.T) {
		boom := errors.New("no tty")
		fail := func(string, func()) error { return boom }

		err := spin(context.Background(), fail, "Asking", func(ctx context.Context) {
			<-ctx.Done()
		})
		assert.ErrorIs(t, err, boom)
	})
	t.Run("QuitDuringAskLeavesNoAnswer", func(t *testing.T) {
		entered := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-r.Context().Done()
		}))
		t.Cleanup(srv.Close)

		out := &page.Recorder{}
		flow := page.NewAskFlow(client.New(srv.URL), page.StaticText("q"), out, nil)
		quit := func(string, func()) error {
			<-entered
			return nil
		}

		var askErr error
		err := spin(context.Background(), quit, "Asking", func(ctx context.Context) {
			askErr = flow.Click(ctx)
		})
		assert.ErrorIs(t, err, errInterrupted)
		assert.ErrorIs(t, askErr, client.ErrTransport)
		assert.Empty(t, out.Writes())
	})
}
