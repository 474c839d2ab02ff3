package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/askpdf/askpdf-cli/cmd/component/session"
	"github.com/askpdf/askpdf-cli/display"
	"github.com/askpdf/askpdf-cli/model"
	"github.com/askpdf/askpdf-cli/page"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const chatLogFileName = "askpdf-chat.log"

var chatCmd = &cobra.Command{
	Use:   "chat [file]",
	Short: "Upload a PDF and ask questions about it interactively",
	Args:  cobra.MaximumNArgs(1),
	Example: `
  askpdf chat ./handbook.pdf
  askpdf chat # prompts for the file
  `,
	Long: `
  Chat uploads the document and opens an interactive session.

  Questions can be sent while earlier ones are still waiting for an answer;
  the answer shown is always the one for the most recent question.
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		if !isInteractive() {
			display.FatalErr(errors.New("chat needs an interactive terminal, use `askpdf upload` and `askpdf ask` instead"))
		}

		cl, err := newClient()
		if err != nil {
			display.FatalErr(err)
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			path, err = prompt("Which PDF should be uploaded?", "./document.pdf", validateFilePath)
			if err != nil {
				display.FatalErr(err)
			}
		}

		file, err := model.OpenFile(path)
		if err != nil {
			display.FatalErr(err)
		}

		// the terminal belongs to the session, so the console goes to a file
		console, err := openChatLog(filepath.Join(os.TempDir(), chatLogFileName), debugFlag)
		if err != nil {
			display.FatalErr(err)
		}
		defer console.Close()

		bridge := session.NewBridge()
		upload := page.NewUploadFlow(cl, page.StaticFile{File: file}, bridge, console.Logger)
		ask := page.NewAskFlow(cl, bridge.Question(), bridge, console.Logger)

		p := tea.NewProgram(session.New(ctx, upload, ask, bridge, file.Name), tea.WithContext(ctx))
		bridge.Attach(p.Send)

		_, err = p.Run()
		if console.Warned() {
			display.Info("The session logged problems, see " + console.Path)
		}
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			display.FatalErr(err)
		}
	},
}

func validateFilePath(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}

// chatLog is the chat session's console, appended to a file.
type chatLog struct {
	*slog.Logger
	Path string

	f      *os.File
	warned *atomic.Bool
}

// openChatLog logs at info level, or debug level when debug is set.
func openChatLog(path string, debug bool) (*chatLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	warned := &atomic.Bool{}
	h := warnMark{
		Handler: slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		seen:    warned,
	}
	return &chatLog{
		Logger: slog.New(h).With("command", "chat"),
		Path:   path,
		f:      f,
		warned: warned,
	}, nil
}

// Warned reports whether anything at warn level or above was logged.
func (c *chatLog) Warned() bool {
	return c.warned.Load()
}

func (c *chatLog) Close() error {
	return c.f.Close()
}

// warnMark notes when a record at warn level or above goes through.
type warnMark struct {
	slog.Handler
	seen *atomic.Bool
}

func (h warnMark) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.seen.Store(true)
	}
	return h.Handler.Handle(ctx, r)
}

func (h warnMark) WithAttrs(attrs []slog.Attr) slog.Handler {
	return warnMark{Handler: h.Handler.WithAttrs(attrs), seen: h.seen}
}

func (h warnMark) WithGroup(name string) slog.Handler {
	return warnMark{Handler: h.Handler.WithGroup(name), seen: h.seen}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
