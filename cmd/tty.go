package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"

	"github.com/askpdf/askpdf-cli/client"
	"github.com/askpdf/askpdf-cli/display"
	"github.com/askpdf/askpdf-cli/theme"
)

var errInterrupted = errors.New("interrupted")

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// spinnerFunc shows title until action returns or the user quits.
type spinnerFunc func(title string, action func()) error

func huhSpinner(title string, action func()) error {
	return spinner.New().Title(title).Action(action).Run()
}

// withSpinner runs action behind a spinner when attached to a terminal.
func withSpinner(ctx context.Context, title string, action func(ctx context.Context)) error {
	if !isInteractive() {
		action(ctx)
		return nil
	}
	return spin(ctx, huhSpinner, title, action)
}

// spin runs action alongside run. The spinner returns early when the user
// quits it; action is then cancelled and awaited, and spin reports
// errInterrupted.
func spin(ctx context.Context, run spinnerFunc, title string, action func(ctx context.Context)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		action(ctx)
	}()

	err := run(title, func() { <-done })

	select {
	case <-done:
		return err
	default:
	}
	cancel()
	<-done
	if err != nil {
		return err
	}
	return errInterrupted
}

// prompt asks for a single line of input.
func prompt(title, placeholder string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithTheme(theme.New())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// reportRequestErr prints err, adding a hint when the server was unreachable.
func reportRequestErr(err error) {
	if errors.Is(err, client.ErrTransport) {
		display.ErrorWithHostHint(err)
		return
	}
	display.Error(err)
}
