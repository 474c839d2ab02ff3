package display

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var style = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.Color("9"))

// errOut is where errors are printed; stdout is kept for answers.
var errOut io.Writer = os.Stderr

// Error prints the error and any additional messages to the terminal
func Error(err error, msgs ...string) {
	// be defensive
	if err == nil {
		return
	}

	errMsg := err.Error()
	if errMsg == "" {
		return
	}

	ErrorMsg(err.Error())
	if len(msgs) > 0 {
		ErrorMsg(msgs...)
	}
}

func ErrorMsg(msgs ...string) {
	for _, msg := range msgs {
		fmt.Fprintln(errOut, style.Render(msg))
	}
}

func FatalErr(err error, msgs ...string) {
	Error(err, msgs...)
	os.Exit(1)
}

const hostHint = "Is the askpdf server running? Point the cli at it with `askpdf config set-host <url>` or --host."

// ErrorWithHostHint prints err followed by a hint on configuring the api host.
func ErrorWithHostHint(err error) {
	Error(err, hostHint)
}
