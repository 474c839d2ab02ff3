package display

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var infoStyle = lipgloss.NewStyle().
	Bold(false).
	PaddingTop(1).
	PaddingBottom(1).
	Foreground(lipgloss.AdaptiveColor{
		Light: "21",
		Dark:  "33",
	})

// answerOut replaces os.Stdout when set.
var answerOut io.Writer

func Info(text string) {
	fmt.Fprintln(errOut, infoStyle.Render(text))
}

// Answer prints text exactly as received, without styling.
func Answer(text string) {
	w := answerOut
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, text)
}
