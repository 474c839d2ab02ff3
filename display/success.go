package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var successStyle = lipgloss.NewStyle().
	Bold(true).
	PaddingTop(1).
	Foreground(lipgloss.Color("2"))

// Success prints a status line next to errors, keeping stdout clean for answers.
func Success(text string) {
	fmt.Fprintln(errOut, successStyle.Render(text))
}
