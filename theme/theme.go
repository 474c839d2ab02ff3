package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	light = catppuccin.Latte
	dark  = catppuccin.Mocha
)

// Accent, Muted and Alert are shared by prompts and the chat session.
var (
	Accent = lipgloss.AdaptiveColor{Light: light.Mauve().Hex, Dark: dark.Mauve().Hex}
	Muted  = lipgloss.AdaptiveColor{Light: light.Overlay1().Hex, Dark: dark.Overlay1().Hex}
	Alert  = lipgloss.AdaptiveColor{Light: light.Red().Hex, Dark: dark.Red().Hex}
)

func New() *huh.Theme {
	t := huh.ThemeDracula()

	subtext0 := lipgloss.AdaptiveColor{Light: light.Subtext0().Hex, Dark: dark.Subtext0().Hex}

	f := &t.Focused
	f.Title = f.Title.Foreground(Accent)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(Accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(Muted)
	f.ErrorMessage = f.ErrorMessage.Foreground(Alert)

	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(subtext0)
	t.Help.ShortKey = t.Help.ShortKey.Foreground(subtext0)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(Muted)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(subtext0)
	t.Help.FullKey = t.Help.FullKey.Foreground(subtext0)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(Muted)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(subtext0)

	return t
}
