package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/pkg/pagination/view"
)

// Terminal is a view.MarkupBuilder that draws a navigation as a single
// styled line. Links lose their targets; items are styled from their class
// tokens: "active" is highlighted and "disabled" is muted.
type Terminal struct {
	link     lipgloss.Style
	current  lipgloss.Style
	disabled lipgloss.Style
}

// NewTerminal returns a Terminal drawing with r. A renderer writing to a
// non-terminal produces plain text.
func NewTerminal(r *lipgloss.Renderer) Terminal {
	return Terminal{
		link:     r.NewStyle().Foreground(ColorValue),
		current:  r.NewStyle().Foreground(ColorHighlight).Bold(true),
		disabled: r.NewStyle().Foreground(ColorMuted),
	}
}

// Anchor implements view.MarkupBuilder.
func (Terminal) Anchor(content, _ string, _ view.Attributes) string {
	return content
}

// Item implements view.MarkupBuilder.
func (t Terminal) Item(content string, attrs view.Attributes) string {
	switch {
	case attrs.Has("class", "disabled"):
		return t.disabled.Render(content)
	case attrs.Has("class", "active"):
		return t.current.Render(content)
	default:
		return t.link.Render(content)
	}
}

// Menu implements view.MarkupBuilder.
func (Terminal) Menu(items []string, _ view.Attributes) string {
	return strings.Join(items, " ")
}

// TerminalTheme returns the default theme with plain-text content: glyphs
// instead of HTML entities and the current page in brackets.
func TerminalTheme() *view.DefaultTheme {
	t := view.NewDefaultTheme()
	t.SkipContent = SkipGlyph
	t.CurrentTemplate = "[%d]"
	t.PreviousLink.Content = PreviousGlyph
	t.NextLink.Content = NextGlyph
	return t
}
