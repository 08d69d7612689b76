// Package tui renders page navigations for the terminal and hosts the
// interactive preview.
package tui

import "github.com/charmbracelet/lipgloss"

// Colors used across the preview.
const (
	ColorHeader    = lipgloss.Color("63")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("205")
	ColorMuted     = lipgloss.Color("240")
	ColorError     = lipgloss.Color("196")
)

// Key bindings.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keyLeft   = "left"
	keyRight  = "right"
	keyH      = "h"
	keyL      = "l"
	keyHome   = "home"
	keyEnd    = "end"
	keyG      = "g"
	keyShiftG = "G"
	keyPlus   = "+"
	keyMinus  = "-"
	keySlash  = "/"
	keyTab    = "tab"
)

// Skip and link content for terminal output.
const (
	SkipGlyph     = "…"
	PreviousGlyph = "«"
	NextGlyph     = "»"
)
