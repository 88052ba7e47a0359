// Package render draws a grid board, with search overlays, for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorWall    = lipgloss.Color("#29434e")
	colorVisited = lipgloss.Color("#4db6ac")
	colorPath    = lipgloss.Color("#FFC107")
	colorSource  = lipgloss.Color("#8BC34A")
	colorTarget  = lipgloss.Color("#e53935")
	colorWeight  = lipgloss.Color("#ff8a65")
	colorMuted   = lipgloss.Color("#d6dae0")
)

// Styles holds one style per cell state.
type Styles struct {
	Open     lipgloss.Style
	Weighted lipgloss.Style
	Wall     lipgloss.Style
	Visited  lipgloss.Style
	Path     lipgloss.Style
	Source   lipgloss.Style
	Target   lipgloss.Style
	Header   lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the colored palette used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Open:     lipgloss.NewStyle().Foreground(colorMuted),
		Weighted: lipgloss.NewStyle().Foreground(colorWeight),
		Wall:     lipgloss.NewStyle().Foreground(colorWall).Bold(true),
		Visited:  lipgloss.NewStyle().Foreground(colorVisited),
		Path:     lipgloss.NewStyle().Foreground(colorPath).Bold(true),
		Source:   lipgloss.NewStyle().Foreground(colorSource).Bold(true),
		Target:   lipgloss.NewStyle().Foreground(colorTarget).Bold(true),
		Header:   lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// PlainStyles returns unstyled text; output is stable regardless of terminal.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Open: s, Weighted: s, Wall: s, Visited: s, Path: s,
		Source: s, Target: s, Header: s, Muted: s,
	}
}
