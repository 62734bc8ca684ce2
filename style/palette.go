// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's color scheme.
var (
	Base    = lipgloss.Color("#111827")
	Text    = lipgloss.Color("#e5e7eb")
	Subtext = lipgloss.Color("#9ca3af")
	Overlay = lipgloss.Color("#6b7280")
	Surface = lipgloss.Color("#374151")

	Rose    = lipgloss.Color("#f43f5e")
	RoseDim = lipgloss.Color("#fda4af")
	Red     = lipgloss.Color("#fca5a5")
	Green   = lipgloss.Color("#4ade80")
	Yellow  = lipgloss.Color("#facc15")
	Blue    = lipgloss.Color("#60a5fa")

	AccentColor  = Rose
	SuccessColor = Green
	ErrorColor   = Red
	FaintColor   = Overlay
	BorderColor  = Surface
)
