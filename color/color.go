// Package color provides the ANSI and accent colors used by CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// HiPurple is the high-intensity variant of Purple.
var HiPurple = New("13")

// Rose is the guide's brand color.
var Rose = New("#f43f5e")
