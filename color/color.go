// Package color provides a curated palette of colors.
package color

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// FromARGB converts a packed 0xAARRGGBB value into a truecolor lipgloss color.
// Terminals cannot blend, so the alpha channel is dropped.
func FromARGB(argb uint32) lipgloss.Color {
	return New(fmt.Sprintf("#%06x", argb&0xFFFFFF))
}

// FromRGB builds a truecolor lipgloss color from 8-bit channels.
func FromRGB(r, g, b uint8) lipgloss.Color {
	return New(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Hex-defined accent and semantic colors.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
