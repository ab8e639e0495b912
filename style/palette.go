package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's color scheme.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Sky      = lipgloss.Color("#89dceb")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = Overlay

	BorderColor      = Surface
	FrontBorderColor = AccentColor
)

// Facet state colors, keyed by the lower-cased state name.
var stateColors = map[string]lipgloss.Color{
	"unassigned": Overlay,
	"loading":    Sky,
	"playing":    Green,
	"holding":    Lavender,
	"completed":  Subtext,
	"failed":     Red,
}

// StateColor returns the color used to render a facet state, or Text when unknown.
func StateColor(state string) lipgloss.Color {
	if c, ok := stateColors[state]; ok {
		return c
	}
	return Text
}
