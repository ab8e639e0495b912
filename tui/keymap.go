package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/style"
)

// statefulKeymap defines the keys available in each window state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	pause, faster, slower,
	axisX, axisY, axisZ,
	skip, skipAll,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		faster: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+", "faster"),
		),
		slower: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-", "slower"),
		),
		axisX: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "x axis"),
		),
		axisY: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "y axis"),
		),
		axisZ: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "z axis"),
		),
		skip: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp(style.Fg(color.Orange)("s"), style.Fg(color.Orange)("skip front")),
		),
		skipAll: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "skip all"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case wallState:
		return h(k.pause, k.skip, k.quit, k.showHelp),
			h(k.pause, k.faster, k.slower, k.axisX, k.axisY, k.axisZ, k.skip, k.skipAll, k.quit)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
