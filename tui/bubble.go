package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/facetwall/facetwall/engine"
	"github.com/facetwall/facetwall/internal/ui"
	"github.com/facetwall/facetwall/util"
)

const defaultRefresh = 100 * time.Millisecond

// statefulBubble is the window model: the loading indicator, then the wall.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	spinnerC spinner.Model
	helpC    help.Model
	notifier *ui.Model

	wall      Wall
	statuses  []engine.FacetStatus
	lastFrame time.Time
	polls     int
	thumbs    []thumbnail
	lastError error

	width, height int

	options *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

func newBubble(options *Options) *statefulBubble {
	if options.Refresh <= 0 {
		options.Refresh = defaultRefresh
	}
	if options.Ready == nil {
		options.Ready = &util.Ready{}
	}

	bubble := &statefulBubble{
		keymap:   newStatefulKeymap(),
		notifier: &ui.Model{},
		thumbs:   make([]thumbnail, len(options.Surfaces)),
		options:  options,
	}
	bubble.setState(loadingState)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	return bubble
}
