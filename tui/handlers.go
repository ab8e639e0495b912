package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const readyPollInterval = 50 * time.Millisecond

type (
	readyPollMsg struct{}
	sceneMsg     struct {
		wall Wall
		err  error
	}
	frameMsg time.Time
)

// pollReady checks the readiness flag on the next poll tick.
func (b *statefulBubble) pollReady() tea.Cmd {
	return tea.Tick(readyPollInterval, func(time.Time) tea.Msg {
		return readyPollMsg{}
	})
}

func (b *statefulBubble) loadScene() tea.Cmd {
	return func() tea.Msg {
		if b.options.Scene == nil {
			return sceneMsg{}
		}
		wall, err := b.options.Scene()
		return sceneMsg{wall: wall, err: err}
	}
}

func (b *statefulBubble) nextFrame() tea.Cmd {
	return tea.Tick(b.options.Refresh, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// front is the facet the rotation currently presents to the viewer.
func (b *statefulBubble) front() int {
	if b.options.Rotation == nil {
		return 0
	}
	return b.options.Rotation.Front(len(b.options.Surfaces))
}

func (b *statefulBubble) advance(now time.Time) {
	if !b.lastFrame.IsZero() && b.options.Rotation != nil {
		b.options.Rotation.Advance(now.Sub(b.lastFrame))
	}
	b.lastFrame = now

	if b.wall != nil {
		b.statuses = b.wall.Status()
	}
}
