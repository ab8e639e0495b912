package tui

import (
	"fmt"
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/facetwall/facetwall/internal/ui"
	"github.com/facetwall/facetwall/rotation"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, notifyCmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case loadingState:
		cmd = b.updateLoading(msg)
	case wallState:
		cmd = b.updateWall(msg)
	case errorState:
		cmd = b.updateError(msg)
	}

	if notifyCmd == nil {
		return b, cmd
	}
	return b, tea.Batch(notifyCmd, cmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	case readyPollMsg:
		b.polls++
		if b.options.Ready.IsReady() {
			return b.loadScene()
		}
		return b.pollReady()
	case sceneMsg:
		if msg.err != nil {
			b.raiseError(msg.err)
			return nil
		}
		b.wall = msg.wall
		b.setState(wallState)
		b.advance(time.Now())
		return b.nextFrame()
	}
	return nil
}

func (b *statefulBubble) updateWall(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		b.advance(time.Time(msg))
		return b.nextFrame()
	case tea.KeyMsg:
		return b.handleWallKey(msg)
	}
	return nil
}

func (b *statefulBubble) handleWallKey(msg tea.KeyMsg) tea.Cmd {
	rot := b.options.Rotation

	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit
	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	case bubblesKey.Matches(msg, b.keymap.skip):
		if b.wall != nil {
			front := b.front()
			b.wall.Skip(front)
			return ui.Notify(fmt.Sprintf("skipped facet %d", front+1))
		}
	case bubblesKey.Matches(msg, b.keymap.skipAll):
		if b.wall != nil {
			for i := range b.options.Surfaces {
				b.wall.Skip(i)
			}
			return ui.Notify("skipped every facet")
		}
	}

	if rot == nil {
		return nil
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.pause):
		if rot.Toggle() {
			return ui.Notify("rotation paused")
		}
		return ui.Notify("rotation resumed")
	case bubblesKey.Matches(msg, b.keymap.faster):
		rot.Faster()
	case bubblesKey.Matches(msg, b.keymap.slower):
		rot.Slower()
	case bubblesKey.Matches(msg, b.keymap.axisX):
		rot.SetAxis(rotation.X)
	case bubblesKey.Matches(msg, b.keymap.axisY):
		rot.SetAxis(rotation.Y)
	case bubblesKey.Matches(msg, b.keymap.axisZ):
		rot.SetAxis(rotation.Z)
	}
	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}
