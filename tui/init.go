package tui

import tea "github.com/charmbracelet/bubbletea"

// Init starts the loading indicator and the readiness poll.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.pollReady())
}
