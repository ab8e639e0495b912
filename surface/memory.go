package surface

import (
	"image"
	"sync"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/overlay"
)

// Memory keeps the latest state written to it. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	snap Snapshot
	// keep is the image shown before an error, brought back on Restore
	keep Content
}

// NewMemory returns a blank surface.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ShowImage(img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Content = Still
	m.snap.Image = img
}

func (m *Memory) ShowFrame(frame decode.Frame) {
	img := frame.Image()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Content = Motion
	m.snap.Image = img
	m.snap.Frames++
}

func (m *Memory) SetOverlay(o overlay.Overlay) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap.Overlay = o
}

func (m *Memory) ShowError(file, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.Content != Error {
		m.keep = m.snap.Content
	}
	m.snap.Content = Error
	m.snap.Error = ErrorText{File: file, Reason: reason}
}

func (m *Memory) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap.Content == Error {
		m.snap.Content = m.keep
	}
	m.snap.Error = ErrorText{}
	m.snap.Restores++
}

// Snapshot returns a copy of the current state.
func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}
