// Package surface defines the renderable target of a facet and ships a headless implementation.
package surface

import (
	"image"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/overlay"
)

// Surface is what a facet paints into. The engine calls it only from its event loop,
// but readers such as a terminal renderer may inspect it concurrently.
type Surface interface {
	ShowImage(img image.Image)
	ShowFrame(frame decode.Frame)
	SetOverlay(o overlay.Overlay)
	// ShowError swaps the content for an error indicator naming the file and the reason.
	ShowError(file, reason string)
	// Restore brings back the normal visual host after an error.
	Restore()
}

// Content tells what a surface is currently showing.
type Content int

const (
	Blank Content = iota
	Still
	Motion
	Error
)

func (c Content) String() string {
	switch c {
	case Still:
		return "still"
	case Motion:
		return "motion"
	case Error:
		return "error"
	default:
		return "blank"
	}
}

// Snapshot is a copy of a surface's visible state.
type Snapshot struct {
	Content  Content
	Image    image.Image
	Frames   uint64
	Overlay  overlay.Overlay
	Error    ErrorText
	Restores int
}

// ErrorText is the content of the error indicator.
type ErrorText struct {
	File   string
	Reason string
}
