package engine

import (
	"image"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/media"
	"github.com/facetwall/facetwall/player"
)

// Event is something that happened to a facet. Every event names the facet and the
// playback session it belongs to; events of a superseded session are dropped.
type Event interface {
	target() ref
}

type ref struct {
	Facet   int
	Session uint64
}

func (r ref) target() ref { return r }

// Assigned follows every draw from the cursor.
type Assigned struct {
	ref
	Path string
	Kind media.Kind
}

// Loaded carries a still image ready to be shown.
type Loaded struct {
	ref
	Image image.Image
}

// Started carries the decoder of a probed and launched video.
type Started struct {
	ref
	Source decode.FrameSource
}

// Tick is the pacing timer of a playing video.
type Tick struct {
	ref
}

// FrameReady carries a freshly read frame.
type FrameReady struct {
	ref
	Frame decode.Frame
}

// Ended means the item finished: the dwell ran out or the stream reached its end.
type Ended struct {
	ref
}

// Failed reports a decode or playback failure.
type Failed struct {
	ref
	Reason error
}

// Recovered is the expiry of the recovery timer.
type Recovered struct {
	ref
}

// Opened carries a native playback session that accepted its file.
type Opened struct {
	ref
	Session player.Session
}

// DurationCheck is the end of the grace window of a native session.
type DurationCheck struct {
	ref
}

// Skip asks for the facet to move on right away. It applies to whatever session is current.
type Skip struct {
	Facet int
}

func (s Skip) target() ref { return ref{Facet: s.Facet} }
