package engine

import (
	"context"
	"time"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/media"
	"github.com/facetwall/facetwall/player"
	"github.com/facetwall/facetwall/surface"
)

// facet is the per-surface state. Only the event loop reads or writes it.
type facet struct {
	index   int
	surface surface.Surface

	path  string
	kind  media.Kind
	state State

	// session identifies the current assignment; it moves on every reassignment and failure
	session uint64
	trace   string
	// cancel aborts the session's off-loop probe, launch or open
	cancel     context.CancelFunc
	assignedAt time.Time

	failed  bool
	lastErr string

	pacing   Timer
	recovery Timer
	grace    Timer

	source  decode.FrameSource
	native  player.Session
	buf     []byte
	reading bool
	seq     uint64
	frames  uint64

	assignments int
	failures    int
}

func (f *facet) ref() ref {
	return ref{Facet: f.index, Session: f.session}
}

func (f *facet) fields() log.Fields {
	return log.Fields{"facet": f.index, "session": f.session, "trace": f.trace, "path": f.path}
}

func stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

// release cancels the session's pending off-loop work, stops every timer of the facet
// and terminates its decoder or native session. It returns once the decoder is gone.
func (s *Scheduler) release(f *facet) {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}

	stop(&f.pacing)
	stop(&f.recovery)
	stop(&f.grace)

	if f.source != nil {
		if err := f.source.Close(); err != nil {
			log.With(f.fields()).Warnf("close decoder: %v", err)
		}
		f.source = nil
	}

	if f.native != nil {
		if err := f.native.Close(); err != nil {
			log.With(f.fields()).Warnf("close native session: %v", err)
		}
		f.native = nil
	}

	f.buf = nil
	f.reading = false
}
