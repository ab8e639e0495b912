package engine

import (
	"context"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/media"
	"github.com/facetwall/facetwall/metrics"
	"github.com/facetwall/facetwall/util"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// AssignNext moves facet i to the next playlist item: it tears down the current
// session, draws from the cursor, updates the caption and starts loading the item.
// It must only be called from the event loop, or before Run.
func (s *Scheduler) AssignNext(i int) {
	f := s.facets[i]

	s.release(f)
	f.session++
	f.seq = 0
	f.frames = 0

	if f.failed {
		f.failed = false
		f.lastErr = ""
		f.surface.Restore()
	}

	idx, err := s.draw(f.path)
	if err != nil {
		log.With(f.fields()).Errorf("draw: %v", err)
		return
	}

	f.path = s.playlist.At(idx)
	f.kind = media.Classify(f.path)
	f.state = StateLoading
	f.trace = uuid.NewString()
	f.assignedAt = s.clock.Now()
	f.assignments++

	s.applier.Apply(f.surface, mo.Some(f.path))
	s.handle(f, Assigned{ref: f.ref(), Path: f.path, Kind: f.kind})
	s.publish(f)
}

// draw takes the next index from the cursor, redrawing while it names the path the
// facet is already showing. Redraws are bounded by the playlist length, so a
// playlist too short to avoid a repeat simply repeats.
func (s *Scheduler) draw(current string) (int, error) {
	idx, err := s.cursor.Next()
	if err != nil {
		return 0, err
	}

	maxTries := util.Max(1, s.playlist.Len())
	for tries := 0; s.playlist.At(idx) == current && tries < maxTries; tries++ {
		if idx, err = s.cursor.Next(); err != nil {
			return 0, err
		}
	}
	return idx, nil
}

func (s *Scheduler) load(f *facet) {
	metrics.Assigned(f.kind.String())
	log.With(f.fields()).Infof("assigned %s", f.kind)

	r, path := f.ref(), f.path
	ctx, cancel := context.WithCancel(s.ctx)
	f.cancel = cancel

	switch {
	case f.kind == media.Image:
		s.spawn(func() {
			img, err := s.opts.Images.Load(path)
			if err != nil {
				s.post(Failed{ref: r, Reason: err})
				return
			}
			s.post(Loaded{ref: r, Image: img})
		})

	case f.kind == media.Video && s.opts.Native != nil:
		s.spawn(func() {
			session, err := s.opts.Native.Open(ctx, path)
			if err != nil {
				s.post(Failed{ref: r, Reason: err})
				return
			}
			s.post(Opened{ref: r, Session: session})
		})

	case f.kind == media.Video:
		s.spawn(func() {
			dims, err := s.opts.Backend.Probe(ctx, path)
			if err != nil {
				s.post(Failed{ref: r, Reason: err})
				return
			}

			// superseded while probing: the loop no longer wants a decoder
			if ctx.Err() != nil {
				return
			}

			source, err := s.opts.Backend.StartDecode(ctx, path, decode.FitDimensions(dims, s.opts.FrameBox))
			if err != nil {
				s.post(Failed{ref: r, Reason: err})
				return
			}
			s.post(Started{ref: r, Source: source})
		})

	default:
		s.HandleFailure(f.index, ErrUnsupported)
	}
}
