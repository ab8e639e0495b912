package engine

import (
	"errors"
	"io"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/media"
	"github.com/facetwall/facetwall/metrics"
	"github.com/facetwall/facetwall/player"
)

// handle is the single typed handler of a facet. Stale events never reach it.
func (s *Scheduler) handle(f *facet, e Event) {
	switch ev := e.(type) {
	case Assigned:
		s.load(f)

	case Loaded:
		f.surface.ShowImage(ev.Image)
		f.state = StateHolding
		f.pacing = s.after(s.opts.Dwell, Ended{ref: f.ref()})

	case Started:
		f.source = ev.Source
		f.buf = make([]byte, ev.Source.FrameSize())
		f.state = StatePlaying
		f.pacing = s.after(s.opts.FrameInterval, Tick{ref: f.ref()})

	case Tick:
		if f.source == nil {
			return
		}
		f.pacing = s.after(s.opts.FrameInterval, Tick{ref: f.ref()})
		if !f.reading {
			f.reading = true
			s.read(f)
		}

	case FrameReady:
		f.reading = false
		f.frames++
		f.surface.ShowFrame(ev.Frame)
		metrics.FramePushed()

	case Opened:
		f.native = ev.Session
		f.state = StatePlaying
		f.grace = s.after(s.opts.DurationGrace, DurationCheck{ref: f.ref()})
		s.forward(f.ref(), ev.Session)

	case DurationCheck:
		f.grace = nil
		if f.native != nil && f.native.Duration() <= 0 {
			s.HandleFailure(f.index, player.ErrNoDuration)
		}

	case Ended:
		s.ended(f)

	case Failed:
		s.HandleFailure(f.index, ev.Reason)

	case Recovered:
		s.recover(f)
	}
}

// read pulls one frame off the decoder without blocking the loop.
func (s *Scheduler) read(f *facet) {
	r, source, buf := f.ref(), f.source, f.buf
	f.seq++
	seq := f.seq
	dims, format := source.Dimensions(), source.Format()

	s.spawn(func() {
		err := source.ReadFrame(buf)
		switch {
		case err == nil:
			s.post(FrameReady{ref: r, Frame: decode.Frame{
				Seq:    seq,
				Width:  dims.Width,
				Height: dims.Height,
				Format: format,
				Pix:    buf,
			}})
		case errors.Is(err, io.EOF):
			s.post(Ended{ref: r})
		default:
			s.post(Failed{ref: r, Reason: err})
		}
	})
}

// forward relays the end of a native session to the loop. The relay lives as long as
// the session, so it always gets a goroutine of its own.
func (s *Scheduler) forward(r ref, session player.Session) {
	go func() {
		for ev := range session.Events() {
			switch ev.Kind {
			case player.Ended:
				s.post(Ended{ref: r})
			case player.Failed:
				s.post(Failed{ref: r, Reason: ev.Err})
			}
		}
	}()
}

// ended advances the facet, unless a video ended so soon that it must have been broken.
func (s *Scheduler) ended(f *facet) {
	elapsed := s.clock.Now().Sub(f.assignedAt)
	if f.kind == media.Video && elapsed < s.opts.InstantFailure {
		log.With(f.fields()).Warnf("video ended after %s", elapsed)
		s.HandleFailure(f.index, ErrInstantFailure)
		return
	}

	f.state = StateCompleted
	s.AssignNext(f.index)
}
