package engine

import (
	"errors"
	"path/filepath"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/metrics"
	"github.com/facetwall/facetwall/player"
)

// HandleFailure puts facet i into the failed state: the surface shows the file name
// and the reason, the decoder is terminated and a single recovery timer is armed.
// A facet that is already failed is left alone.
// It must only be called from the event loop, or before Run.
func (s *Scheduler) HandleFailure(i int, reason error) {
	f := s.facets[i]
	if f.failed {
		return
	}

	if reason == nil {
		reason = errors.New("unknown failure")
	}

	s.release(f)
	f.session++
	f.failed = true
	f.state = StateFailed
	f.lastErr = reason.Error()
	f.failures++

	log.With(f.fields()).Warnf("facet failed: %v", reason)
	metrics.Failed(reasonLabel(reason))

	f.surface.ShowError(filepath.Base(f.path), reason.Error())
	f.recovery = s.after(s.opts.RecoveryDelay, Recovered{ref: f.ref()})
	s.publish(f)
}

// recover clears the failure of f and hands it the next item.
func (s *Scheduler) recover(f *facet) {
	f.recovery = nil
	if !f.failed {
		return
	}

	f.failed = false
	f.lastErr = ""
	f.surface.Restore()
	metrics.Recovered()
	log.With(f.fields()).Info("facet recovered")

	s.AssignNext(f.index)
}

func reasonLabel(err error) string {
	switch {
	case errors.Is(err, decode.ErrProbe):
		return "probe"
	case errors.Is(err, decode.ErrInvalidDimensions):
		return "dimensions"
	case errors.Is(err, decode.ErrDecodeStart):
		return "decode_start"
	case errors.Is(err, decode.ErrDecoderExited):
		return "decoder_exit"
	case errors.Is(err, ErrInstantFailure):
		return "instant"
	case errors.Is(err, ErrUnsupported):
		return "unsupported"
	case errors.Is(err, player.ErrNoDuration):
		return "no_duration"
	case errors.Is(err, player.ErrPlayback), errors.Is(err, player.ErrPlayerExited):
		return "native"
	default:
		return "load"
	}
}
