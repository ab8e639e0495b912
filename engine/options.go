package engine

import (
	"image"
	"time"

	"github.com/facetwall/facetwall/config"
	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/overlay"
	"github.com/facetwall/facetwall/player"
)

// ImageLoader loads still images.
type ImageLoader interface {
	Load(path string) (image.Image, error)
}

// Options configure a scheduler.
type Options struct {
	// Dwell is how long a still image stays up.
	Dwell time.Duration
	// FrameInterval is the pacing of video frames.
	FrameInterval time.Duration
	// InstantFailure is the shortest plausible video; anything ending sooner is a failure.
	InstantFailure time.Duration
	// RecoveryDelay is how long a failed facet shows its error.
	RecoveryDelay time.Duration
	// DurationGrace is how long a native session has to report its duration.
	DurationGrace time.Duration

	// FrameBox bounds the size of decoded video frames.
	FrameBox decode.Dimensions

	Backend decode.Backend
	Images  ImageLoader
	// Native, when set, plays videos instead of Backend.
	Native  player.Component
	Overlay overlay.Settings
	Clock   Clock
}

// DefaultOptions returns the stock timings with the system clock and filename captions.
func DefaultOptions() Options {
	return Options{
		Dwell:          10 * time.Second,
		FrameInterval:  33 * time.Millisecond,
		InstantFailure: 2000 * time.Millisecond,
		RecoveryDelay:  5 * time.Second,
		DurationGrace:  3 * time.Second,
		FrameBox:       decode.Dimensions{Width: 1280, Height: 720},
		Overlay:        overlay.Settings{Mode: overlay.Filename, Style: overlay.Style{Color: 0xFFFFFFFF}},
		Clock:          SystemClock(),
	}
}

// OptionsFromConfig reads timings, the frame box and the caption settings from the
// global configuration. Collaborators are left for the caller to fill in.
func OptionsFromConfig() (Options, error) {
	opts := DefaultOptions()
	opts.Dwell = config.Millis(key.EngineDwell)
	opts.FrameInterval = config.Millis(key.EngineFrameInterval)
	opts.InstantFailure = config.Millis(key.EngineInstantFailure)
	opts.RecoveryDelay = config.Millis(key.EngineRecoveryDelay)
	opts.DurationGrace = config.Millis(key.EngineDurationGrace)
	opts.FrameBox = decode.BoxFromConfig()

	settings, err := overlay.SettingsFromConfig()
	if err != nil {
		return Options{}, err
	}
	opts.Overlay = settings

	return opts, nil
}
