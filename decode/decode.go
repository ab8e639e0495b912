// Package decode turns playlist entries into pixels: one-shot bitmap loads for still images
// and an external decoder process piping fixed-size raw frames for videos.
package decode

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrProbe means the source dimensions could not be determined.
	ErrProbe = errors.New("probe failed")
	// ErrInvalidDimensions means the probe succeeded but reported no usable frame size.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrDecodeStart means the decoder process could not be launched.
	ErrDecodeStart = errors.New("decoder failed to start")
	// ErrDecoderExited means the decoder process ended with a non-zero status.
	ErrDecoderExited = errors.New("decoder exited")
)

// Dimensions is a frame size in pixels.
type Dimensions struct {
	Width  int `json:"width" jsonschema:"minimum=0"`
	Height int `json:"height" jsonschema:"minimum=0"`
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Prober determines the frame size of a video.
type Prober interface {
	Probe(ctx context.Context, path string) (Dimensions, error)
}

// Backend probes videos and starts decoding them into raw frames.
type Backend interface {
	Prober
	// StartDecode launches a decoder producing frames of exactly the given dimensions.
	StartDecode(ctx context.Context, path string, dims Dimensions) (FrameSource, error)
}

// FrameSource is a pull-model stream of raw frames.
type FrameSource interface {
	// Dimensions returns the size of every frame.
	Dimensions() Dimensions
	// Format returns the pixel layout of every frame.
	Format() Format
	// FrameSize is the exact number of bytes ReadFrame fills.
	FrameSize() int
	// ReadFrame fills buf with the next frame. It returns io.EOF when the stream
	// ended cleanly or was truncated, and an error wrapping ErrDecoderExited when
	// the decoder exited with a non-zero status.
	ReadFrame(buf []byte) error
	// Close terminates the decoder and waits for it. Calling it more than once is harmless.
	Close() error
}
