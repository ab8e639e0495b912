// Package player drives a native media component that owns decoding and pacing itself,
// reporting back only when a file opened, ended or failed.
//
// It is the alternative to the raw frame pipeline of package decode, trading frame
// access for format coverage. The primary implementation targets mpv via its JSON-IPC interface.
package player

import (
	"context"
	"errors"
)

var (
	// ErrNoDuration means the component opened a file but never reported a usable duration.
	ErrNoDuration = errors.New("no usable duration")
	// ErrPlayerExited means the component went away before the file ended.
	ErrPlayerExited = errors.New("player exited")
	// ErrPlayback means the component reported an error while playing.
	ErrPlayback = errors.New("playback error")
)

// EventKind tells what happened to a native session.
type EventKind int

const (
	Opened EventKind = iota
	Ended
	Failed
)

func (k EventKind) String() string {
	switch k {
	case Opened:
		return "opened"
	case Ended:
		return "ended"
	default:
		return "failed"
	}
}

// Event is a notification from a native session. Err is set for Failed.
type Event struct {
	Kind EventKind
	Err  error
}

// Session is one file playing in the native component.
type Session interface {
	// Events delivers Opened followed by at most one of Ended or Failed.
	// The channel is closed once the session is over.
	Events() <-chan Event
	// Duration is the media length in seconds, or 0 while unknown.
	Duration() float64
	// Close stops playback. Calling it more than once is harmless.
	Close() error
}

// Component opens files for native playback.
type Component interface {
	Open(ctx context.Context, path string) (Session, error)
}
