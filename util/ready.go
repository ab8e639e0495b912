package util

import (
	"context"
	"sync"
	"time"
)

// Ready is a one-shot readiness flag. One side marks it once the heavy
// setup work is done, the other polls it while showing a loading indicator.
type Ready struct {
	mu    sync.Mutex
	ready bool
}

// MarkReady sets the flag. Calling it more than once is harmless.
func (r *Ready) MarkReady() {
	r.mu.Lock()
	r.ready = true
	r.mu.Unlock()
}

// IsReady reports the current state of the flag.
func (r *Ready) IsReady() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

// Await polls the flag every interval until it is set or ctx ends.
// onPoll, when not nil, is called on every unsuccessful poll.
func (r *Ready) Await(ctx context.Context, interval time.Duration, onPoll func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !r.IsReady() {
		if onPoll != nil {
			onPoll()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
