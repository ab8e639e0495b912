// Package engine schedules media onto facets.
//
// A Scheduler owns the playlist cursor and every facet. All facet state is touched
// only by the goroutine running the event loop; probing, decoder launches, image loads,
// frame reads and native opens run elsewhere and report back as events. A failing
// facet shows an error for a cooldown and then moves on, without affecting any other facet.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/overlay"
	"github.com/facetwall/facetwall/playlist"
	"github.com/facetwall/facetwall/surface"
)

const eventBuffer = 1024

var (
	// ErrInstantFailure marks a video that ended implausibly soon after it was assigned.
	ErrInstantFailure = errors.New("ended instantly")
	// ErrUnsupported marks a playlist entry that is neither an image nor a video.
	ErrUnsupported = errors.New("unsupported media")
	// ErrRunning is returned by Run when the scheduler is already running.
	ErrRunning = errors.New("scheduler already running")
)

// Scheduler drives N facets through a shared playlist.
type Scheduler struct {
	playlist *playlist.Playlist
	cursor   *playlist.Cursor
	facets   []*facet
	opts     Options
	applier  *overlay.Applier
	clock    Clock

	events chan Event
	spawn  func(func())

	ctx    context.Context
	cancel context.CancelFunc

	running bool
	done    chan struct{}
	postMu  sync.RWMutex
	closed  bool

	statusMu sync.RWMutex
	statuses []FacetStatus
}

// New builds a scheduler for one facet per surface.
func New(pl *playlist.Playlist, surfaces []surface.Surface, opts Options) (*Scheduler, error) {
	if pl == nil || pl.Len() == 0 {
		return nil, playlist.ErrEmpty
	}
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("no facets to schedule")
	}
	if opts.Backend == nil && opts.Native == nil {
		return nil, fmt.Errorf("no video backend configured")
	}
	if opts.Images == nil {
		return nil, fmt.Errorf("no image loader configured")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		playlist: pl,
		cursor:   playlist.NewCursor(pl.Len()),
		opts:     opts,
		applier:  overlay.NewApplier(opts.Overlay),
		clock:    opts.Clock,
		events:   make(chan Event, eventBuffer),
		spawn:    func(f func()) { go f() },
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	s.facets = make([]*facet, len(surfaces))
	s.statuses = make([]FacetStatus, len(surfaces))
	for i, sf := range surfaces {
		s.facets[i] = &facet{index: i, surface: sf}
		s.publish(s.facets[i])
	}

	return s, nil
}

// Len returns the number of facets.
func (s *Scheduler) Len() int {
	return len(s.facets)
}

// Run assigns every facet its first item in facet order and then processes events
// until ctx ends. On return every timer is stopped and every decoder is gone.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.running {
		return ErrRunning
	}
	s.running = true

	log.Infof("scheduling %d entries onto %d facets", s.playlist.Len(), len(s.facets))
	s.start()

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return nil
		case e := <-s.events:
			s.dispatch(e)
		}
	}
}

func (s *Scheduler) start() {
	for i := range s.facets {
		s.AssignNext(i)
	}
}

// Skip asks facet i to move on to its next item. It is safe to call from any goroutine.
func (s *Scheduler) Skip(i int) {
	s.post(Skip{Facet: i})
}

// post hands an event to the loop. Once the loop is gone the event is discarded,
// closing whatever resource it carries.
func (s *Scheduler) post(e Event) {
	s.postMu.RLock()
	defer s.postMu.RUnlock()

	if s.closed {
		discard(e)
		return
	}

	select {
	case s.events <- e:
	case <-s.done:
		discard(e)
	}
}

func (s *Scheduler) dispatch(e Event) {
	r := e.target()
	if r.Facet < 0 || r.Facet >= len(s.facets) {
		discard(e)
		return
	}
	f := s.facets[r.Facet]

	if skip, ok := e.(Skip); ok {
		log.With(f.fields()).Debugf("skip requested for facet %d", skip.Facet)
		s.AssignNext(f.index)
		return
	}

	if r.Session != f.session {
		log.With(f.fields()).Tracef("dropping %T of session %d", e, r.Session)
		discard(e)
		return
	}

	s.handle(f, e)
	s.publish(f)
}

// discard releases resources carried by an event nobody will handle.
func discard(e Event) {
	switch ev := e.(type) {
	case Started:
		if ev.Source != nil {
			_ = ev.Source.Close()
		}
	case Opened:
		if ev.Session != nil {
			_ = ev.Session.Close()
		}
	}
}

func (s *Scheduler) shutdown() {
	close(s.done)
	s.cancel()

	s.postMu.Lock()
	s.closed = true
	s.postMu.Unlock()

	for _, f := range s.facets {
		s.release(f)
		s.publish(f)
	}

	for {
		select {
		case e := <-s.events:
			discard(e)
		default:
			log.Info("scheduler stopped")
			return
		}
	}
}

// after arms a one-shot timer that posts e.
func (s *Scheduler) after(d time.Duration, e Event) Timer {
	return s.clock.AfterFunc(d, func() { s.post(e) })
}
