package engine

import (
	"context"
	"image"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/overlay"
	"github.com/facetwall/facetwall/player"
	"github.com/facetwall/facetwall/playlist"
	"github.com/facetwall/facetwall/surface"
	"github.com/samber/lo"
)

// fakeClock only moves when told to. Timer callbacks run on the caller's goroutine.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward by d, firing due timers in order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		due := lo.Filter(c.timers, func(t *fakeTimer, _ int) bool {
			return !t.stopped && !t.fired && !t.at.After(target)
		})
		if len(due) == 0 {
			break
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })

		t := due[0]
		t.fired = true
		c.now = t.at
		c.mu.Unlock()
		t.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Pending counts armed timers.
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.CountBy(c.timers, func(t *fakeTimer) bool { return !t.stopped && !t.fired })
}

type fakeImages struct {
	mu    sync.Mutex
	fail  map[string]error
	loads []string
}

func (l *fakeImages) Load(path string) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads = append(l.loads, path)
	if err := l.fail[path]; err != nil {
		return nil, err
	}
	return image.NewNRGBA(image.Rect(0, 0, 4, 2)), nil
}

// fakeBackend hands out sources producing frames[path] frames, then ending with exit[path] or io.EOF.
type fakeBackend struct {
	mu       sync.Mutex
	probeErr map[string]error
	startErr map[string]error
	frames   map[string]int
	exit     map[string]error
	sources  []*fakeSource
	// probes holds the context of every Probe call, in order
	probes []context.Context
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		probeErr: map[string]error{},
		startErr: map[string]error{},
		frames:   map[string]int{},
		exit:     map[string]error{},
	}
}

func (b *fakeBackend) Probe(ctx context.Context, path string) (decode.Dimensions, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.probes = append(b.probes, ctx)
	if err := b.probeErr[path]; err != nil {
		return decode.Dimensions{}, err
	}
	return decode.Dimensions{Width: 8, Height: 4}, nil
}

func (b *fakeBackend) StartDecode(ctx context.Context, path string, dims decode.Dimensions) (decode.FrameSource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := b.startErr[path]; err != nil {
		return nil, err
	}

	frames, ok := b.frames[path]
	if !ok {
		frames = 1 << 20
	}
	src := &fakeSource{path: path, dims: dims, remaining: frames, end: b.exit[path]}
	b.sources = append(b.sources, src)
	return src, nil
}

func (b *fakeBackend) live() []*fakeSource {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lo.Filter(b.sources, func(s *fakeSource, _ int) bool { return !s.isClosed() })
}

type fakeSource struct {
	mu        sync.Mutex
	path      string
	dims      decode.Dimensions
	remaining int
	end       error
	closed    bool
	closes    int
}

func (s *fakeSource) Dimensions() decode.Dimensions { return s.dims }

func (s *fakeSource) Format() decode.Format { return decode.RGBA }

func (s *fakeSource) FrameSize() int { return decode.RGBA.FrameSize(s.dims) }

func (s *fakeSource) ReadFrame(buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return os.ErrClosed
	}
	if s.remaining == 0 {
		if s.end != nil {
			return s.end
		}
		return io.EOF
	}
	s.remaining--
	buf[0]++
	return nil
}

func (s *fakeSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.closes++
	return nil
}

func (s *fakeSource) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type fakeNative struct {
	mu       sync.Mutex
	duration float64
	err      error
	sessions []*fakeSession
}

func (n *fakeNative) Open(ctx context.Context, _ string) (player.Session, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n.err != nil {
		return nil, n.err
	}
	s := &fakeSession{events: make(chan player.Event, 4), duration: n.duration}
	n.sessions = append(n.sessions, s)
	return s, nil
}

type fakeSession struct {
	mu       sync.Mutex
	events   chan player.Event
	duration float64
	closed   bool
}

func (s *fakeSession) Events() <-chan player.Event { return s.events }

func (s *fakeSession) Duration() float64 { return s.duration }

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	return nil
}

type fixture struct {
	s        *Scheduler
	clock    *fakeClock
	backend  *fakeBackend
	images   *fakeImages
	surfaces []*surface.Memory
}

func newFixture(paths []string, facets int, tweak ...func(*Options)) *fixture {
	fx := &fixture{
		clock:   newFakeClock(),
		backend: newFakeBackend(),
		images:  &fakeImages{fail: map[string]error{}},
	}

	opts := DefaultOptions()
	opts.Clock = fx.clock
	opts.Backend = fx.backend
	opts.Images = fx.images
	opts.Overlay = overlay.Settings{Mode: overlay.Filename}
	for _, t := range tweak {
		t(&opts)
	}

	targets := make([]surface.Surface, facets)
	for i := range targets {
		m := surface.NewMemory()
		fx.surfaces = append(fx.surfaces, m)
		targets[i] = m
	}

	fx.s = lo.Must(New(lo.Must(playlist.New(paths)), targets, opts))
	fx.s.spawn = func(f func()) { f() }
	return fx
}

// drain dispatches every queued event, including the ones queued while dispatching.
func (fx *fixture) drain() int {
	n := 0
	for {
		select {
		case e := <-fx.s.events:
			fx.s.dispatch(e)
			n++
		default:
			return n
		}
	}
}

// advance moves time in millisecond steps, dispatching events after each step.
func (fx *fixture) advance(d time.Duration) {
	fx.drain()
	for elapsed := time.Duration(0); elapsed < d; elapsed += time.Millisecond {
		fx.clock.Advance(time.Millisecond)
		fx.drain()
	}
}

// await dispatches the next event posted from another goroutine.
func (fx *fixture) await() bool {
	select {
	case e := <-fx.s.events:
		fx.s.dispatch(e)
		fx.drain()
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func (fx *fixture) status(i int) FacetStatus {
	return fx.s.Status()[i]
}
