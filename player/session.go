package player

import (
	"bufio"
	"fmt"
	"math"
	"net"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/facetwall/facetwall/internal/proc"
	"github.com/facetwall/facetwall/log"
)

// session is one mpv instance playing one file. The read loop is the only sender on events.
type session struct {
	socket string
	conn   net.Conn

	cmd    *exec.Cmd
	exited chan struct{}

	events   chan Event
	duration atomic.Uint64
	closing  atomic.Bool

	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}

	opened   bool
	terminal bool
}

// attach connects to an mpv IPC socket, subscribes to the observed properties
// and starts reading events.
func attach(socket string) (*session, error) {
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	s := &session{
		socket: socket,
		conn:   conn,
		events: make(chan Event, 4),
		done:   make(chan struct{}),
	}

	// observers are bound to the connection that registered them
	for id, name := range observed {
		if err := s.command("observe_property", id, name); err != nil {
			conn.Close()
			return nil, fmt.Errorf("observe %s: %w", name, err)
		}
	}

	go s.readLoop()
	return s, nil
}

func (s *session) Events() <-chan Event {
	return s.events
}

func (s *session) Duration() float64 {
	return math.Float64frombits(s.duration.Load())
}

func (s *session) command(args ...any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return send(s.conn, args...)
}

func (s *session) readLoop() {
	defer close(s.done)
	defer close(s.events)

	scanner := bufio.NewScanner(s.conn)
	for scanner.Scan() {
		msg, ok := parseMessage(scanner.Bytes())
		if !ok || msg.Event == "" {
			continue
		}
		s.handle(msg)
	}

	if !s.closing.Load() && !s.terminal {
		s.emit(Event{Kind: Failed, Err: ErrPlayerExited})
	}
}

func (s *session) handle(msg message) {
	switch msg.Event {
	case "file-loaded":
		if !s.opened {
			s.opened = true
			s.emit(Event{Kind: Opened})
		}
	case "property-change":
		switch msg.Name {
		case "duration":
			if d, ok := msg.float(); ok {
				s.duration.Store(math.Float64bits(d))
			}
		case "eof-reached":
			if msg.bool() {
				s.emit(Event{Kind: Ended})
			}
		}
	case "end-file":
		switch msg.Reason {
		case "eof":
			s.emit(Event{Kind: Ended})
		case "error":
			s.emit(Event{Kind: Failed, Err: fmt.Errorf("%w: %s", ErrPlayback, msg.FileError)})
		}
	}
}

// emit delivers e unless the session already reached its end.
func (s *session) emit(e Event) {
	if s.terminal {
		return
	}
	if e.Kind != Opened {
		s.terminal = true
	}
	s.events <- e
}

func (s *session) Close() error {
	s.closeOnce.Do(func() {
		s.closing.Store(true)
		_ = s.command("quit")

		if s.cmd != nil {
			select {
			case <-s.exited:
			case <-time.After(quitWait):
				if err := proc.Kill(s.cmd); err != nil {
					log.Warnf("kill mpv: %v", err)
				}
				<-s.exited
			}
		}

		_ = s.conn.Close()
		<-s.done
		if s.cmd != nil {
			_ = os.Remove(s.socket)
		}
	})
	return nil
}
