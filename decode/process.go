package decode

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/facetwall/facetwall/internal/proc"
	"github.com/facetwall/facetwall/log"
)

const (
	stderrTailSize = 2048
	exitWaitLimit  = 3 * time.Second
)

// process is a managed decoder child. Its stdout is a pipe we own, so the reaper
// goroutine may Wait concurrently with frame reads.
type process struct {
	cmd    *exec.Cmd
	stdout *os.File
	stderr *tail

	exited  chan struct{}
	waitErr error

	killOnce sync.Once
}

func startProcess(name string, args ...string) (*process, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	p := &process{
		cmd:    exec.Command(name, args...),
		stdout: r,
		stderr: newTail(stderrTailSize),
		exited: make(chan struct{}),
	}
	p.cmd.Stdout = w
	p.cmd.Stderr = p.stderr
	p.cmd.SysProcAttr = proc.SysProcAttr()

	if err := p.cmd.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}

	// the child holds its own copy of the write end
	_ = w.Close()

	go func() {
		p.waitErr = p.cmd.Wait()
		close(p.exited)
	}()

	return p, nil
}

// exitError waits for the process to finish and returns a non-nil error when it
// ended abnormally. A process that outlives the wait limit is reported as healthy.
func (p *process) exitError() error {
	select {
	case <-p.exited:
	case <-time.After(exitWaitLimit):
		return nil
	}

	if p.waitErr == nil {
		return nil
	}

	if msg := p.stderr.String(); msg != "" {
		return fmt.Errorf("%w: %v: %s", ErrDecoderExited, p.waitErr, msg)
	}
	return fmt.Errorf("%w: %v", ErrDecoderExited, p.waitErr)
}

// kill terminates the process group, waits for the reaper and releases the pipe.
// Killing an already exited process is a no-op.
func (p *process) kill() {
	p.killOnce.Do(func() {
		select {
		case <-p.exited:
		default:
			if err := proc.Kill(p.cmd); err != nil {
				log.Debugf("kill decoder %d: %v", p.cmd.Process.Pid, err)
			}
			select {
			case <-p.exited:
			case <-time.After(exitWaitLimit):
				log.Warnf("decoder %d did not exit after kill", p.cmd.Process.Pid)
			}
		}
		_ = p.stdout.Close()
	})
}

// tail keeps the last n bytes written to it.
type tail struct {
	mu  sync.Mutex
	buf []byte
	n   int
}

func newTail(n int) *tail {
	return &tail{n: n}
}

func (t *tail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.n; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(bytes.TrimSpace(t.buf))
}
