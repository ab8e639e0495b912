package player

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/internal/proc"
	"github.com/facetwall/facetwall/log"
	"github.com/google/uuid"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitWait          = 2 * time.Second
)

// MPV opens every file in a fresh mpv window controlled over JSON-IPC.
type MPV struct {
	Binary    string
	SocketDir string
}

// NewMPV returns a component launching binary, with sockets placed under socketDir.
func NewMPV(binary, socketDir string) *MPV {
	return &MPV{Binary: binary, SocketDir: socketDir}
}

// Open starts mpv on path and attaches to its IPC socket. Cancelling ctx before
// the socket is up kills the process.
func (m *MPV) Open(ctx context.Context, path string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := sanitizeMediaTarget(path)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	socket := filepath.Join(m.SocketDir, fmt.Sprintf("mpv-%s.sock", uuid.NewString()))

	cmd := exec.Command(m.Binary, args(socket, target)...)
	cmd.SysProcAttr = proc.SysProcAttr()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	abort := func() {
		_ = proc.Kill(cmd)
		<-exited
		_ = os.Remove(socket)
	}

	if err := waitForSocket(ctx, socket, exited); err != nil {
		log.Warnf("killing mpv: %v", err)
		abort()
		return nil, fmt.Errorf("mpv socket not ready: %w", err)
	}

	s, err := attach(socket)
	if err != nil {
		abort()
		return nil, err
	}
	s.cmd = cmd
	s.exited = exited

	log.With(log.Fields{"path": target, "pid": cmd.Process.Pid}).Debug("mpv started")
	return s, nil
}

func args(socket, target string) []string {
	title := fmt.Sprintf("%s - %s", constant.Facetwall, sanitizeTitle(filepath.Base(target)))
	return []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socket),
		fmt.Sprintf("--title=%s", title),
		"--force-window=yes",
		"--keep-open=no",
		"--idle=no",
		"--loop-file=no",
		"--",
		target,
	}
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func waitForSocket(ctx context.Context, socket string, exited <-chan struct{}) error {
	for i := 0; i < socketWaitRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-exited:
			return fmt.Errorf("mpv exited before socket was ready")
		case <-time.After(socketWaitDelay):
		}

		conn, err := net.Dial("unix", socket)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", socket, socketWaitRetries)
}

// sanitizeMediaTarget rejects paths that mpv could mistake for options or that carry control characters.
func sanitizeMediaTarget(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.ContainsAny(p, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in path")
	}

	if strings.HasPrefix(p, "-") {
		return "", fmt.Errorf("path must not start with '-' (looks like a flag)")
	}

	return filepath.Clean(p), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
