package decode

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/facetwall/facetwall/version"
	"github.com/samber/lo"
)

// MinToolVersion is the oldest ffmpeg release whose rawvideo output and ffprobe JSON are relied on.
const MinToolVersion = "4.0.0"

const versionTimeout = 5 * time.Second

// Tool is an external binary the backend depends on.
type Tool struct {
	Name string
	Path string
	// Version is empty when the binary did not report one.
	Version string
	Err     error
}

// Found reports whether the binary was located.
func (t Tool) Found() bool {
	return t.Err == nil
}

// Outdated reports whether the binary reported a version older than MinToolVersion.
func (t Tool) Outdated() bool {
	return t.Version != "" && !version.AtLeast(t.Version, MinToolVersion)
}

// CheckTools looks up the binaries used by f and asks each for its version.
func (f *FFmpeg) CheckTools(ctx context.Context) []Tool {
	return lo.Map([]string{f.FFmpegPath, f.FFprobePath}, func(name string, _ int) Tool {
		path, err := exec.LookPath(name)
		if err != nil {
			return Tool{Name: name, Err: fmt.Errorf("%s not found: %w", name, err)}
		}
		return Tool{Name: name, Path: path, Version: toolVersion(ctx, path)}
	})
}

func toolVersion(ctx context.Context, path string) string {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, "-version").Output()
	if err != nil {
		return ""
	}

	firstLine, _, _ := strings.Cut(string(out), "\n")
	v, _ := version.Extract(firstLine)
	return v
}

// Missing returns the tools that could not be found.
func Missing(tools []Tool) []Tool {
	return lo.Reject(tools, func(t Tool, _ int) bool { return t.Found() })
}
