package decode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/metrics"
)

// Info is what ffprobe reports about the first video stream of a file.
type Info struct {
	Path       string     `json:"path"`
	Codec      string     `json:"codec,omitempty"`
	Dimensions Dimensions `json:"dimensions"`
	FrameRate  float64    `json:"frame_rate,omitempty" jsonschema:"description=Average frames per second"`
	Duration   float64    `json:"duration,omitempty" jsonschema:"description=Container duration in seconds"`
}

// FFmpeg decodes videos with the ffmpeg and ffprobe binaries.
type FFmpeg struct {
	FFmpegPath  string
	FFprobePath string
	Format      Format
	// FrameRate is the output cadence requested from ffmpeg.
	FrameRate float64
}

// NewFFmpeg returns a backend producing rgba frames at 30 fps using binaries from PATH.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		Format:      RGBA,
		FrameRate:   30,
	}
}

// FrameRateFor converts a pacing interval into a frame rate.
func FrameRateFor(interval time.Duration) float64 {
	if interval <= 0 {
		return 30
	}
	return float64(time.Second) / float64(interval)
}

// Probe returns the dimensions of the first video stream in path.
func (f *FFmpeg) Probe(ctx context.Context, path string) (Dimensions, error) {
	info, err := f.Inspect(ctx, path)
	if err != nil {
		return Dimensions{}, err
	}
	return info.Dimensions, nil
}

// Inspect runs ffprobe against path.
func (f *FFmpeg) Inspect(ctx context.Context, path string) (Info, error) {
	cmd := exec.CommandContext(ctx, f.FFprobePath, probeArgs(path)...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return Info{}, fmt.Errorf("%w: %s: %s", ErrProbe, path, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Info{}, fmt.Errorf("%w: %s: %v", ErrProbe, path, err)
	}

	info, err := parseProbe(out)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	info.Path = path
	return info, nil
}

func probeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,codec_name,avg_frame_rate:format=duration",
		"-of", "json",
		path,
	}
}

type probeOutput struct {
	Streams []struct {
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		CodecName    string `json:"codec_name"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func parseProbe(data []byte) (Info, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrProbe, err)
	}

	if len(out.Streams) == 0 {
		return Info{}, fmt.Errorf("%w: no video stream", ErrInvalidDimensions)
	}

	stream := out.Streams[0]
	info := Info{
		Codec:      stream.CodecName,
		Dimensions: Dimensions{Width: stream.Width, Height: stream.Height},
		FrameRate:  parseRate(stream.AvgFrameRate),
	}
	info.Duration, _ = strconv.ParseFloat(out.Format.Duration, 64)

	if !info.Dimensions.Valid() {
		return Info{}, fmt.Errorf("%w: %s", ErrInvalidDimensions, info.Dimensions)
	}
	return info, nil
}

// parseRate reads an ffprobe rational such as "30000/1001".
func parseRate(s string) float64 {
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

// StartDecode launches ffmpeg scaling path to dims and piping raw frames to us.
func (f *FFmpeg) StartDecode(ctx context.Context, path string, dims Dimensions) (FrameSource, error) {
	if !dims.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDimensions, dims)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	proc, err := startProcess(f.FFmpegPath, f.decodeArgs(path, dims)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeStart, path, err)
	}
	metrics.ObserveDecodeStart(time.Since(started))
	metrics.DecoderStarted()

	log.With(log.Fields{"path": path, "pid": proc.cmd.Process.Pid, "size": dims.String()}).Debug("decoder started")

	stop := func() {
		proc.kill()
		metrics.DecoderStopped()
	}
	return newStream(proc.stdout, dims, f.Format, proc.exitError, stop), nil
}

func (f *FFmpeg) decodeArgs(path string, dims Dimensions) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", path,
		"-an",
		"-f", "rawvideo",
		"-pix_fmt", string(f.Format),
		"-vf", fmt.Sprintf("scale=%d:%d", dims.Width, dims.Height),
		"-r", strconv.FormatFloat(f.FrameRate, 'f', 3, 64),
		"pipe:1",
	}
}
