package decode

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// stream reads fixed-size frames from r. exit reports how the producer ended
// once r is drained; stop tears the producer down.
type stream struct {
	r      io.Reader
	dims   Dimensions
	format Format
	exit   func() error
	stop   func()

	closeOnce sync.Once
}

func newStream(r io.Reader, dims Dimensions, format Format, exit func() error, stop func()) *stream {
	return &stream{r: r, dims: dims, format: format, exit: exit, stop: stop}
}

func (s *stream) Dimensions() Dimensions { return s.dims }

func (s *stream) Format() Format { return s.format }

func (s *stream) FrameSize() int {
	return s.format.FrameSize(s.dims)
}

func (s *stream) ReadFrame(buf []byte) error {
	if len(buf) != s.FrameSize() {
		return fmt.Errorf("frame buffer holds %d bytes, frames are %d", len(buf), s.FrameSize())
	}

	_, err := io.ReadFull(s.r, buf)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		if s.exit != nil {
			if exitErr := s.exit(); exitErr != nil {
				return exitErr
			}
		}
		return io.EOF
	}

	return err
}

func (s *stream) Close() error {
	s.closeOnce.Do(func() {
		if s.stop != nil {
			s.stop()
		}
	})
	return nil
}
