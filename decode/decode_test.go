package decode

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"io"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFitDimensions(t *testing.T) {
	Convey("FitDimensions", t, func() {
		box := Dimensions{Width: 1280, Height: 720}

		Convey("Larger sources shrink with their aspect ratio", func() {
			So(FitDimensions(Dimensions{1920, 1080}, box), ShouldResemble, Dimensions{1280, 720})
			So(FitDimensions(Dimensions{1080, 1920}, box), ShouldResemble, Dimensions{404, 720})
		})

		Convey("Smaller sources keep their size, rounded to even", func() {
			So(FitDimensions(Dimensions{641, 481}, box), ShouldResemble, Dimensions{640, 480})
		})

		Convey("A zero box side is unbounded", func() {
			So(FitDimensions(Dimensions{4000, 100}, Dimensions{Height: 50}), ShouldResemble, Dimensions{2000, 50})
		})

		Convey("Tiny or invalid sources", func() {
			So(FitDimensions(Dimensions{1, 1}, box), ShouldResemble, Dimensions{2, 2})
			So(FitDimensions(Dimensions{0, 10}, box), ShouldResemble, Dimensions{})
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Pixel formats", t, func() {
		f, err := ParseFormat("RGB24")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, RGB24)
		So(f.FrameSize(Dimensions{4, 2}), ShouldEqual, 24)
		So(BGRA.BytesPerPixel(), ShouldEqual, 4)
		So(Gray.BytesPerPixel(), ShouldEqual, 1)

		_, err = ParseFormat("yuv420p")
		So(err, ShouldNotBeNil)
	})

	Convey("Frame.Image converts every layout", t, func() {
		rgba := Frame{Width: 1, Height: 1, Format: RGBA, Pix: []byte{10, 20, 30, 255}}
		bgra := Frame{Width: 1, Height: 1, Format: BGRA, Pix: []byte{30, 20, 10, 255}}
		rgb := Frame{Width: 1, Height: 1, Format: RGB24, Pix: []byte{10, 20, 30}}

		want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
		for _, frame := range []Frame{rgba, bgra, rgb} {
			So(color.NRGBAModel.Convert(frame.Image().At(0, 0)), ShouldResemble, want)
		}

		gray := Frame{Width: 2, Height: 1, Format: Gray, Pix: []byte{0, 200}}
		So(gray.Image().At(1, 0), ShouldResemble, color.Gray{Y: 200})
	})
}

func TestParseProbe(t *testing.T) {
	Convey("parseProbe", t, func() {
		Convey("Reads the first video stream", func() {
			info, err := parseProbe([]byte(`{
				"programs": [],
				"streams": [{"codec_name": "h264", "width": 1920, "height": 1080, "avg_frame_rate": "30000/1001"}],
				"format": {"duration": "12.500000"}
			}`))
			So(err, ShouldBeNil)
			So(info.Dimensions, ShouldResemble, Dimensions{1920, 1080})
			So(info.Codec, ShouldEqual, "h264")
			So(info.FrameRate, ShouldAlmostEqual, 29.97, 0.01)
			So(info.Duration, ShouldEqual, 12.5)
		})

		Convey("No stream or zero size is an invalid-dimensions error", func() {
			_, err := parseProbe([]byte(`{"streams": []}`))
			So(errors.Is(err, ErrInvalidDimensions), ShouldBeTrue)

			_, err = parseProbe([]byte(`{"streams": [{"width": 0, "height": 720}]}`))
			So(errors.Is(err, ErrInvalidDimensions), ShouldBeTrue)
		})

		Convey("Garbage is a probe error", func() {
			_, err := parseProbe([]byte(`not json`))
			So(errors.Is(err, ErrProbe), ShouldBeTrue)
		})

		Convey("Rationals", func() {
			So(parseRate("25"), ShouldEqual, 25)
			So(parseRate("0/0"), ShouldEqual, 0)
			So(parseRate(""), ShouldEqual, 0)
		})
	})
}

func TestStream(t *testing.T) {
	dims := Dimensions{Width: 2, Height: 1}

	Convey("Given a stream of two and a half frames", t, func() {
		data := bytes.Repeat([]byte{1}, 8*2+3)
		stopped := 0
		s := newStream(bytes.NewReader(data), dims, RGBA, func() error { return nil }, func() { stopped++ })
		buf := make([]byte, s.FrameSize())

		So(s.FrameSize(), ShouldEqual, 8)
		So(s.ReadFrame(buf), ShouldBeNil)
		So(s.ReadFrame(buf), ShouldBeNil)

		Convey("The truncated tail reads as a clean end", func() {
			So(s.ReadFrame(buf), ShouldEqual, io.EOF)
		})

		Convey("Close stops the producer once", func() {
			So(s.Close(), ShouldBeNil)
			So(s.Close(), ShouldBeNil)
			So(stopped, ShouldEqual, 1)
		})
	})

	Convey("Given a producer that exited badly", t, func() {
		exitErr := errors.Join(ErrDecoderExited, errors.New("exit status 1"))
		s := newStream(bytes.NewReader(nil), dims, RGBA, func() error { return exitErr }, nil)

		err := s.ReadFrame(make([]byte, 8))
		So(errors.Is(err, ErrDecoderExited), ShouldBeTrue)
	})

	Convey("A wrongly sized buffer is rejected", t, func() {
		s := newStream(bytes.NewReader(nil), dims, RGBA, nil, nil)
		So(s.ReadFrame(make([]byte, 3)), ShouldNotBeNil)
	})
}

func TestTail(t *testing.T) {
	Convey("tail keeps only the last bytes", t, func() {
		tl := newTail(5)
		_, _ = tl.Write([]byte("hello "))
		_, _ = tl.Write([]byte("world"))
		So(tl.String(), ShouldEqual, "world")
	})
}

func TestFFmpegFailures(t *testing.T) {
	Convey("Given an ffmpeg backend with missing binaries", t, func() {
		ff := NewFFmpeg()
		ff.FFmpegPath = "/nonexistent/ffmpeg"
		ff.FFprobePath = "/nonexistent/ffprobe"
		ctx := context.Background()

		Convey("Probe fails with ErrProbe", func() {
			_, err := ff.Probe(ctx, "/media/clip.mp4")
			So(errors.Is(err, ErrProbe), ShouldBeTrue)
		})

		Convey("StartDecode fails with ErrDecodeStart", func() {
			_, err := ff.StartDecode(ctx, "/media/clip.mp4", Dimensions{640, 360})
			So(errors.Is(err, ErrDecodeStart), ShouldBeTrue)
		})

		Convey("StartDecode rejects empty dimensions before spawning", func() {
			_, err := ff.StartDecode(ctx, "/media/clip.mp4", Dimensions{})
			So(errors.Is(err, ErrInvalidDimensions), ShouldBeTrue)
		})

		Convey("CheckTools reports both binaries missing", func() {
			So(Missing(ff.CheckTools(ctx)), ShouldHaveLength, 2)
		})
	})

	Convey("Tools older than the minimum are outdated", t, func() {
		So(Tool{Name: "ffmpeg", Version: "3.4.8"}.Outdated(), ShouldBeTrue)
		So(Tool{Name: "ffmpeg", Version: "6.1.1"}.Outdated(), ShouldBeFalse)
		So(Tool{Name: "ffmpeg"}.Outdated(), ShouldBeFalse)
	})

	Convey("Decode arguments request raw frames of the exact size", t, func() {
		ff := NewFFmpeg()
		ff.FrameRate = FrameRateFor(40 * time.Millisecond)
		args := ff.decodeArgs("/m/a.mp4", Dimensions{320, 180})
		So(args, ShouldContain, "rawvideo")
		So(args, ShouldContain, "scale=320:180")
		So(args, ShouldContain, "25.000")
		So(args[len(args)-1], ShouldEqual, "pipe:1")
	})
}
