package decode

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/facetwall/facetwall/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func writePNG(path string, w, h int) {
	img := imaging.New(w, h, color.NRGBA{R: 200, A: 255})
	file := lo.Must(filesystem.API().Create(path))
	defer file.Close()
	lo.Must0(imaging.Encode(file, img, imaging.PNG))
}

func TestImageLoader(t *testing.T) {
	Convey("Given images on disk", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/media", 0o755))
		writePNG("/media/big.png", 400, 200)
		writePNG("/media/small.png", 40, 20)
		lo.Must0(filesystem.API().WriteFile("/media/broken.png", []byte("not a png"), 0o644))

		loader := ImageLoader{Box: Dimensions{Width: 100, Height: 100}}

		Convey("Large images are fitted into the box", func() {
			img, err := loader.Load("/media/big.png")
			So(err, ShouldBeNil)
			So(img.Bounds().Size(), ShouldResemble, image.Pt(100, 50))
		})

		Convey("Small images keep their size", func() {
			img, err := loader.Load("/media/small.png")
			So(err, ShouldBeNil)
			So(img.Bounds().Size(), ShouldResemble, image.Pt(40, 20))
		})

		Convey("Corrupt and missing files fail", func() {
			_, err := loader.Load("/media/broken.png")
			So(err, ShouldNotBeNil)
			_, err = loader.Load("/media/absent.png")
			So(err, ShouldNotBeNil)
		})
	})
}

type countingBackend struct {
	probes int
	dims   Dimensions
	err    error
}

func (b *countingBackend) Probe(context.Context, string) (Dimensions, error) {
	b.probes++
	return b.dims, b.err
}

func (b *countingBackend) StartDecode(context.Context, string, Dimensions) (FrameSource, error) {
	return nil, ErrDecodeStart
}

func TestCachedProber(t *testing.T) {
	Convey("Given a cached prober", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/media", 0o755))
		lo.Must0(filesystem.API().WriteFile("/media/a.mp4", []byte("v1"), 0o644))

		inner := &countingBackend{dims: Dimensions{640, 360}}
		prober := NewCachedProber(inner, "/cache/probe.json")
		ctx := context.Background()

		Convey("A second probe of the same file is served from the cache", func() {
			d1, err := prober.Probe(ctx, "/media/a.mp4")
			So(err, ShouldBeNil)
			d2, err := prober.Probe(ctx, "/media/a.mp4")
			So(err, ShouldBeNil)

			So(d1, ShouldResemble, d2)
			So(inner.probes, ShouldEqual, 1)
		})

		Convey("Changing the file invalidates its entry", func() {
			_, _ = prober.Probe(ctx, "/media/a.mp4")
			lo.Must0(filesystem.API().WriteFile("/media/a.mp4", []byte("version two"), 0o644))
			_, _ = prober.Probe(ctx, "/media/a.mp4")
			So(inner.probes, ShouldEqual, 2)
		})

		Convey("Failures are not cached", func() {
			inner.err = ErrProbe
			_, err := prober.Probe(ctx, "/media/a.mp4")
			So(err, ShouldEqual, ErrProbe)
			_, _ = prober.Probe(ctx, "/media/a.mp4")
			So(inner.probes, ShouldEqual, 2)
		})

		Convey("Decoding is delegated", func() {
			_, err := prober.StartDecode(ctx, "/media/a.mp4", Dimensions{2, 2})
			So(err, ShouldEqual, ErrDecodeStart)
		})
	})
}
