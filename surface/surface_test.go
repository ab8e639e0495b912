package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/overlay"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemory(t *testing.T) {
	Convey("Given a memory surface", t, func() {
		m := NewMemory()
		So(m.Snapshot().Content, ShouldEqual, Blank)

		Convey("Frames replace the picture and are counted", func() {
			m.ShowFrame(decode.Frame{Width: 2, Height: 1, Format: decode.Gray, Pix: []byte{1, 2}})
			m.ShowFrame(decode.Frame{Seq: 1, Width: 2, Height: 1, Format: decode.Gray, Pix: []byte{3, 4}})
			snap := m.Snapshot()
			So(snap.Content, ShouldEqual, Motion)
			So(snap.Frames, ShouldEqual, 2)
			So(snap.Image.Bounds().Dx(), ShouldEqual, 2)
		})

		Convey("An error hides the content until restored", func() {
			m.ShowImage(image.NewGray(image.Rect(0, 0, 1, 1)))
			m.ShowError("b.mp4", "probe failed")
			m.ShowError("b.mp4", "probe failed")

			snap := m.Snapshot()
			So(snap.Content, ShouldEqual, Error)
			So(snap.Error, ShouldResemble, ErrorText{File: "b.mp4", Reason: "probe failed"})

			m.Restore()
			snap = m.Snapshot()
			So(snap.Content, ShouldEqual, Still)
			So(snap.Error, ShouldResemble, ErrorText{})
			So(snap.Restores, ShouldEqual, 1)
		})

		Convey("Overlays are kept independently of the content", func() {
			o := overlay.Overlay{Visible: true, Text: "a.png"}
			m.SetOverlay(o)
			m.ShowError("a.png", "x")
			So(m.Snapshot().Overlay, ShouldResemble, o)
		})
	})
}

func TestComposite(t *testing.T) {
	Convey("Composite", t, func() {
		Convey("A picture keeps its size and gets a caption", func() {
			src := image.NewNRGBA(image.Rect(0, 0, 120, 40))
			plain := Composite(Snapshot{Content: Still, Image: src}, image.Pt(10, 10))
			captioned := Composite(Snapshot{
				Content: Still,
				Image:   src,
				Overlay: overlay.Overlay{Visible: true, Text: "clip.mp4", Style: overlay.Style{Color: 0xFFFFFFFF}},
			}, image.Pt(10, 10))

			So(captioned.Bounds().Size(), ShouldResemble, image.Pt(120, 40))
			So(captioned.Pix, ShouldNotResemble, plain.Pix)
		})

		Convey("An error fills the fallback size", func() {
			img := Composite(Snapshot{Content: Error, Error: ErrorText{File: "b.mp4", Reason: "exit 1"}}, image.Pt(160, 90))
			So(img.Bounds().Size(), ShouldResemble, image.Pt(160, 90))
			So(img.At(0, 0), ShouldResemble, color.NRGBA(errorBackground))
		})
	})
}
