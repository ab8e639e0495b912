package surface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/facetwall/facetwall/overlay"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionMargin = 6

var errorBackground = color.NRGBA{R: 60, G: 10, B: 16, A: 255}

// Composite renders a snapshot into a standalone image: the picture with its caption
// burned in, or the error indicator. size is used when there is no picture.
func Composite(snap Snapshot, size image.Point) *image.NRGBA {
	if snap.Image != nil && snap.Content != Error {
		size = snap.Image.Bounds().Size()
	}

	dst := image.NewNRGBA(image.Rectangle{Max: size})
	switch {
	case snap.Content == Error:
		draw.Draw(dst, dst.Bounds(), image.NewUniform(errorBackground), image.Point{}, draw.Src)
		drawText(dst, snap.Error.File, color.White, captionMargin+13)
		drawText(dst, snap.Error.Reason, color.NRGBA{R: 255, G: 170, B: 170, A: 255}, captionMargin+30)
		return dst
	case snap.Image != nil:
		draw.Draw(dst, dst.Bounds(), snap.Image, snap.Image.Bounds().Min, draw.Src)
	}

	if snap.Overlay.Visible && snap.Overlay.Text != "" {
		drawText(dst, snap.Overlay.Text, captionColor(snap.Overlay.Style.Color), size.Y-captionMargin)
	}
	return dst
}

func captionColor(c overlay.ARGB) color.Color {
	a, r, g, b := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func drawText(dst draw.Image, text string, c color.Color, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}

	width := d.MeasureString(text)
	x := (fixed.I(dst.Bounds().Dx()) - width) / 2
	if x < fixed.I(captionMargin) {
		x = fixed.I(captionMargin)
	}
	d.Dot = fixed.Point26_6{X: x, Y: fixed.I(baseline)}
	d.DrawString(text)
}
