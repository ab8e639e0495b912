package surface

import (
	"image"

	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/overlay"
)

// Logged wraps a surface and logs every change of content. Frames are logged at trace level.
type Logged struct {
	Surface
	Facet int
}

func (l Logged) fields() log.Fields {
	return log.Fields{"facet": l.Facet}
}

func (l Logged) ShowImage(img image.Image) {
	log.With(l.fields()).Debugf("show image %s", img.Bounds().Size())
	l.Surface.ShowImage(img)
}

func (l Logged) ShowFrame(frame decode.Frame) {
	log.With(l.fields()).Tracef("show frame %d", frame.Seq)
	l.Surface.ShowFrame(frame)
}

func (l Logged) SetOverlay(o overlay.Overlay) {
	log.With(l.fields()).Debugf("overlay visible=%t text=%q", o.Visible, o.Text)
	l.Surface.SetOverlay(o)
}

func (l Logged) ShowError(file, reason string) {
	log.With(l.fields()).Warnf("error indicator: %s: %s", file, reason)
	l.Surface.ShowError(file, reason)
}

func (l Logged) Restore() {
	log.With(l.fields()).Debug("restore")
	l.Surface.Restore()
}
