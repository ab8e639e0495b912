package overlay

import "github.com/samber/mo"

// Target receives the resolved caption of a facet.
type Target interface {
	SetOverlay(Overlay)
}

// Applier writes captions to facet surfaces.
type Applier struct {
	Settings Settings
}

// NewApplier returns an applier bound to settings.
func NewApplier(settings Settings) *Applier {
	return &Applier{Settings: settings}
}

// Apply resolves the caption for uri and writes it to target.
// It reports whether the target was touched; an unresolved filename leaves it as is.
func (a *Applier) Apply(target Target, uri mo.Option[string]) bool {
	resolved, ok := a.Settings.Resolve(uri).Get()
	if !ok {
		return false
	}

	target.SetOverlay(resolved)
	return true
}
