// Package overlay derives the caption shown on top of each facet from the global display settings.
package overlay

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Mode selects what the caption shows.
type Mode int

const (
	Hidden Mode = iota
	Filename
	Custom
)

var modeNames = map[Mode]string{
	Hidden:   "hidden",
	Filename: "filename",
	Custom:   "custom",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode reads a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return Hidden, fmt.Errorf("unknown overlay mode %q", s)
}

// Weight of the caption font.
type Weight int

const (
	Normal Weight = iota
	Bold
)

// Slant of the caption font.
type Slant int

const (
	Upright Slant = iota
	Italic
	Oblique
)

// ARGB is a packed 0xAARRGGBB color.
type ARGB uint32

// ParseARGB reads "#AARRGGBB" or "#RRGGBB". The short form is fully opaque.
func ParseARGB(s string) (ARGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ARGB(v), nil
}

// Channels splits the color into alpha, red, green and blue.
func (c ARGB) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Style is the typography of a caption.
type Style struct {
	Color      ARGB
	FontFamily string
	FontSize   int
	Weight     Weight
	Slant      Slant
}

// Overlay is the caption state written to a facet surface.
type Overlay struct {
	Visible bool
	Text    string
	Style   Style
}

// Settings are the global, read-only inputs of the caption.
type Settings struct {
	Mode       Mode
	CustomText string
	Style      Style
}

// Resolve computes the caption for a facet showing uri.
// None is returned when the caption depends on a URI that is not known yet,
// in which case the facet keeps whatever it shows.
func (s Settings) Resolve(uri mo.Option[string]) mo.Option[Overlay] {
	switch s.Mode {
	case Custom:
		return mo.Some(Overlay{Visible: true, Text: s.CustomText, Style: s.Style})
	case Filename:
		path, ok := uri.Get()
		if !ok || path == "" {
			return mo.None[Overlay]()
		}
		return mo.Some(Overlay{Visible: true, Text: LastSegment(path), Style: s.Style})
	default:
		return mo.Some(Overlay{Visible: false, Style: s.Style})
	}
}

// LastSegment returns the final path segment of a plain path, a file:// URI or a backslash path.
func LastSegment(uri string) string {
	if strings.HasPrefix(strings.ToLower(uri), "file:") {
		if u, err := url.Parse(uri); err == nil && u.Path != "" {
			uri = u.Path
		}
	}

	uri = strings.TrimRight(strings.ReplaceAll(uri, `\`, "/"), "/")
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
