// Package playlist holds the ordered media list a wall cycles through and the cursor that hands out its entries.
package playlist

import (
	"errors"

	"github.com/facetwall/facetwall/media"
	"github.com/samber/lo"
)

// ErrEmpty is returned when a playlist or cursor has nothing to hand out.
var ErrEmpty = errors.New("playlist is empty")

// Playlist is an immutable ordered list of file paths.
type Playlist struct {
	paths []string
}

// New copies paths into a playlist. Empty input is rejected.
func New(paths []string) (*Playlist, error) {
	if len(paths) == 0 {
		return nil, ErrEmpty
	}

	return &Playlist{paths: append([]string(nil), paths...)}, nil
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.paths)
}

// At returns the path at index i.
func (p *Playlist) At(i int) string {
	return p.paths[i]
}

// Paths returns a copy of the entries.
func (p *Playlist) Paths() []string {
	return append([]string(nil), p.paths...)
}

// Count returns how many entries are of the given kind.
func (p *Playlist) Count(kind media.Kind) int {
	return lo.CountBy(p.paths, func(path string) bool {
		return media.Classify(path) == kind
	})
}
