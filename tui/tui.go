// Package tui renders a running wall in the terminal: one tile per facet, a rotation
// readout, and keys to steer the rotation and skip facets.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/facetwall/facetwall/engine"
	"github.com/facetwall/facetwall/rotation"
	"github.com/facetwall/facetwall/shape"
	"github.com/facetwall/facetwall/surface"
	"github.com/facetwall/facetwall/util"
)

// Wall is the running scheduler as seen by the window.
type Wall interface {
	Status() []engine.FacetStatus
	Skip(i int)
}

// Snapshotter exposes what a surface shows.
type Snapshotter interface {
	Snapshot() surface.Snapshot
}

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Shape    shape.Shape
	Surfaces []Snapshotter
	Rotation *rotation.Controller

	// Ready is marked by whoever builds the scene. Scene is called once, after that.
	Ready *util.Ready
	Scene func() (Wall, error)

	// Refresh is the redraw interval of the wall.
	Refresh time.Duration
}

// Run shows the window until the user quits or ctx ends.
func Run(ctx context.Context, options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
