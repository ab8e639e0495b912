// Package rotation animates the wall. It knows nothing about media; it only turns.
package rotation

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/util"
	"github.com/spf13/viper"
)

// Axis is one of the three rotation axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Z:
		return "z"
	default:
		return "y"
	}
}

// ParseAxis accepts x, y or z in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return Y, fmt.Errorf("unknown axis %q", s)
}

const (
	// MaxSpeed bounds the speed in degrees per second.
	MaxSpeed = 360.0
	// SpeedStep is how much Faster and Slower change the speed.
	SpeedStep = 10.0
)

// State is a copy of the controller's state.
type State struct {
	Axis   Axis
	Speed  float64
	Paused bool
	// Angles holds the accumulated angle of each axis in degrees, in [0, 360).
	Angles [3]float64
}

// Angle returns the angle of the active axis.
func (s State) Angle() float64 {
	return s.Angles[s.Axis]
}

// Controller accumulates rotation. It is safe for concurrent use.
type Controller struct {
	mu    sync.Mutex
	state State
}

// New returns a running controller turning around axis at speed degrees per second.
func New(speed float64, axis Axis) *Controller {
	return &Controller{state: State{Axis: axis, Speed: util.Clamp(speed, 0, MaxSpeed)}}
}

// FromConfig builds a controller from the rotation settings.
func FromConfig() (*Controller, error) {
	axis, err := ParseAxis(viper.GetString(key.RotationAxis))
	if err != nil {
		return nil, err
	}

	c := New(viper.GetFloat64(key.RotationSpeed), axis)
	if viper.GetBool(key.RotationPaused) {
		c.Pause()
	}
	return c, nil
}

func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Paused = true
}

func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Paused = false
}

// Toggle flips the pause state and returns the new one.
func (c *Controller) Toggle() (paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Paused = !c.state.Paused
	return c.state.Paused
}

// SetSpeed sets the speed in degrees per second, clamped to [0, MaxSpeed].
func (c *Controller) SetSpeed(speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Speed = util.Clamp(speed, 0, MaxSpeed)
}

func (c *Controller) Faster() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Speed = util.Clamp(c.state.Speed+SpeedStep, 0, MaxSpeed)
}

func (c *Controller) Slower() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Speed = util.Clamp(c.state.Speed-SpeedStep, 0, MaxSpeed)
}

// SetAxis switches the active axis. Angles of the other axes are kept.
func (c *Controller) SetAxis(axis Axis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Axis = axis
}

// Advance turns the active axis by the distance covered in dt. Paused controllers don't move.
func (c *Controller) Advance(dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Paused || dt <= 0 {
		return
	}

	angle := c.state.Angles[c.state.Axis] + c.state.Speed*dt.Seconds()
	c.state.Angles[c.state.Axis] = normalize(angle)
}

// Front returns the facet facing the viewer when n facets are spread evenly around
// the active axis. Facet k comes to the front after k steps of 360/n degrees.
func (c *Controller) Front(n int) int {
	if n <= 0 {
		return 0
	}

	step := 360 / float64(n)
	return int(math.Round(c.State().Angle()/step)) % n
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
