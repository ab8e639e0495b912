package rotation

import (
	"testing"
	"time"

	"github.com/facetwall/facetwall/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestController(t *testing.T) {
	Convey("Given a controller turning at 90 degrees per second", t, func() {
		c := New(90, Y)

		Convey("Advance integrates the angle of the active axis", func() {
			c.Advance(time.Second)
			So(c.State().Angle(), ShouldAlmostEqual, 90)
			So(c.State().Angles[X], ShouldEqual, 0)
		})

		Convey("The angle wraps at a full turn", func() {
			c.Advance(5 * time.Second)
			So(c.State().Angle(), ShouldAlmostEqual, 90)
		})

		Convey("A paused controller does not move", func() {
			c.Pause()
			c.Advance(time.Second)
			So(c.State().Angle(), ShouldEqual, 0)

			c.Resume()
			c.Advance(time.Second)
			So(c.State().Angle(), ShouldAlmostEqual, 90)
		})

		Convey("Toggle flips the pause state", func() {
			So(c.Toggle(), ShouldBeTrue)
			So(c.Toggle(), ShouldBeFalse)
		})

		Convey("Speed changes are clamped", func() {
			c.Faster()
			So(c.State().Speed, ShouldEqual, 100)
			c.SetSpeed(1000)
			So(c.State().Speed, ShouldEqual, MaxSpeed)
			c.SetSpeed(5)
			c.Slower()
			So(c.State().Speed, ShouldEqual, 0)
		})

		Convey("Switching axes keeps the old angle", func() {
			c.Advance(time.Second)
			c.SetAxis(Z)
			c.Advance(time.Second)
			So(c.State().Angles[Y], ShouldAlmostEqual, 90)
			So(c.State().Angles[Z], ShouldAlmostEqual, 90)
		})

		Convey("Front follows the rotation", func() {
			So(c.Front(4), ShouldEqual, 0)
			c.Advance(time.Second)
			So(c.Front(4), ShouldEqual, 1)
			c.Advance(3 * time.Second)
			So(c.Front(4), ShouldEqual, 0)
			So(c.Front(0), ShouldEqual, 0)
		})
	})
}

func TestParseAxis(t *testing.T) {
	Convey("Axes parse case-insensitively", t, func() {
		a, err := ParseAxis(" X ")
		So(err, ShouldBeNil)
		So(a, ShouldEqual, X)

		_, err = ParseAxis("w")
		So(err, ShouldNotBeNil)
	})
}

func TestFromConfig(t *testing.T) {
	Convey("Given rotation settings", t, func() {
		viper.Set(key.RotationSpeed, 45)
		viper.Set(key.RotationAxis, "z")
		viper.Set(key.RotationPaused, true)
		defer viper.Reset()

		c, err := FromConfig()
		So(err, ShouldBeNil)

		st := c.State()
		So(st.Speed, ShouldEqual, 45)
		So(st.Axis, ShouldEqual, Z)
		So(st.Paused, ShouldBeTrue)
	})
}
