package config

import (
	"testing"
	"time"

	"github.com/facetwall/facetwall/filesystem"
	"github.com/facetwall/facetwall/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Engine timings default to the documented values", func() {
			So(Setup(), ShouldBeNil)
			So(Millis(key.EngineDwell), ShouldEqual, 10*time.Second)
			So(Millis(key.EngineFrameInterval), ShouldEqual, 33*time.Millisecond)
			So(Millis(key.EngineInstantFailure), ShouldEqual, 2*time.Second)
			So(Millis(key.EngineRecoveryDelay), ShouldEqual, 5*time.Second)
			So(Millis(key.EngineDurationGrace), ShouldEqual, 3*time.Second)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("engine.dwell_ms"), ShouldEqual, "engine_dwell_ms")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given an enumerated field", t, func() {
		field := Default[key.OverlayMode]

		Convey("Known values pass regardless of case", func() {
			So(field.Check("Custom"), ShouldBeNil)
			So(field.Check("hidden"), ShouldBeNil)
		})

		Convey("Unknown values are rejected", func() {
			So(field.Check("subtitle"), ShouldNotBeNil)
		})

		Convey("Validate reports a bad override", func() {
			So(Setup(), ShouldBeNil)
			viper.Set(key.WallShape, "torus")
			defer viper.Set(key.WallShape, "cube")
			So(Validate(), ShouldNotBeNil)
		})
	})

	Convey("Given a free-form field", t, func() {
		field := Default[key.OverlayText]
		So(field.Check("anything at all"), ShouldBeNil)
		So(field.Env(), ShouldEqual, "FACETWALL_OVERLAY_TEXT")
	})
}

func TestParse(t *testing.T) {
	Convey("Given fields of every type", t, func() {
		Convey("Integers are converted", func() {
			field := Default[key.EngineDwell]
			v, err := field.Parse([]string{"2500"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 2500)

			_, err = field.Parse([]string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are converted", func() {
			field := Default[key.EngineNative]
			v, err := field.Parse([]string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Enumerated strings are checked", func() {
			field := Default[key.RotationAxis]
			v, err := field.Parse([]string{"z"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "z")

			_, err = field.Parse([]string{"w"})
			So(err, ShouldNotBeNil)
		})

		Convey("A missing value is an error", func() {
			field := Default[key.OverlayText]
			_, err := field.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSections(t *testing.T) {
	Convey("Sections are derived from key prefixes", t, func() {
		field := Default[key.DecodeMaxWidth]
		So(field.Section(), ShouldEqual, "decode")

		sections := Sections()
		So(sections, ShouldContain, "engine")
		So(sections, ShouldContain, "overlay")
		So(sections, ShouldContain, "rotation")
		So(sections[0], ShouldEqual, "cli")
	})

	Convey("The config file is named after the app", t, func() {
		So(Path(), ShouldEndWith, "facetwall.toml")
	})
}
