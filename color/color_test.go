package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFromARGB(t *testing.T) {
	Convey("FromARGB", t, func() {
		So(string(FromARGB(0xFFFF8000)), ShouldEqual, "#ff8000")
		So(string(FromARGB(0x00000000)), ShouldEqual, "#000000")

		Convey("Alpha does not leak into the color", func() {
			So(FromARGB(0x80123456), ShouldEqual, FromARGB(0xFF123456))
		})
	})

	Convey("FromRGB", t, func() {
		So(string(FromRGB(1, 2, 255)), ShouldEqual, "#0102ff")
	})
}
