package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateColor(t *testing.T) {
	Convey("StateColor", t, func() {
		So(StateColor("failed"), ShouldEqual, ErrorColor)
		So(StateColor("playing"), ShouldEqual, SuccessColor)
		So(StateColor("bogus"), ShouldEqual, Text)
	})
}

func TestTile(t *testing.T) {
	Convey("Tile borders differ for the front facet", t, func() {
		So(Tile(true).GetBorderTopForeground(), ShouldEqual, FrontBorderColor)
		So(Tile(false).GetBorderTopForeground(), ShouldEqual, BorderColor)
	})
}
