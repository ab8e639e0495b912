package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare orders versions part by part", t, func() {
		c, err := Compare("1.2.3", "1.2.4")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, -1)

		c, _ = Compare("v2.0.0", "1.9.9")
		So(c, ShouldEqual, 1)

		c, _ = Compare("7.0", "7.0.0")
		So(c, ShouldEqual, 0)

		_, err = Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestExtract(t *testing.T) {
	Convey("Versions are found in tool banners", t, func() {
		v, ok := Extract("ffmpeg version 6.1.1-3ubuntu5 Copyright (c) 2000-2023 the FFmpeg developers")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "6.1.1")

		v, ok = Extract("ffprobe version n7.0 Copyright")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "7.0")

		_, ok = Extract("ffmpeg version N-113 git")
		So(ok, ShouldBeFalse)
	})
}

func TestAtLeast(t *testing.T) {
	Convey("AtLeast accepts equal and newer versions only", t, func() {
		So(AtLeast("4.4.2", "4.0.0"), ShouldBeTrue)
		So(AtLeast("4.0", "4.0.0"), ShouldBeTrue)
		So(AtLeast("3.4.8", "4.0.0"), ShouldBeFalse)
		So(AtLeast("git", "4.0.0"), ShouldBeFalse)
	})
}
