package util

import (
	"context"
	"testing"
	"time"

	"github.com/facetwall/facetwall/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("holding"), ShouldEqual, "Holding")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min/Clamp", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
		So(Clamp(12, 0, 10), ShouldEqual, 10)
		So(Clamp(-3, 0, 10), ShouldEqual, 0)
		So(Clamp(4, 0, 10), ShouldEqual, 4)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory tree", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/cache/sub", 0o755))
		lo.Must0(fs.WriteFile("/cache/sub/probe.json", []byte("{}"), 0o644))

		Convey("Delete removes directories recursively", func() {
			So(Delete("/cache"), ShouldBeNil)
			So(lo.Must(fs.Exists("/cache/sub/probe.json")), ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}

func TestReady(t *testing.T) {
	Convey("Given a readiness flag", t, func() {
		var r Ready
		So(r.IsReady(), ShouldBeFalse)

		Convey("Await returns once another goroutine marks it", func() {
			polls := 0
			go func() {
				time.Sleep(20 * time.Millisecond)
				r.MarkReady()
			}()
			err := r.Await(context.Background(), time.Millisecond, func() { polls++ })
			So(err, ShouldBeNil)
			So(r.IsReady(), ShouldBeTrue)
			So(polls, ShouldBeGreaterThan, 0)
		})

		Convey("Await returns immediately when already ready", func() {
			r.MarkReady()
			r.MarkReady()
			So(r.Await(context.Background(), time.Hour, nil), ShouldBeNil)
		})

		Convey("Await gives up when the context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			So(r.Await(ctx, time.Millisecond, nil), ShouldEqual, context.Canceled)
		})
	})
}
