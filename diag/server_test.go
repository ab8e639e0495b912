package diag

import (
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/facetwall/facetwall/engine"
	"github.com/facetwall/facetwall/metrics"
	"github.com/facetwall/facetwall/overlay"
	"github.com/facetwall/facetwall/surface"
	. "github.com/smartystreets/goconvey/convey"
)

type fixedStatus []engine.FacetStatus

func (f fixedStatus) Status() []engine.FacetStatus { return f }

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer(t *testing.T) {
	Convey("Given a server over two facets", t, func() {
		status := fixedStatus{
			{Index: 0, Path: "a.png", Kind: "image", State: engine.StateHolding},
			{Index: 1, Path: "b.mp4", Kind: "video", State: engine.StateFailed, Failed: true, LastError: "probe failed"},
		}

		still := surface.NewMemory()
		still.ShowImage(image.NewNRGBA(image.Rect(0, 0, 16, 8)))
		still.SetOverlay(overlay.Overlay{Visible: true, Text: "a.png", Style: overlay.Style{Color: 0xFFFFFFFF}})
		broken := surface.NewMemory()
		broken.ShowError("b.mp4", "probe failed")

		h := New(status, []Snapshotter{still, broken}).Handler()

		Convey("/status lists every facet", func() {
			rec := get(h, "/status")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldEqual, "application/json")

			var got []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got, ShouldHaveLength, 2)
			So(got[1]["state"], ShouldEqual, "failed")
			So(got[1]["last_error"], ShouldEqual, "probe failed")
		})

		Convey("/facets/{index} returns one facet", func() {
			rec := get(h, "/facets/0")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"path":"a.png"`)

			So(get(h, "/facets/9").Code, ShouldEqual, http.StatusNotFound)
			So(get(h, "/facets/x").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("/facets/{index}/frame.png renders the facet", func() {
			rec := get(h, "/facets/0/frame.png")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldEqual, "image/png")

			img, err := png.Decode(rec.Body)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 16)

			rec = get(h, "/facets/1/frame.png")
			img, err = png.Decode(rec.Body)
			So(err, ShouldBeNil)
			So(img.Bounds().Size(), ShouldResemble, FrameSize)
		})

		Convey("/metrics exposes the engine counters", func() {
			metrics.Recovered()
			rec := get(h, "/metrics")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "facetwall_recoveries_total")
		})

		Convey("Other methods are rejected", func() {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}
