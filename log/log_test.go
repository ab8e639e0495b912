package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/facetwall/facetwall/filesystem"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Emissions are silently dropped", func() {
			So(func() {
				Info("nothing")
				With(Fields{"facet": 1}).Warn("nothing")
			}, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("A dated log file is created", func() {
			Infof("facet %d assigned", 0)
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			contents := lo.Must(filesystem.API().ReadFile(path))
			So(string(contents), ShouldContainSubstring, "facet 0 assigned")
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given a log directory with old and recent files", t, func() {
		dir := "/prune-logs"
		fs := filesystem.API()
		old := time.Now().Add(-10*24*time.Hour).Format(dateLayout) + ".log"
		recent := time.Now().Add(-24*time.Hour).Format(dateLayout) + ".log"

		So(fs.MkdirAll(dir, 0o755), ShouldBeNil)
		for _, name := range []string{old, recent, "notes.txt"} {
			So(fs.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644), ShouldBeNil)
		}

		prune(dir, time.Now().Add(-Retention))

		Convey("Only files past retention are removed", func() {
			So(lo.Must(fs.Exists(filepath.Join(dir, old))), ShouldBeFalse)
			So(lo.Must(fs.Exists(filepath.Join(dir, recent))), ShouldBeTrue)
			So(lo.Must(fs.Exists(filepath.Join(dir, "notes.txt"))), ShouldBeTrue)
		})
	})
}
