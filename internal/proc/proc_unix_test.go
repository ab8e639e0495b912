//go:build !windows

package proc

import (
	"os/exec"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKill(t *testing.T) {
	Convey("Given a running process group", t, func() {
		cmd := exec.Command("sh", "-c", "sleep 30 & sleep 30")
		cmd.SysProcAttr = SysProcAttr()
		So(cmd.Start(), ShouldBeNil)

		Convey("Kill ends it and a second kill is harmless", func() {
			So(Kill(cmd), ShouldBeNil)
			_ = cmd.Wait()
			So(cmd.ProcessState.Exited(), ShouldBeFalse)
			So(Kill(cmd), ShouldBeNil)
		})
	})

	Convey("Kill tolerates a command that never started", t, func() {
		So(Kill(nil), ShouldBeNil)
		So(Kill(exec.Command("true")), ShouldBeNil)
	})
}
