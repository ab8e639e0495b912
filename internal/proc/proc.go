// Package proc holds the platform specifics of spawning and killing helper processes.
package proc

import (
	"errors"
	"os"
	"os/exec"
)

// Kill terminates cmd and, where the platform allows it, every process in its group.
// Killing a process that already exited is not an error.
func Kill(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	killGroup(cmd.Process.Pid)
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
