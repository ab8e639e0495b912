//go:build windows

package proc

import "syscall"

const createNoWindow = 0x08000000

// SysProcAttr keeps the child from opening a console window.
func SysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNoWindow}
}

// Windows has no process groups to signal.
func killGroup(int) {}
