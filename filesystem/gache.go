package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache caches write through the active backend,
// so the probe cache lands in MemMapFs under test.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
