// Package filesystem routes every disk access of facetwall (playlist discovery,
// log files, the probe cache) through a swappable afero backend.
package filesystem

import (
	"fmt"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the real disk.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to an empty in-memory filesystem. Tests call it from init.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Fingerprint identifies the current revision of a file by its path, size and
// modification time. Editing or replacing the file changes the fingerprint.
func Fingerprint(path string) (string, error) {
	stat, err := backend.Stat(path)
	if err != nil {
		return "", err
	}
	if stat.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return fmt.Sprintf("%s|%d|%d", path, stat.Size(), stat.ModTime().UnixNano()), nil
}
