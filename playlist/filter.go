package playlist

import (
	"path/filepath"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Filter keeps the paths whose file name fuzzily matches query, ignoring case. Order is preserved.
func Filter(paths []string, query string) []string {
	return lo.Filter(paths, func(path string, _ int) bool {
		return fuzzy.MatchFold(query, filepath.Base(path))
	})
}
