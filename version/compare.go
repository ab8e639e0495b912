// Package version compares the dotted version strings of facetwall and of the external tools it drives.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

type version struct {
	major, minor, patch int
}

func parse(s string) (version, error) {
	var v version
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if _, err := fmt.Sscanf(s, "%d.%d.%d", &v.major, &v.minor, &v.patch); err != nil {
		// tools such as ffmpeg 7.0 omit the patch number
		v.patch = 0
		if _, err := fmt.Sscanf(s, "%d.%d", &v.major, &v.minor); err != nil {
			return version{}, fmt.Errorf("parse version %q: %w", s, err)
		}
	}
	return v, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal. A missing patch number counts as zero.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

var dotted = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Extract finds the first dotted version number in free text such as the banner of `ffmpeg -version`.
func Extract(text string) (string, bool) {
	v := dotted.FindString(text)
	return v, v != ""
}

// AtLeast reports whether have is want or newer. Unparsable versions are not trusted.
func AtLeast(have, want string) bool {
	c, err := Compare(have, want)
	return err == nil && c >= 0
}
