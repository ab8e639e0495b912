package playlist

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/facetwall/facetwall/filesystem"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/media"
	"github.com/samber/lo"
)

// Options control how CLI arguments are expanded into playlist entries.
type Options struct {
	// Recursive descends into subdirectories of directory arguments.
	Recursive bool
	// Filter, when not empty, keeps only entries whose file name fuzzily matches it.
	Filter string
}

// Load expands args into a playlist. Files are kept as given, directories contribute
// their supported entries in lexical order, and .m3u/.m3u8 lists are read line by line.
// Unsupported files are dropped and every path is made absolute.
func Load(args []string, opts Options) (*Playlist, error) {
	var paths []string
	for _, arg := range args {
		expanded, err := expand(arg, opts)
		if err != nil {
			return nil, err
		}
		paths = append(paths, expanded...)
	}

	if opts.Filter != "" {
		paths = Filter(paths, opts.Filter)
	}

	log.Infof("loaded %d entries from %d arguments", len(paths), len(args))
	return New(paths)
}

func expand(arg string, opts Options) ([]string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return nil, err
	}

	stat, err := filesystem.API().Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("playlist entry %s: %w", arg, err)
	}

	switch {
	case stat.IsDir():
		return walk(abs, opts.Recursive)
	case isList(abs):
		return readList(abs)
	case media.IsSupported(abs):
		if !accept(abs) {
			return nil, nil
		}
		return []string{abs}, nil
	default:
		log.Warnf("skipping unsupported file %s", abs)
		return nil, nil
	}
}

// accept keeps decodable media. Recognised images without a decoder are dropped with a warning.
func accept(path string) bool {
	if media.Decodable(path) {
		return true
	}
	if media.IsSupported(path) {
		log.Warnf("skipping %s, no decoder for %s images", path, strings.ToLower(filepath.Ext(path)))
	}
	return false
}

func isList(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".m3u" || ext == ".m3u8"
}

func walk(dir string, recursive bool) ([]string, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var paths []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if !recursive {
				continue
			}
			nested, err := walk(path, true)
			if err != nil {
				return nil, err
			}
			paths = append(paths, nested...)
			continue
		}

		if accept(path) {
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// listEntry turns one m3u line into a local path. file: URIs are decoded,
// other URIs are rejected and relative entries resolve against base.
func listEntry(line, base string) (string, bool) {
	if scheme, _, found := strings.Cut(line, ":"); found && len(scheme) > 1 && !strings.ContainsAny(scheme, `/\`) {
		if !strings.EqualFold(scheme, "file") {
			return "", false
		}
		u, err := url.Parse(line)
		if err != nil || u.Path == "" {
			return "", false
		}
		line = u.Path
		// file:///C:/clips/a.mp4
		if len(line) > 2 && line[0] == '/' && line[2] == ':' {
			line = line[1:]
		}
	}

	entry := filepath.FromSlash(line)
	if !filepath.IsAbs(entry) {
		entry = filepath.Join(base, entry)
	}
	return entry, true
}

func readList(path string) ([]string, error) {
	file, err := filesystem.API().OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	base := filepath.Dir(path)
	var paths []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, ok := listEntry(line, base)
		if !ok {
			log.Warnf("skipping %s in %s, only local files are played", line, path)
			continue
		}

		if accept(entry) {
			paths = append(paths, entry)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lo.Compact(paths), nil
}
