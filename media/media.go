// Package media classifies playlist entries into still images and videos by their file extension.
package media

import (
	"path/filepath"
	"strings"
)

// Kind is the decode mode of a playlist entry.
type Kind int

const (
	Unknown Kind = iota
	Image
	Video
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "unknown"
	}
}

var imageExtensions = map[string]struct{}{
	".bmp": {}, ".jpeg": {}, ".jpg": {}, ".png": {},
	".tif": {}, ".tiff": {}, ".gif": {}, ".wmp": {}, ".ico": {},
}

// undecodable are image extensions with no decoder behind the image loader.
// They still classify as images so a facet that meets one shows its error.
var undecodable = map[string]struct{}{".wmp": {}, ".ico": {}}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".m4v": {}, ".mov": {}, ".mkv": {}, ".webm": {},
	".avi": {}, ".wmv": {}, ".flv": {}, ".mpg": {}, ".mpeg": {},
	".m2ts": {}, ".mts": {}, ".ts": {}, ".3gp": {}, ".3g2": {},
	".ogv": {}, ".vob": {}, ".asf": {}, ".divx": {}, ".f4v": {},
	".mxf": {}, ".rm": {}, ".rmvb": {}, ".h264": {}, ".hevc": {},
	".y4m": {},
}

// Classify returns the kind of the file at path, judged by its lower-cased extension.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; ok {
		return Image
	}
	if _, ok := videoExtensions[ext]; ok {
		return Video
	}
	return Unknown
}

// IsSupported reports whether path is either an image or a video.
func IsSupported(path string) bool {
	return Classify(path) != Unknown
}

// Decodable reports whether path is a video, or an image the image loader can read.
func Decodable(path string) bool {
	switch Classify(path) {
	case Video:
		return true
	case Image:
		_, skip := undecodable[strings.ToLower(filepath.Ext(path))]
		return !skip
	default:
		return false
	}
}

// Extensions lists every recognised extension of the given kind.
func Extensions(kind Kind) []string {
	var set map[string]struct{}
	switch kind {
	case Image:
		set = imageExtensions
	case Video:
		set = videoExtensions
	default:
		return nil
	}

	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	return exts
}
