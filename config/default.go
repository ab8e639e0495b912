package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options lists the accepted values of an enumerated field, lower-cased.
	Options []string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Facetwall + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string, options ...string) {
	if _, exists := Default[k]; exists {
		panic("Duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	// engine
	register(key.EngineDwell, 10000, "How long a still image is held on a facet, in milliseconds")
	register(key.EngineFrameInterval, 33, "Pacing interval between decoded video frames, in milliseconds")
	register(key.EngineInstantFailure, 2000, "A video that ends sooner than this after assignment is treated as a failure, in milliseconds")
	register(key.EngineRecoveryDelay, 5000, "How long a failed facet shows its error before trying the next item, in milliseconds")
	register(key.EngineDurationGrace, 3000, "Native playback only: how long to wait for a positive duration after open, in milliseconds")
	register(key.EngineNative, false, "Use the native media component instead of the frame decode backend for videos")

	// decode
	register(key.DecodeFFmpeg, "ffmpeg", "Path or name of the ffmpeg binary")
	register(key.DecodeFFprobe, "ffprobe", "Path or name of the ffprobe binary")
	register(key.DecodePixelFormat, "rgba", "Pixel format requested from the decoder", "rgba", "bgra", "rgb24", "gray")
	register(key.DecodeMaxWidth, 1280, "Decoded frames are scaled to fit this width")
	register(key.DecodeMaxHeight, 720, "Decoded frames are scaled to fit this height")
	register(key.DecodeProbeCache, true, "Cache probed video dimensions on disk")

	// overlay
	register(key.OverlayMode, "filename", "Caption drawn on each facet", "hidden", "filename", "custom")
	register(key.OverlayText, "", "Caption text used when overlay.mode is custom")
	register(key.OverlayColor, "#FFFFFFFF", "Caption color as #AARRGGBB or #RRGGBB")
	register(key.OverlayFontFamily, "Sans", "Caption font family")
	register(key.OverlayFontSize, 14, "Caption font size in points")
	register(key.OverlayFontWeight, "normal", "Caption font weight", "normal", "bold")
	register(key.OverlayFontSlant, "upright", "Caption font slant", "upright", "italic", "oblique")

	// rotation
	register(key.RotationSpeed, 20, "Initial rotation speed in degrees per second")
	register(key.RotationAxis, "y", "Initial rotation axis", "x", "y", "z")
	register(key.RotationPaused, false, "Start with rotation paused")

	// wall
	register(key.WallShape, "cube", "Primitive the media is mapped onto", "cube", "sphere", "wheel", "panel")
	register(key.WallFacets, 0, "Override the facet count of the shape. 0 keeps the shape's own count")
	register(key.PlaylistRecursive, false, "Descend into subdirectories when a directory is given")
	register(key.PlayerMPV, "mpv", "Path or name of the mpv binary used by the native media component")

	// ambient
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)", "emoji", "plain", "squares", "nerd")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     func(s []string) string { return strings.Join(s, ", ") },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Options }}
{{ blue "Options:" }} {{ cyan (join .Options) }}{{ end }}`))
