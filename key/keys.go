// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Scheduling Engine - these keys tune the per-facet timers of the playback engine.
const (
	EngineDwell          = "engine.dwell_ms"
	EngineFrameInterval  = "engine.frame_interval_ms"
	EngineInstantFailure = "engine.instant_failure_ms"
	EngineRecoveryDelay  = "engine.recovery_delay_ms"
	EngineDurationGrace  = "engine.duration_grace_ms"
	EngineNative         = "engine.native"
)

// Decode Backend - these keys configure the external decoder processes.
const (
	DecodeFFmpeg      = "decode.ffmpeg"
	DecodeFFprobe     = "decode.ffprobe"
	DecodePixelFormat = "decode.pixel_format"
	DecodeMaxWidth    = "decode.max_width"
	DecodeMaxHeight   = "decode.max_height"
	DecodeProbeCache  = "decode.probe_cache"
)

// Overlay Text - these keys drive the per-facet caption.
const (
	OverlayMode       = "overlay.mode"
	OverlayText       = "overlay.text"
	OverlayColor      = "overlay.color"
	OverlayFontFamily = "overlay.font_family"
	OverlayFontSize   = "overlay.font_size"
	OverlayFontWeight = "overlay.font_weight"
	OverlayFontSlant  = "overlay.font_slant"
)

// Rotation - these keys seed the animation controller.
const (
	RotationSpeed  = "rotation.speed"
	RotationAxis   = "rotation.axis"
	RotationPaused = "rotation.paused"
)

// Wall Layout - these keys select the primitive and its facet count.
const (
	WallShape  = "wall.shape"
	WallFacets = "wall.facets"
)

// Playlist Discovery - these keys control how CLI arguments are expanded into media files.
const (
	PlaylistRecursive = "playlist.recursive"
)

// Native Playback - these keys configure the platform media component.
const (
	PlayerMPV = "player.mpv"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)
