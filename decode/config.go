package decode

import (
	"github.com/facetwall/facetwall/config"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/where"
	"github.com/spf13/viper"
)

// FromConfig builds the ffmpeg backend described by the global configuration,
// wrapped in the probe cache when it is enabled.
func FromConfig() (Backend, *FFmpeg, error) {
	format, err := ParseFormat(viper.GetString(key.DecodePixelFormat))
	if err != nil {
		return nil, nil, err
	}

	ff := &FFmpeg{
		FFmpegPath:  viper.GetString(key.DecodeFFmpeg),
		FFprobePath: viper.GetString(key.DecodeFFprobe),
		Format:      format,
		FrameRate:   FrameRateFor(config.Millis(key.EngineFrameInterval)),
	}

	if viper.GetBool(key.DecodeProbeCache) {
		return NewCachedProber(ff, where.ProbeCache()), ff, nil
	}
	return ff, ff, nil
}

// BoxFromConfig returns the bounding box decoded frames and images are fitted into.
func BoxFromConfig() Dimensions {
	return Dimensions{
		Width:  viper.GetInt(key.DecodeMaxWidth),
		Height: viper.GetInt(key.DecodeMaxHeight),
	}
}
