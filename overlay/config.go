package overlay

import (
	"strings"

	"github.com/facetwall/facetwall/key"
	"github.com/spf13/viper"
)

// SettingsFromConfig reads the caption settings from the global configuration.
func SettingsFromConfig() (Settings, error) {
	mode, err := ParseMode(viper.GetString(key.OverlayMode))
	if err != nil {
		return Settings{}, err
	}

	color, err := ParseARGB(viper.GetString(key.OverlayColor))
	if err != nil {
		return Settings{}, err
	}

	style := Style{
		Color:      color,
		FontFamily: viper.GetString(key.OverlayFontFamily),
		FontSize:   viper.GetInt(key.OverlayFontSize),
	}

	if strings.EqualFold(viper.GetString(key.OverlayFontWeight), "bold") {
		style.Weight = Bold
	}

	switch strings.ToLower(viper.GetString(key.OverlayFontSlant)) {
	case "italic":
		style.Slant = Italic
	case "oblique":
		style.Slant = Oblique
	}

	return Settings{
		Mode:       mode,
		CustomText: viper.GetString(key.OverlayText),
		Style:      style,
	}, nil
}
