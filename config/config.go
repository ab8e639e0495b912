// Package config owns the settings registry and the viper setup for facetwall.
package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/filesystem"
	"github.com/facetwall/facetwall/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
// Enumerated keys are validated once the file and environment have been merged.
func Setup() error {
	viper.SetConfigName(constant.Facetwall)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Facetwall)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate checks every enumerated field against its allowed options.
func Validate() error {
	for name, field := range Default {
		if err := field.Check(viper.Get(name)); err != nil {
			return err
		}
	}
	return nil
}

// Check reports whether value is acceptable for the field. Fields without options accept anything.
func (f *Field) Check(value any) error {
	if len(f.Options) == 0 {
		return nil
	}

	s := strings.ToLower(fmt.Sprint(value))
	if !lo.Contains(f.Options, s) {
		return fmt.Errorf("invalid value %q for %s, expected one of: %s", s, f.Key, strings.Join(f.Options, ", "))
	}
	return nil
}

// Millis reads an integer millisecond setting as a duration.
func Millis(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Millisecond
}

// Parse converts raw command line values into the type of the field's default,
// rejecting values outside the field's options.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}
	if err := f.Check(raw[0]); err != nil {
		return nil, err
	}

	switch f.Value.(type) {
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, raw[0])
		}
		return n, nil
	case float64:
		n, err := strconv.ParseFloat(raw[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s expects a number, got %q", f.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", f.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return raw[0], nil
	}
}

// Section is the part of the key before the first dot, e.g. "engine".
func (f *Field) Section() string {
	section, _, _ := strings.Cut(f.Key, ".")
	return section
}

// Sections lists the distinct sections of the registry in alphabetical order.
func Sections() []string {
	sections := lo.Uniq(lo.MapToSlice(Default, func(_ string, f Field) string {
		return f.Section()
	}))
	sort.Strings(sections)
	return sections
}

// Path is where the config file is read from and written to.
func Path() string {
	return filepath.Join(where.Config(), constant.Facetwall+".toml")
}

// Save writes the current values, creating the file when it does not exist yet.
func Save() error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.SafeWriteConfig()
	}
	return err
}
