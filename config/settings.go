package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = `COINCLI`

const (
	OutputText = `text`
	OutputJSON = `json`
)

// Settings for coincli
type Settings struct {
	LogLevel     string `json:"log_level" mapstructure:"log_level"`
	PrettyLog    bool   `json:"pretty_log" mapstructure:"pretty_log"`
	Output       string `json:"output" mapstructure:"output"`
	DefaultDenom string `json:"default_denom" mapstructure:"default_denom"`
}

// DefaultSettings
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel: "info",
		Output:   OutputText,
	}
}

// Validate the settings, only the output format is restricted
func (s *Settings) Validate() error {
	switch s.Output {
	case OutputText, OutputJSON:
		return nil
	}
	return errors.Errorf("output format(%s) is not supported", s.Output)
}

// LoadSettings reads the settings from file and the COINCLI_* environment variables.
// An empty file name means defaults and environment only.
func LoadSettings(file string) (*Settings, error) {
	v := viper.New()
	applyDefaultSettings(v)
	if len(file) > 0 {
		v.SetConfigFile(filepath.Clean(file))
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "fail to read from config file(%s)", file)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "fail to unmarshal settings")
	}
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func applyDefaultSettings(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("pretty_log", d.PrettyLog)
	v.SetDefault("output", d.Output)
	v.SetDefault("default_denom", d.DefaultDenom)
}
