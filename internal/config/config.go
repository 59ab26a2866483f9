package config

import "github.com/spf13/viper"

// Config holds runtime configuration for a strand invocation.
// Values are populated from .strand.yaml, STRAND_* env vars, and CLI flags.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Color         bool   `mapstructure:"color"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("db_path", "")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)

	return Config{
		DBPath:        viper.GetString("db_path"),
		TelemetryPath: viper.GetString("telemetry_path"),
		Color:         viper.GetBool("color"),
		Verbose:       viper.GetBool("verbose"),
	}
}
