package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Default values.
const (
	DefaultLogLevel  = "WARN"
	DefaultLogFormat = "text"
	DefaultLogOutput = "stderr"
	DefaultFormat    = "text"
	DefaultSelect    = "target"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Zero values are replaced with defaults; explicit values are preserved
// and normalized.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)

	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if cfg.Select == "" {
		cfg.Select = DefaultSelect
	}
	cfg.Select = strings.ToLower(strings.TrimSpace(cfg.Select))
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = DefaultLogLevel
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = DefaultLogFormat
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.Output == "" {
		cfg.Output = DefaultLogOutput
	}
}

// setViperDefaults registers every key with viper.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("logging.output", DefaultLogOutput)
	v.SetDefault("quiet", "no")
	v.SetDefault("verbose", "no")
	v.SetDefault("nocolor", "no")
	v.SetDefault("mount_table", "")
	v.SetDefault("select", DefaultSelect)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("metrics_file", "")
}

// GetDefaultConfig returns a Config with all default values applied.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
