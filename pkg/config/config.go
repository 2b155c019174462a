package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/marmos91/mountinfo/internal/logger"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the mountinfo configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority, applied by the caller)
//  2. Environment variables (MOUNTINFO_*, and RC_QUIET, RC_VERBOSE, RC_NOCOLOR)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls diagnostic output on stderr
	Logging LoggingConfig `mapstructure:"logging" json:"logging" yaml:"logging"`

	// Quiet suppresses result output; the exit status is unaffected.
	// Environment: RC_QUIET=yes
	Quiet Switch `mapstructure:"quiet" json:"quiet" yaml:"quiet"`

	// Verbose forces DEBUG logging.
	// Environment: RC_VERBOSE=yes
	Verbose Switch `mapstructure:"verbose" json:"verbose" yaml:"verbose"`

	// NoColor disables colored log output.
	// Environment: RC_NOCOLOR=yes
	NoColor Switch `mapstructure:"nocolor" json:"nocolor" yaml:"nocolor"`

	// MountTable is a mount-table file read instead of the platform source.
	// Empty selects the platform default.
	MountTable string `mapstructure:"mount_table" json:"mount_table" yaml:"mount_table"`

	// Select names the reported field. -i, -s and -t override it.
	// Valid values: target, source, fstype, options (node and point are
	// aliases of source and target)
	Select string `mapstructure:"select" json:"select" validate:"required,oneof=target source fstype options node point" yaml:"select"`

	// Format is the result format.
	// Valid values: text, table, json, yaml
	Format string `mapstructure:"format" json:"format" validate:"required,oneof=text table json yaml yml" yaml:"format"`

	// MetricsFile, when set, receives pipeline counters in Prometheus text format.
	MetricsFile string `mapstructure:"metrics_file" json:"metrics_file" yaml:"metrics_file"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" json:"level" validate:"required,oneof=DEBUG INFO WARN ERROR" yaml:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" json:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" json:"output" validate:"required" yaml:"output"`
}

// LoggerConfig returns the logger settings implied by cfg. Verbose
// overrides the configured level.
func (c *Config) LoggerConfig() logger.Config {
	level := c.Logging.Level
	if c.Verbose {
		level = "DEBUG"
	}
	return logger.Config{
		Level:   level,
		Format:  c.Logging.Format,
		Output:  c.Logging.Output,
		NoColor: bool(c.NoColor),
	}
}

// Load loads configuration from file, environment, and defaults.
//
// A missing configuration file is not an error: environment variables and
// defaults still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to the specified file path in YAML.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures viper with environment variables, defaults and
// config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Example: MOUNTINFO_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("MOUNTINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The rc switches keep their historical names.
	_ = v.BindEnv("quiet", "MOUNTINFO_QUIET", "RC_QUIET")
	_ = v.BindEnv("verbose", "MOUNTINFO_VERBOSE", "RC_VERBOSE")
	_ = v.BindEnv("nocolor", "MOUNTINFO_NOCOLOR", "RC_NOCOLOR")

	// AutomaticEnv only reaches keys viper knows about.
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/mountinfo/config.yaml
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		// Explicit config file that doesn't exist
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		switchDecodeHook(),
	)
}

// switchDecodeHook returns a mapstructure decode hook that converts the
// rc-style "yes"/"no" strings and plain booleans to Switch.
func switchDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(Switch(false)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return ParseSwitch(v), nil
		case bool:
			return Switch(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mountinfo")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "mountinfo")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks if a config file exists at the default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}
