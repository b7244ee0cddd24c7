// Package config provides configuration management for censusviz.
//
// Configuration is loaded from three sources with the following precedence
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CENSUSVIZ_ prefix)
//  3. Config file (.censusviz.yaml)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the global configuration for censusviz.
type Config struct {
	// Addr is the listen address of the dashboard server.
	Addr string `mapstructure:"addr"`

	// Dataset is the path of the census CSV resource.
	Dataset string `mapstructure:"dataset"`

	// LogLevel controls the verbosity of log output.
	// Valid values: debug, info, warn, error.
	LogLevel string `mapstructure:"log-level"`

	// LogFormat controls the format of log output.
	// Valid values: text, json.
	LogFormat string `mapstructure:"log-format"`

	// ChartHeight is the rendered chart height in pixels.
	ChartHeight int `mapstructure:"chart-height"`

	// PreviewRows is how many filtered records the preview endpoint returns.
	PreviewRows int `mapstructure:"preview-rows"`

	// ConfigFile is the resolved path to the config file used.
	// Set after Load(), not read from config itself.
	ConfigFile string `mapstructure:"-"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Addr:        ":8080",
		Dataset:     "adult.csv",
		LogLevel:    LogLevelInfo,
		LogFormat:   LogFormatText,
		ChartHeight: 700,
		PreviewRows: 5,
	}
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// valid
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
		// valid
	default:
		return fmt.Errorf("invalid log format %q: must be one of text, json", c.LogFormat)
	}

	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}

	if c.ChartHeight <= 0 {
		return fmt.Errorf("chart height must be positive, got %d", c.ChartHeight)
	}

	if c.PreviewRows <= 0 {
		return fmt.Errorf("preview rows must be positive, got %d", c.PreviewRows)
	}

	return nil
}

// Load initialises configuration from flags, environment variables, and an
// optional config file. A fresh viper instance is used on every call so
// that Load is safe for concurrent tests.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	configureEnv(v)

	if err := configureFile(v, configFile); err != nil {
		return nil, err
	}

	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("addr", def.Addr)
	v.SetDefault("dataset", def.Dataset)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-format", def.LogFormat)
	v.SetDefault("chart-height", def.ChartHeight)
	v.SetDefault("preview-rows", def.PreviewRows)
}

func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix("CENSUSVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func configureFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetConfigName(".censusviz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Clean(home))

	// A missing default config file is fine; anything else is an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}
