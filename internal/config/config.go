// Package config loads strand's runtime configuration with viper.
//
// Configuration is optional: every setting has a default, so the service
// runs with no config file at all. When a file is given (or a config.yaml
// is found in the search path) its values override the defaults, and a few
// settings can also come from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	// Listen is the address the HTTP server binds to.
	Listen string `mapstructure:"listen"`

	// ReadHeaderTimeoutSeconds bounds how long the server waits for
	// request headers. Guards against slowloris connections.
	ReadHeaderTimeoutSeconds int `mapstructure:"read_header_timeout_seconds"`

	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"`

	// RateLimit is the sustained requests-per-second budget per process.
	// Zero disables rate limiting.
	RateLimit float64 `mapstructure:"rate_limit"`

	// RateBurst is the burst size used when RateLimit is enabled.
	RateBurst int `mapstructure:"rate_burst"`
}

// LogConfig configures logging output
type LogConfig struct {
	// JSON selects structured JSON output instead of the development
	// console encoder.
	JSON bool `mapstructure:"json"`
}

// Config is the full runtime configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// Loader reads configuration from an optional YAML file plus defaults
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a loader. An empty configFile means "search the usual
// places and fall back to defaults".
func NewLoader(configFile string) *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/strand")
	}
	return &Loader{viper: v}
}

// Load reads, defaults, and unmarshals the configuration
func (l *Loader) Load() (*Config, error) {
	v := l.viper

	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.read_header_timeout_seconds", 5)
	v.SetDefault("server.shutdown_timeout_seconds", 5)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("log.json", false)

	// Listen address and log format may come from the environment as well
	if err := v.BindEnv("server.listen", "STRAND_LISTEN"); err != nil {
		return nil, fmt.Errorf("failed to bind STRAND_LISTEN environment variable: %w", err)
	}
	if err := v.BindEnv("log.json", "STRAND_LOG_JSON"); err != nil {
		return nil, fmt.Errorf("failed to bind STRAND_LOG_JSON environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	return &cfg, nil
}
