// Package config loads screen-array settings from file and environment.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by cmd/)
//  2. Environment variables (SCREEN_ARRAY_*)
//  3. Config file
//  4. Built-in defaults
//
// Config file search order:
//  1. .screen-array.yaml in current directory
//  2. ~/.config/screen-array/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all screen-array configuration.
type Config struct {
	// Target session
	Session string `yaml:"session"`
	Mux     string `yaml:"mux"`    // multiplexer name; empty means auto-detect
	Binary  string `yaml:"binary"` // multiplexer executable, e.g. "/usr/bin/screen"

	// Grid shape
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Output
	Quiet    bool   `yaml:"quiet"`     // do not echo issued commands
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Binary:   "screen",
		Width:    3,
		Height:   3,
		LogLevel: "info",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	if err := mergeEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no grid can be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width (%d) must be a positive integer", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height (%d) must be a positive integer", c.Height)
	}
	return nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	if data, err := os.ReadFile(".screen-array.yaml"); err == nil {
		return ".screen-array.yaml", data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "screen-array", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg. Zero and negative sizes
// are kept so that Validate can report them.
func mergeFile(cfg *Config, file *Config) {
	if file.Session != "" {
		cfg.Session = file.Session
	}
	if file.Mux != "" {
		cfg.Mux = file.Mux
	}
	if file.Binary != "" {
		cfg.Binary = file.Binary
	}
	if file.Width != 0 {
		cfg.Width = file.Width
	}
	if file.Height != 0 {
		cfg.Height = file.Height
	}
	if file.Quiet {
		cfg.Quiet = true
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) error {
	if v := os.Getenv("SCREEN_ARRAY_SESSION"); v != "" {
		cfg.Session = v
	}
	if v := os.Getenv("SCREEN_ARRAY_MUX"); v != "" {
		cfg.Mux = v
	}
	if v := os.Getenv("SCREEN_ARRAY_BINARY"); v != "" {
		cfg.Binary = v
	}
	if v := os.Getenv("SCREEN_ARRAY_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCREEN_ARRAY_WIDTH=%q: %w", v, err)
		}
		cfg.Width = n
	}
	if v := os.Getenv("SCREEN_ARRAY_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SCREEN_ARRAY_HEIGHT=%q: %w", v, err)
		}
		cfg.Height = n
	}
	if v := os.Getenv("SCREEN_ARRAY_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("SCREEN_ARRAY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
	return nil
}
