// Package config loads the host configuration for the glhost binary.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WindowConfig configures the main window. The boolean fields are pointers
// so that "unset" and "false" stay distinguishable when merging defaults.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Decorated *bool  `yaml:"decorated"`
	Resizable *bool  `yaml:"resizable"`
	Visible   *bool  `yaml:"visible"`
}

// Config is the top-level host configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// BackgroundWorkers sizes the pool that runs the engine's background
	// tasks. 0 means one worker per CPU.
	BackgroundWorkers int `yaml:"background_workers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "glhost",
			Width:     800,
			Height:    600,
			Decorated: boolPtr(true),
			Resizable: boolPtr(true),
			Visible:   boolPtr(true),
		},
		BackgroundWorkers: 0,
		LogLevel:          "info",
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "glhost", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path. A missing file
// yields the defaults; a malformed or invalid file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills fields yaml left zero or nil.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Window.Title == "" {
		cfg.Window.Title = def.Window.Title
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = def.Window.Width
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = def.Window.Height
	}
	if cfg.Window.Decorated == nil {
		cfg.Window.Decorated = def.Window.Decorated
	}
	if cfg.Window.Resizable == nil {
		cfg.Window.Resizable = def.Window.Resizable
	}
	if cfg.Window.Visible == nil {
		cfg.Window.Visible = def.Window.Visible
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// Validate checks the configuration for values the host cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.BackgroundWorkers < 0 {
		return fmt.Errorf("background_workers must not be negative, got %d", c.BackgroundWorkers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Print writes the effective configuration as yaml.
func (c *Config) Print(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func boolPtr(v bool) *bool { return &v }
