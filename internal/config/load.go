package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in standard locations.
const FileName = "meshstats.yaml"

// ErrInvalidConfig is returned when loaded settings fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var err error
	if c.Engine.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: engine.workers must not be negative, got %d",
			ErrInvalidConfig, c.Engine.Workers))
	}
	if c.Notifications.Capacity < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: notifications.capacity must not be negative, got %d",
			ErrInvalidConfig, c.Notifications.Capacity))
	}
	sample := (time.Time{}).Format(c.Notifications.TimeFormat)
	if c.Notifications.TimeFormat == "" || sample == c.Notifications.TimeFormat {
		err = multierr.Append(err, fmt.Errorf("%w: notifications.time_format %q has no time fields",
			ErrInvalidConfig, c.Notifications.TimeFormat))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: logging.level %q is not one of debug, info, warn, error",
			ErrInvalidConfig, c.Logging.Level))
	}
	return err
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MeshStats")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MeshStats")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshstats")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshstats")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
