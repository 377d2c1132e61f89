// ABOUTME: YAML configuration for renderer launch, drawing moment, log level
// ABOUTME: Merge order: defaults, then config file, then UEBERLAY_* env vars

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/ueberlay/internal/log"
	"github.com/mauromedda/ueberlay/pkg/overlay/ueberzug"
)

// Config controls how the demo and other hosts wire the overlay renderer.
type Config struct {
	Renderer string `yaml:"renderer"`  // renderer binary name
	Scaler   string `yaml:"scaler"`    // ueberzug scaler for add commands
	Drawing  string `yaml:"drawing"`   // "synchronous" or "asynchronous"
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Renderer: "ueberzug",
		Scaler:   ueberzug.ScalerContain,
		Drawing:  "synchronous",
		LogLevel: "warn",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ueberlay", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ueberlay", "config.yaml")
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path if it exists, overlaid by environment variables. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults apply
		case err != nil:
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv folds UEBERLAY_* variables over cfg. Env beats file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("UEBERLAY_RENDERER"); v != "" {
		cfg.Renderer = v
	}
	if v := os.Getenv("UEBERLAY_SCALER"); v != "" {
		cfg.Scaler = v
	}
	if v := os.Getenv("UEBERLAY_DRAWING"); v != "" {
		cfg.Drawing = v
	}
	if v := os.Getenv("UEBERLAY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Level maps the configured log level name onto a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return log.LevelDebug
	case "info":
		return log.LevelInfo
	case "error":
		return log.LevelError
	default:
		return log.LevelWarn
	}
}

// Moment maps the configured drawing moment onto the renderer option.
func (c Config) Moment() ueberzug.DrawingMoment {
	if c.Drawing == "asynchronous" {
		return ueberzug.DrawAsynchronous
	}
	return ueberzug.DrawSynchronous
}
