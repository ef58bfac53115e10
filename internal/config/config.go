// Package config loads edgebubble settings from defaults, a TOML file,
// EDGEBUBBLE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultFileName is looked up in the working directory when no --config is given
const DefaultFileName = ".edgebubble.toml"

// Config represents the application configuration
type Config struct {
	// IndicatorSize is the inset, in cells, between a snapped bubble and the edge
	IndicatorSize float64      `koanf:"indicator_size" toml:"indicator_size"`
	Bubble        BubbleConfig `koanf:"bubble" toml:"bubble"`
	UI            UIConfig     `koanf:"ui" toml:"ui"`
	Log           LogConfig    `koanf:"log" toml:"log"`
}

// BubbleConfig describes the draggable bubble
type BubbleConfig struct {
	Width  int    `koanf:"width" toml:"width"`
	Height int    `koanf:"height" toml:"height"`
	Label  string `koanf:"label" toml:"label"`
}

// UIConfig represents UI-related configuration
type UIConfig struct {
	MouseAllMotion bool `koanf:"mouse_all_motion" toml:"mouse_all_motion"`
	ShowHelp       bool `koanf:"show_help" toml:"show_help"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `koanf:"file" toml:"file"`
	Level string `koanf:"level" toml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		IndicatorSize: 1,
		Bubble: BubbleConfig{
			Width:  9,
			Height: 3,
			Label:  "drag",
		},
		UI: UIConfig{
			MouseAllMotion: true,
			ShowHelp:       true,
		},
		Log: LogConfig{
			File:  "edgebubble.log",
			Level: "info",
		},
	}
}

// defaultsMap flattens DefaultConfig into koanf keys
func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"indicator_size":      d.IndicatorSize,
		"bubble.width":        d.Bubble.Width,
		"bubble.height":       d.Bubble.Height,
		"bubble.label":        d.Bubble.Label,
		"ui.mouse_all_motion": d.UI.MouseAllMotion,
		"ui.show_help":        d.UI.ShowHelp,
		"log.file":            d.Log.File,
		"log.level":           d.Log.Level,
	}
}

// Validate reports every invalid field
func (c *Config) Validate() error {
	var errs []error
	if c.IndicatorSize < 0 {
		errs = append(errs, fmt.Errorf("indicator_size must not be negative, got %v", c.IndicatorSize))
	}
	if c.Bubble.Width <= 0 {
		errs = append(errs, fmt.Errorf("bubble.width must be positive, got %d", c.Bubble.Width))
	}
	if c.Bubble.Height <= 0 {
		errs = append(errs, fmt.Errorf("bubble.height must be positive, got %d", c.Bubble.Height))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses Log.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", c.Log.Level)
}
