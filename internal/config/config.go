// Package config provides YAML-based configuration loading for tuipet.
// Decay rates and thresholds are part of the simulation and deliberately
// not configurable; this package only covers where things live and how the
// program runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the top-level configuration.
type Config struct {
	SavePath   string           `yaml:"save_path"`
	HistoryDB  string           `yaml:"history_db"` // Empty disables the pet history
	TickMS     int              `yaml:"tick_ms"`    // Frame interval; also bounds input latency
	PopupMS    int              `yaml:"popup_ms"`   // How long care popups block input
	Playground PlaygroundConfig `yaml:"playground"`
	Log        LogConfig        `yaml:"log"`
}

// PlaygroundConfig sets the motion area in canvas pixels. A zero width or
// height fits that side to the terminal.
type PlaygroundConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig controls the log file. The TUI owns the terminal, so logs never
// go to stdout or stderr while playing.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs
}

// TickInterval returns TickMS as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// PopupDuration returns PopupMS as a duration.
func (c Config) PopupDuration() time.Duration {
	return time.Duration(c.PopupMS) * time.Millisecond
}

// AutoPlayground reports whether the playground should be sized from the
// terminal.
func (c Config) AutoPlayground() bool {
	return c.Playground.Width == 0 || c.Playground.Height == 0
}

// Validate checks the configuration for values the program cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SavePath) == "" {
		return fmt.Errorf("config: save_path must not be empty")
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMS)
	}
	if c.PopupMS <= 0 {
		return fmt.Errorf("config: popup_ms must be positive, got %d", c.PopupMS)
	}
	if c.Playground.Width < 0 || c.Playground.Height < 0 {
		return fmt.Errorf("config: playground size must not be negative, got %dx%d",
			c.Playground.Width, c.Playground.Height)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
