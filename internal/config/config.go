// Package config provides YAML-based configuration for the puzzle: where
// levels come from, how the board is drawn, play defaults, the solve store
// and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// PipesConfig contains all configuration for the puzzle.
type PipesConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
	Play    PlayConfig    `yaml:"play"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// LevelsConfig selects the level source.
type LevelsConfig struct {
	// Dir is a directory of level files. Empty means the built-in pack.
	Dir string `yaml:"dir"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	Theme     string `yaml:"theme"`
	CellWidth int    `yaml:"cell_width"`
}

// PlayConfig defines play defaults.
type PlayConfig struct {
	TickRate   int `yaml:"tick_rate"`
	StartLevel int `yaml:"start_level"`
}

// StorageConfig defines where solve records are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Themes lists the accepted theme names.
var Themes = []string{"default", "neon", "pastel", "monochrome"}

// Validate checks value ranges.
func (c PipesConfig) Validate() error {
	known := false
	for _, t := range Themes {
		if c.Display.Theme == t {
			known = true
			break
		}
	}
	switch {
	case !known:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Display.Theme)
	case c.Display.CellWidth < 3 || c.Display.CellWidth%2 == 0:
		return fmt.Errorf("%w: cell_width must be odd and at least 3, got %d", ErrInvalidConfig, c.Display.CellWidth)
	case c.Play.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Play.TickRate)
	case c.Play.StartLevel < 0:
		return fmt.Errorf("%w: start_level must not be negative, got %d", ErrInvalidConfig, c.Play.StartLevel)
	case c.Storage.DBPath == "":
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalidConfig)
	}
	return nil
}
