// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the on-disk game configuration.
type Config struct {
	Screen   ScreenConfig `yaml:"screen"`
	CellSize int          `yaml:"cell_size"`
	TickRate int          `yaml:"tick_rate"`
	Seed     int64        `yaml:"seed"`
	Input    InputConfig  `yaml:"input"`
	Sound    bool         `yaml:"sound"`
	Record   bool         `yaml:"record"`
}

// ScreenConfig is the nominal play-field size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig controls how steering between ticks is buffered.
type InputConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// Grid returns the board size in cells. Call Validate first; a zero cell
// size yields an empty grid.
func (c Config) Grid() core.Grid {
	if c.CellSize <= 0 {
		return core.Grid{}
	}
	return core.Grid{W: c.Screen.Width / c.CellSize, H: c.Screen.Height / c.CellSize}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.CellSize))
	} else if c.Screen.Width%c.CellSize != 0 || c.Screen.Height%c.CellSize != 0 {
		errs = append(errs, fmt.Errorf("cell_size %d does not divide screen %dx%d evenly",
			c.CellSize, c.Screen.Width, c.Screen.Height))
	} else if g := c.Grid(); g.W > 0 && g.H > 0 && g.Capacity() < core.MinCells {
		errs = append(errs, fmt.Errorf("screen %dx%d with cell_size %d gives a %dx%d board; need at least %d cells",
			c.Screen.Width, c.Screen.Height, c.CellSize, g.W, g.H, core.MinCells))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Input.QueueSize < 0 {
		errs = append(errs, fmt.Errorf("input.queue_size must not be negative, got %d", c.Input.QueueSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Runtime converts the configuration into the game's runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:      c.Grid(),
		CellSize:  c.CellSize,
		TickRate:  c.TickRate,
		Seed:      c.Seed,
		QueueSize: c.Input.QueueSize,
	}
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
