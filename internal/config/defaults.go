package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 640x480 field of 20px
// cells (32x24) at 15 ticks per second.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		CellSize: 20,
		TickRate: 15,
		Seed:     0, // 0 means pick a seed per session
		Input: InputConfig{
			QueueSize: 0,
		},
		Sound:  false,
		Record: true,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
