package core

import (
	"errors"
	"fmt"
)

// RuntimeConfig contains configuration passed to the game at construction.
// It is immutable for the lifetime of a session.
type RuntimeConfig struct {
	Grid      Grid  // Board size in cells
	CellSize  int   // Pixels per cell for renderers that draw in pixels
	TickRate  int   // Simulation ticks per second
	Seed      int64 // RNG seed for deterministic gameplay (0 = pick one in the platform layer)
	QueueSize int   // Buffered turns; 0 keeps the single-slot pending heading
}

// MinCells is the smallest board that leaves room for food beside the snake.
const MinCells = 2

// DefaultConfig returns the classic 32x24 board at 15 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:     Grid{W: 32, H: 24},
		CellSize: 20,
		TickRate: 15,
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c RuntimeConfig) Validate() error {
	var errs []error
	if c.Grid.W <= 0 || c.Grid.H <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.W, c.Grid.H))
	} else if c.Grid.Capacity() < MinCells {
		errs = append(errs, fmt.Errorf("grid %dx%d needs at least %d cells", c.Grid.W, c.Grid.H, MinCells))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}
	if c.QueueSize < 0 {
		errs = append(errs, fmt.Errorf("queue size must not be negative, got %d", c.QueueSize))
	}
	return errors.Join(errs...)
}

// GameState is the per-session counters shown in the HUD.
// None of these are persisted.
type GameState struct {
	Tick   uint64 // Steps taken so far
	Length int    // Current body length
	Eaten  int    // Food eaten since the last reset
	Resets int    // Self-collisions so far
	Done   bool   // Set by finite sources such as replay playback
}

// Events flags what happened during one tick.
type Events struct {
	Ate      bool
	Collided bool
}

// Frame is the read-only visual state handed to renderers.
type Frame struct {
	Body    []Cell // Head first
	Food    Cell
	Heading Heading
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events Events
	Frame  Frame
}
