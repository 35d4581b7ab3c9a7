package core

import "time"

// DefaultTickPeriod is the target interval between two simulation ticks.
const DefaultTickPeriod = 25 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Wall-clock interval between ticks
	Seed       int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: DefaultTickPeriod,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score   int           // Current score
	Elapsed time.Duration // Simulated time since the session started
	Paused  bool          // Whether the game is paused
}

// Event is a notable thing that happened during a tick, reported to the
// platform for logging. Fields are alternating key/value pairs.
type Event struct {
	Name   string
	Fields []any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
