package core

// DefaultTickRate is the simulation rate the game was tuned for.
const DefaultTickRate = 80

// RuntimeConfig contains configuration passed to the game at initialization.
// The session uses this to adapt its terminal rendering and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 80)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to this process
	Level     int  // Current level, starting at 1
	GameOver  bool // Whether the session has ended
}

// StepResult is returned by Session.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Hit   bool // A block was destroyed this tick
	Lost  bool // The ball left through the bottom this tick
}
