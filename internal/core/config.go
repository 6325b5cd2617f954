package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic boards.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  32,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool

	// Round statistics persisted next to the score.
	Moves    int // Swaps that created a run
	Cleared  int // Tokens cleared
	MaxCombo int // Deepest cascade level reached
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Outcome describes the most recent interaction ("applied", "reverted", ...).
	// Empty when nothing happened this tick.
	Outcome string
}
