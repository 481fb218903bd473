package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	TickRate  int    // Render ticks per second
	LevelsDir string // Custom level directory, empty for the built-in pack
	Level     int    // Level to open first, 0 for the lowest available
	CellWidth int    // Characters per board cell (odd, at least 3)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  30,
		CellWidth: 3,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level     int    // Current level number
	LevelName string // Display name of the current level
	Moves     int    // Moves made on the current level
	Solved    bool   // Whether the current level is solved
	Paused    bool   // Whether the game is paused
	Finished  bool   // Whether the last level has been left behind
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State GameState
	// JustSolved is set on the step that turned the level solved.
	JustSolved bool
}
