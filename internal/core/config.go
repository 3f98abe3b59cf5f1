package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Moves that changed the board
	Pushes   int  // Moves that pushed a block
	Solved   bool // Whether the puzzle is finished
	TooSmall bool // Whether the screen cannot fit the board
}

// StepResult is returned by Game.Step() after each handled action.
type StepResult struct {
	State GameState
	Event string // Short description of what happened, for the status line and logs
}
