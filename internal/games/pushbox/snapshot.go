package pushbox

import "github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for tests and logging.
type Snapshot struct {
	Puzzle      core.Snapshot
	LastOutcome string
	Hint        string
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.puzzle.IsSolved():
		state = StateSolved
	}

	last := ""
	if g.hasOutcome {
		last = g.lastOutcome.String()
	}

	return Snapshot{
		Puzzle:      g.puzzle.Snapshot(),
		LastOutcome: last,
		Hint:        g.hint,
		State:       state,
	}
}
