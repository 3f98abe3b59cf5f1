package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; games never see raw key events.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionHint           // ? - ask the solver for the next move
	ActionRestart        // R - start the level over
	ActionQuit           // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directional moves.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
