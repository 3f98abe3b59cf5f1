// Package pushbox adapts the Pushbox puzzle to the terminal platform:
// it maps actions to moves, asks the solver for hints and renders the board.
package pushbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pushbox/internal/config"
	platformcore "github.com/vovakirdan/tui-pushbox/internal/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/solver"
)

// Game hosts one puzzle for one player.
type Game struct {
	cfg    config.Config
	layout core.Layout
	puzzle *core.Puzzle

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Status line
	lastOutcome core.MoveOutcome
	hasOutcome  bool // Whether lastOutcome belongs to this attempt
	hint        string
	message     string
}

// New creates a game for the given layout.
func New(layout core.Layout, cfg config.Config) (*Game, error) {
	p, err := core.New(layout)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		layout: layout,
		puzzle: p,
	}
	g.Reset(platformcore.DefaultConfig())
	return g, nil
}

// NewDefault creates a game for the built-in level.
func NewDefault(cfg config.Config) *Game {
	g, err := New(core.DefaultLayout, cfg)
	if err != nil {
		panic(fmt.Sprintf("pushbox: default level is invalid: %v", err))
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pushbox"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pushbox"
}

// Reset restarts the level and adopts the new screen size.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.restart()
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the screen dimensions without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// restart replaces the puzzle with a fresh copy of the layout.
func (g *Game) restart() {
	p, err := core.New(g.layout)
	if err != nil {
		// The layout was validated in New.
		panic(err)
	}
	g.puzzle = p
	g.lastOutcome = core.MoveOutcome{}
	g.hasOutcome = false
	g.hint = ""
	g.message = ""
}

// Step handles one action and reports the resulting state.
func (g *Game) Step(a platformcore.Action) platformcore.StepResult {
	var event string

	switch {
	case a.IsMove():
		dir, _ := DirectionForAction(a)
		out := g.puzzle.ApplyMove(dir)
		g.lastOutcome = out
		g.hasOutcome = true
		g.hint = ""
		g.message = ""
		event = fmt.Sprintf("%s %s", dir, out)

	case a == platformcore.ActionHint:
		event = g.requestHint()

	case a == platformcore.ActionRestart:
		g.restart()
		event = "restart"
	}

	return platformcore.StepResult{State: g.State(), Event: event}
}

// requestHint runs the solver from the current position.
func (g *Game) requestHint() string {
	if g.puzzle.IsSolved() {
		g.message = "Already solved"
		return "hint: solved"
	}

	dir, err := solver.Hint(context.Background(), g.puzzle, g.cfg.Play.HintLimit)
	switch {
	case err == nil:
		g.hint = fmt.Sprintf("Hint: %s (%s)", dir, dir.Key())
		g.message = ""
		return "hint: " + dir.String()
	case errors.Is(err, solver.ErrUnsolvable):
		g.message = "No solution from here, press r to restart"
	case errors.Is(err, solver.ErrSearchLimit):
		g.message = "No hint found within the search limit"
	default:
		g.message = "Hint unavailable"
	}
	g.hint = ""
	return "hint: " + err.Error()
}

// State returns the current state for the platform.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Moves:    g.puzzle.Moves(),
		Pushes:   g.puzzle.Pushes(),
		Solved:   g.puzzle.IsSolved(),
		TooSmall: g.tooSmall,
	}
}

// Puzzle exposes the underlying puzzle for read access.
func (g *Game) Puzzle() *core.Puzzle {
	return g.puzzle
}

// DirectionForAction maps a platform action to a puzzle direction.
func DirectionForAction(a platformcore.Action) (core.Direction, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.Up, true
	case platformcore.ActionDown:
		return core.Down, true
	case platformcore.ActionLeft:
		return core.Left, true
	case platformcore.ActionRight:
		return core.Right, true
	default:
		return 0, false
	}
}
