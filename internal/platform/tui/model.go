package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pushbox/internal/config"
	"github.com/vovakirdan/tui-pushbox/internal/core"
)

// helpHeight is the number of rows reserved for the help bar.
const helpHeight = 1

// Game is what the model hosts. Games contain pure logic with no Bubble Tea
// dependency; the model handles input mapping and display.
type Game interface {
	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the game over with the given screen dimensions.
	Reset(cfg core.RuntimeConfig)

	// Resize adopts new screen dimensions without resetting.
	Resize(w, h int)

	// Step handles one player action.
	Step(a core.Action) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Model is the Bubble Tea model hosting one puzzle.
// The game is event driven: every handled key is one Step, there is no tick loop.
type Model struct {
	game        Game
	screen      *core.Screen
	keys        KeyMap
	help        help.Model
	logger      *log.Logger
	runtime     core.RuntimeConfig
	solvedDelay time.Duration
	solved      bool // Solved banner is showing
	quitting    bool
}

// NewModel creates a model for the given game.
// A nil logger discards all log output.
func NewModel(game Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rc.ScreenH = max(rc.ScreenH-helpHeight, 0)
	game.Reset(rc)
	logger.Debug("hosting game", "title", game.Title(), "width", rc.ScreenW, "height", rc.ScreenH)

	return Model{
		game:        game,
		screen:      core.NewScreen(rc.ScreenW, rc.ScreenH),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logger:      logger,
		runtime:     rc,
		solvedDelay: cfg.SolvedDelay(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SolvedMsg:
		m.logger.Debug("closing solved session")
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey maps a key to an action and steps the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.logger.Info("player quit", "moves", m.game.State().Moves, "solved", m.game.State().Solved)
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case m.solved:
		// Only quit is accepted while the solved banner is showing.
		return m, nil
	}

	res := m.game.Step(action)
	m.logger.Debug("step", "key", msg.String(), "action", action, "event", res.Event)

	if res.State.Solved {
		m.solved = true
		m.logger.Info("puzzle solved", "moves", res.State.Moves, "pushes", res.State.Pushes)
		return m, solvedCmd(m.solvedDelay)
	}
	return m, nil
}

// handleResize adapts the screen buffer to the terminal size.
// The puzzle itself is kept; only the layout on screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.game.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return composeView(RenderScreen(m.screen), m.help.View(m.keys))
}

// Game returns the hosted game.
func (m Model) Game() Game {
	return m.game
}

// Run starts a local Bubble Tea program and returns the final model.
func Run(game Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) (Model, error) {
	model := NewModel(game, cfg, rc, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
