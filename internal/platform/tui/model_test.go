package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pushbox/internal/config"
	"github.com/vovakirdan/tui-pushbox/internal/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Play.SolvedDelayMs = 0
	return NewModel(pushbox.NewDefault(cfg), cfg, core.DefaultConfig(), nil)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestModelMoves(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, runeKey('s'), runeKey('a'))
	if cmd != nil {
		t.Error("expected no command for ordinary moves")
	}
	if got := m.Game().State().Moves; got != 2 {
		t.Errorf("Moves = %d, want 2", got)
	}
}

func TestModelSolvedQuits(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m,
		runeKey('s'), runeKey('s'), runeKey('a'), runeKey('a'),
		runeKey('w'), runeKey('s'), runeKey('a'), runeKey('w'),
	)
	if !m.Game().State().Solved {
		t.Fatal("expected solved puzzle")
	}
	if cmd == nil {
		t.Fatal("expected solved command")
	}

	msg := cmd()
	if _, ok := msg.(SolvedMsg); !ok {
		t.Fatalf("command produced %T, want SolvedMsg", msg)
	}

	// Moves are ignored while the banner shows.
	m, _ = press(t, m, runeKey('d'))
	if got := m.Game().State().Moves; got != 8 {
		t.Errorf("Moves after solve = %d, want 8", got)
	}

	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !m.quitting {
		t.Error("expected quitting flag")
	}
}

func TestModelResizeKeepsPuzzle(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, runeKey('s'))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if got := m.Game().State().Moves; got != 1 {
		t.Errorf("Moves after resize = %d, want 1", got)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-helpHeight)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Pushbox", "Goals left: 2", "hint", "restart"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
