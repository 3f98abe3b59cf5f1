package pushbox

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pushbox/internal/config"
	platformcore "github.com/vovakirdan/tui-pushbox/internal/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewDefault(config.Default())
	g.Reset(platformcore.DefaultConfig())
	return g
}

func TestDirectionForAction(t *testing.T) {
	tests := []struct {
		action platformcore.Action
		want   core.Direction
		ok     bool
	}{
		{platformcore.ActionUp, core.Up, true},
		{platformcore.ActionDown, core.Down, true},
		{platformcore.ActionLeft, core.Left, true},
		{platformcore.ActionRight, core.Right, true},
		{platformcore.ActionHint, 0, false},
		{platformcore.ActionQuit, 0, false},
		{platformcore.ActionNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			got, ok := DirectionForAction(tt.action)
			if ok != tt.ok {
				t.Fatalf("DirectionForAction(%v) ok = %v, want %v", tt.action, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("DirectionForAction(%v) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestStepSolvesDefaultLevel(t *testing.T) {
	g := newTestGame(t)
	actions := []platformcore.Action{
		platformcore.ActionDown, platformcore.ActionDown,
		platformcore.ActionLeft, platformcore.ActionLeft,
		platformcore.ActionUp, platformcore.ActionDown,
		platformcore.ActionLeft, platformcore.ActionUp,
	}

	var res platformcore.StepResult
	for i, a := range actions {
		res = g.Step(a)
		if i < len(actions)-1 && res.State.Solved {
			t.Fatalf("solved early after action %d", i)
		}
	}

	if !res.State.Solved {
		t.Fatal("expected puzzle to be solved")
	}
	if res.State.Moves != 8 || res.State.Pushes != 2 {
		t.Errorf("moves/pushes = %d/%d, want 8/2", res.State.Moves, res.State.Pushes)
	}
	if res.Event != "Up Pushed+Solved" {
		t.Errorf("Event = %q, want %q", res.Event, "Up Pushed+Solved")
	}
	if snap := g.Snapshot(); snap.State != StateSolved {
		t.Errorf("State = %v, want %v", snap.State, StateSolved)
	}
}

func TestStepBlockedMove(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(platformcore.ActionUp)
	if res.Event != "Up Blocked" {
		t.Errorf("Event = %q, want %q", res.Event, "Up Blocked")
	}
	if res.State.Moves != 0 {
		t.Errorf("Moves = %d, want 0", res.State.Moves)
	}
	if got := g.Snapshot().LastOutcome; got != "Blocked" {
		t.Errorf("LastOutcome = %q, want %q", got, "Blocked")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	g.Step(platformcore.ActionDown)
	g.Step(platformcore.ActionLeft)

	res := g.Step(platformcore.ActionRestart)
	if res.State.Moves != 0 || res.State.Pushes != 0 {
		t.Errorf("after restart moves/pushes = %d/%d, want 0/0", res.State.Moves, res.State.Pushes)
	}

	want := core.NewDefault().Snapshot().Text()
	if got := g.Snapshot().Puzzle.Text(); got != want {
		t.Errorf("board after restart =\n%s\nwant\n%s", got, want)
	}
	if got := g.Snapshot().LastOutcome; got != "" {
		t.Errorf("LastOutcome = %q, want empty", got)
	}
}

func TestHint(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(platformcore.ActionHint)
	if res.State.Moves != 0 {
		t.Errorf("hint changed the move count to %d", res.State.Moves)
	}
	hint := g.Snapshot().Hint
	if hint != "Hint: Down (s)" && hint != "Hint: Left (a)" {
		t.Errorf("Hint = %q, want a first move of a shortest solution", hint)
	}

	// Any move clears the hint.
	g.Step(platformcore.ActionRight)
	if got := g.Snapshot().Hint; got != "" {
		t.Errorf("Hint after move = %q, want empty", got)
	}
}

func TestHintOnDeadPosition(t *testing.T) {
	g, err := New(core.Layout{"$.@ "}, config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res := g.Step(platformcore.ActionHint)
	if !strings.Contains(res.Event, "no solution") {
		t.Errorf("Event = %q, want it to mention no solution", res.Event)
	}
	if g.Snapshot().Hint != "" {
		t.Error("expected no hint for an unsolvable position")
	}
}

func TestRenderDefaultLevel(t *testing.T) {
	g := newTestGame(t)
	scr := platformcore.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"Pushbox", "Moves: 0", "Goals left: 2", "p", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}

func TestRenderColors(t *testing.T) {
	cfg := config.Default()
	cfg.Display.HUD = false
	cfg.Display.Border = false
	cfg.Display.CellWidth = 1
	cfg.Display.Colors.Player = "magenta"

	g := NewDefault(cfg)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 6, ScreenH: 3})

	scr := platformcore.NewScreen(6, 3)
	g.Render(scr)

	want := []string{" .. p ", " oo   ", "      "}
	for y, line := range want {
		if got := scr.Row(y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}
	if c := scr.GetCell(4, 0); c.Color != platformcore.ColorMagenta {
		t.Errorf("player color = %v, want %v", c.Color, platformcore.ColorMagenta)
	}
	if c := scr.GetCell(1, 1); c.Color != platformcore.ColorYellow {
		t.Errorf("block color = %v, want %v", c.Color, platformcore.ColorYellow)
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(t)
	g.Resize(20, 4)

	if !g.State().TooSmall {
		t.Fatal("expected TooSmall for a 20x4 screen")
	}
	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("State = %v, want %v", got, StatePausedSmall)
	}

	scr := platformcore.NewScreen(20, 4)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	if g.State().TooSmall {
		t.Error("expected TooSmall to clear after resize")
	}
}
