package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pushbox.yaml")
	data := []byte("display:\n  hud: false\n  colors:\n    player: magenta\nplay:\n  solved_delay_ms: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.HUD {
		t.Error("Display.HUD = true, want false")
	}
	if cfg.Display.Colors.Player != "magenta" {
		t.Errorf("Colors.Player = %q, want %q", cfg.Display.Colors.Player, "magenta")
	}
	if got := cfg.SolvedDelay(); got != 250*time.Millisecond {
		t.Errorf("SolvedDelay() = %v, want 250ms", got)
	}
	// Unset fields keep their defaults.
	if cfg.Display.Colors.Block != Default().Display.Colors.Block {
		t.Errorf("Colors.Block = %q, want default", cfg.Display.Colors.Block)
	}
	if cfg.Server.Address != Default().Server.Address {
		t.Errorf("Server.Address = %q, want default", cfg.Server.Address)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "display: [", ""},
		{"cell width", "display:\n  cell_width: 3\n", "cell_width"},
		{"color", "display:\n  colors:\n    goal: chartreuse\n", "display.colors.goal"},
		{"log level", "log:\n  level: loud\n", "log.level"},
		{"negative delay", "play:\n  solved_delay_ms: -1\n", "solved_delay_ms"},
		{"negative idle", "server:\n  idle_timeout_minutes: -5\n", "idle_timeout_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/etc/pushbox")
	if err != nil || got != "/etc/pushbox" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/keys/host")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "keys/host"); got != want {
		t.Errorf("ExpandHome(~) = %q, want %q", got, want)
	}
}
