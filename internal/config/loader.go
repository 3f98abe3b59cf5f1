package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pushbox/internal/core"
)

// Load loads the configuration.
// Search order: customPath -> ~/.pushbox/config.yaml -> ./configs/pushbox.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pushbox.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 2 {
		return fmt.Errorf("display.cell_width must be 1 or 2, got %d", c.Display.CellWidth)
	}
	colors := map[string]string{
		"display.colors.empty":          c.Display.Colors.Empty,
		"display.colors.block":          c.Display.Colors.Block,
		"display.colors.block_on_goal":  c.Display.Colors.BlockOnGoal,
		"display.colors.goal":           c.Display.Colors.Goal,
		"display.colors.player":         c.Display.Colors.Player,
		"display.colors.player_on_goal": c.Display.Colors.PlayerOnGoal,
		"display.border_tint":           c.Display.BorderTint,
	}
	for field, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%s: unknown color %q", field, name)
		}
	}
	if c.Play.SolvedDelayMs < 0 {
		return fmt.Errorf("play.solved_delay_ms must not be negative, got %d", c.Play.SolvedDelayMs)
	}
	if c.Play.HintLimit < 0 {
		return fmt.Errorf("play.hint_limit must not be negative, got %d", c.Play.HintLimit)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	return nil
}

// SolvedDelay returns the solved banner duration.
func (c Config) SolvedDelay() time.Duration {
	return time.Duration(c.Play.SolvedDelayMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pushbox", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
