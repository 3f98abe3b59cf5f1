package config

import (
	_ "embed"
)

//go:embed defaults/pushbox.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Border:    true,
			HUD:       true,
			CellWidth: 2,
			Colors: ColorConfig{
				Empty:        "default",
				Block:        "yellow",
				BlockOnGoal:  "bright_green",
				Goal:         "red",
				Player:       "bright_cyan",
				PlayerOnGoal: "bright_cyan",
			},
			BorderTint: "gray",
		},
		Play: PlayConfig{
			SolvedDelayMs: 1500,
			HintLimit:     200000,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
