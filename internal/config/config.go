// Package config provides YAML-based configuration loading for Pushbox.
package config

// Config is the complete application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Play    PlayConfig    `yaml:"play"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Border     bool        `yaml:"border"`      // Draw a box around the board
	HUD        bool        `yaml:"hud"`         // Show move and goal counters
	CellWidth  int         `yaml:"cell_width"`  // Screen columns per grid cell (1 or 2)
	Colors     ColorConfig `yaml:"colors"`      // Color names per tile
	BorderTint string      `yaml:"border_tint"` // Color name for the border
}

// ColorConfig maps each tile variant to a color name understood by core.ParseColor.
type ColorConfig struct {
	Empty        string `yaml:"empty"`
	Block        string `yaml:"block"`
	BlockOnGoal  string `yaml:"block_on_goal"`
	Goal         string `yaml:"goal"`
	Player       string `yaml:"player"`
	PlayerOnGoal string `yaml:"player_on_goal"`
}

// PlayConfig controls session behaviour.
type PlayConfig struct {
	SolvedDelayMs int `yaml:"solved_delay_ms"` // How long the solved banner stays before the session ends
	HintLimit     int `yaml:"hint_limit"`      // Max positions the hint solver may visit
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Optional log file for interactive play
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
