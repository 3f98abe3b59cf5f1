// pushbox is a single-level block-pushing puzzle for the terminal.
//
// Usage:
//
//	pushbox play     - Play the level in this terminal
//	pushbox serve    - Start SSH server for remote play
//	pushbox solve    - Print the shortest solution
//	pushbox show     - Print the starting board
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.pushbox, ./configs, built-in)
//	--log-level <level> - Override log.level from the config
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pushbox/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pushbox",
	Short: "Pushbox - push the blocks onto the goals",
	Long: `Pushbox is a small block-pushing puzzle played in the terminal.

Walk the player around the grid and push every block onto a goal.
Blocks can only be pushed, never pulled, and only one at a time.

Available commands:
  play     - Play the level in this terminal
  serve    - Start SSH server for remote play
  solve    - Print the shortest solution
  show     - Print the starting board

Examples:
  pushbox play
  pushbox serve --ssh :2222
  pushbox solve`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	return cfg
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
