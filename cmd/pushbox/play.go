package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pushbox/internal/config"
	"github.com/vovakirdan/tui-pushbox/internal/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox"
	"github.com/vovakirdan/tui-pushbox/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level in this terminal",
	Long: `Play the level in this terminal.

Controls:
  W/A/S/D, arrows, h/j/k/l  Move
  ?                         Hint (next move of a shortest solution)
  R                         Restart the level
  Q, Esc, Ctrl+C            Quit

Logging is off during play unless --log-file is given, since log lines
would corrupt the full-screen view.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog, err := playLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height}

	game := pushbox.NewDefault(cfg)
	logger.Info("starting session", "width", width, "height", height)

	_, err = tui.Run(game, cfg, rc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := game.Snapshot()
	fmt.Println(snap.Puzzle.Text())
	if snap.State == pushbox.StateSolved {
		fmt.Printf("Solved in %d moves (%d pushes).\n", snap.Puzzle.Moves, snap.Puzzle.Pushes)
	} else {
		fmt.Printf("%d moves, %d goals left.\n", snap.Puzzle.Moves, snap.Puzzle.RemainingGoals)
	}
}

// playLogger returns a file logger when a log file is configured, otherwise a
// logger that discards everything.
func playLogger(cfg config.Config) (*log.Logger, func(), error) {
	path := flagLogFile
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		return newLogger(io.Discard, cfg, "pushbox"), func() {}, nil
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, cfg, "pushbox"), func() { _ = f.Close() }, nil
}
