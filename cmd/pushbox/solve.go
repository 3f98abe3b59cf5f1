package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/solver"
)

var (
	flagSolveLimit   int
	flagSolveTimeout time.Duration
	flagSolveReplay  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the shortest solution",
	Long: `Search for the shortest move sequence that solves the level and print it
as WASD keys.

Examples:
  pushbox solve
  pushbox solve --replay          # Show the board after every move
  pushbox solve --limit 50000     # Give up after 50000 positions`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveLimit, "limit", 0, "Max positions to visit (0 = play.hint_limit from config)")
	solveCmd.Flags().DurationVar(&flagSolveTimeout, "timeout", 30*time.Second, "Give up after this long")
	solveCmd.Flags().BoolVar(&flagSolveReplay, "replay", false, "Print the board after every move")
}

func runSolve(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg, "pushbox-solve")

	limit := flagSolveLimit
	if limit <= 0 {
		limit = cfg.Play.HintLimit
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagSolveTimeout)
	defer cancel()

	p := core.NewDefault()
	start := time.Now()
	path, stats, err := solver.Solve(ctx, p, limit)
	logger.Debug("search finished", "visited", stats.Visited, "elapsed", time.Since(start))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	keys := make([]string, len(path))
	for i, dir := range path {
		keys[i] = dir.Key()
	}
	fmt.Printf("Solution (%d moves): %s\n", len(path), strings.Join(keys, ""))

	if !flagSolveReplay {
		return
	}
	fmt.Println(p.Snapshot().Text())
	for _, dir := range path {
		out := p.ApplyMove(dir)
		fmt.Printf("\n%s: %s\n%s\n", dir, out, p.Snapshot().Text())
	}
}
