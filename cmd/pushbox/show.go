package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the starting board",
	Long: `Print the starting board framed in '#'.

Legend:
  p  player
  o  block
  .  goal`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func runShow(_ *cobra.Command, _ []string) {
	p := core.NewDefault()
	snap := p.Snapshot()
	fmt.Println(snap.Text())
	fmt.Printf("Goals left: %d\n", snap.RemainingGoals)
}
