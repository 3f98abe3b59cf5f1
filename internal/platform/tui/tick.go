// Package tui provides the Bubble Tea host for Pushbox, both for local play
// and for SSH sessions served through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SolvedMsg is sent once the solved banner has been shown long enough.
type SolvedMsg time.Time

// solvedCmd returns a command that fires SolvedMsg after delay.
func solvedCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return SolvedMsg(time.Now()) }
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return SolvedMsg(t)
	})
}
