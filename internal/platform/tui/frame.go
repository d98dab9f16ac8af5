// Package tui owns the terminal front end: the Bubble Tea models for
// playing, the start menu and the leaderboard, plus the wish SSH server
// for remote sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg carries the wall-clock time of a simulation frame.
type frameMsg time.Time

// scheduleFrame arms the timer for the next simulation frame.
func scheduleFrame(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
