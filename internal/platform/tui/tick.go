// Package tui hosts a game in a Bubble Tea program. It owns the clock, turns
// key presses into per-frame input, and paints the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host frame.
type TickMsg time.Time

// tickInterval returns the frame period for tickRate frames per second.
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(max(1, tickRate))
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
