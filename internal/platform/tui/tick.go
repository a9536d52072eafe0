// Package tui provides the Bubble Tea frontend for the game.
// It handles the terminal loop, input mapping, rendering and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine frame.
type TickMsg time.Time

// tickCmd schedules a single tick at the given rate. The model re-arms it
// after every frame while the game is running.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
