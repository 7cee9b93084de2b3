// Package tui provides the Bubble Tea front end for GemShift.
// It handles the terminal UI loop, key bindings, the move preview and the
// explosion animation, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the explosion animation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
