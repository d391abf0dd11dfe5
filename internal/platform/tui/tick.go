// Package tui hosts the flappy simulation in a terminal with Bubble Tea.
// It owns the frame clock, key mapping, cell rendering and run persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedMs returns the milliseconds between two frames. The first frame has no
// predecessor and reports zero.
func elapsedMs(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}
