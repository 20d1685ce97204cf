// Package tui provides the Bubble Tea integration for the sketchpad.
// It maps mouse and keys onto the paint engine, renders the canvas and
// serves editor sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 3 * time.Second

// statusExpiredMsg clears the status line if no newer message replaced it.
type statusExpiredMsg struct {
	seq int
}

// expireStatusCmd returns a Bubble Tea command that expires status message seq.
func expireStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
