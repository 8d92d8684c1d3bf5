// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the drop animation
// frame cadence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the drop animation by one frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next animation
// frame after the given delay. tea.Tick waits at least this long, which
// matches the animation contract: the cadence is a floor, not a deadline.
func frameCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
