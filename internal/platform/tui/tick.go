// Package tui provides the Bubble Tea front end for the arcade: the frame
// loop that drives games, key mapping, the menus, the scoreboard, and the
// SSH server that serves the same sessions remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one platform frame. Games convert frames into fixed
// simulation ticks themselves, so the frame rate only affects rendering
// smoothness, never game speed.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate. Rates outside a
// sane range fold back to 60 so a bad --fps value cannot stall the loop.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 || fps > 240 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
