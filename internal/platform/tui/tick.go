// Package tui provides the Bubble Tea integration for the fisherman game.
// It handles the terminal UI loop, input mapping, persistence hand-off and
// the start screen / game / scoreboard flow, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the tick
// chain that produced it; ticks from an abandoned chain are ignored.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
