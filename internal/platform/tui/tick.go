// Package tui provides the Bubble Tea integration for Vector Dash.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// round the tick was scheduled for; ticks from an older round are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickGen is shared by every model so generations never repeat within a
// process, even when one session runs several games in turn.
var tickGen atomic.Uint64

func nextGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick for gen at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
