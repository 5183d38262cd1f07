// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and drives the runner.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/runner"
)

// TickMsg is sent to trigger a game update step. Gen identifies the tick
// source that scheduled it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after period.
func tickCmd(gen int, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// ticker is the runner's tick source on top of tea.Tick.
//
// Every Start opens a new generation. Only the live generation's messages
// are accepted, and each accepted tick schedules exactly one successor, so
// at most one tick is ever in flight for the live generation. Messages
// from stopped generations are dropped when they arrive.
type ticker struct {
	gen     int // Last generation handed out
	live    int // Accepted generation, 0 when stopped
	period  time.Duration
	pending tea.Cmd // First tick of a freshly started generation
}

var _ runner.TickSource = (*ticker)(nil)

func newTicker() *ticker {
	return &ticker{}
}

// Start implements runner.TickSource.
func (t *ticker) Start(period time.Duration) runner.Token {
	t.gen++
	t.live = t.gen
	t.period = period
	t.pending = tickCmd(t.gen, period)
	return t.gen
}

// Stop implements runner.TickSource.
func (t *ticker) Stop(token runner.Token) {
	gen, ok := token.(int)
	if !ok || gen != t.live {
		return
	}
	t.live = 0
	t.pending = nil
}

// Take returns the command that delivers the first tick of a generation
// started since the last call, or nil.
func (t *ticker) Take() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// Accept reports whether msg belongs to the live generation.
func (t *ticker) Accept(msg TickMsg) bool {
	return t.live != 0 && msg.Gen == t.live
}

// Continue schedules the next tick of gen if it is still live.
func (t *ticker) Continue(gen int) tea.Cmd {
	if gen == 0 || gen != t.live {
		return nil
	}
	return tickCmd(gen, t.period)
}

// Live reports whether a generation is running.
func (t *ticker) Live() bool {
	return t.live != 0
}
