package tracker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rytavi/howmuch/internal/share"
)

const (
	tickInterval  = time.Second
	frameInterval = 50 * time.Millisecond
)

// tickMsg recomputes the earnings. Ticks from an earlier run carry an old
// generation and are dropped.
type tickMsg struct {
	gen int
}

// frameMsg moves the displayed amount towards the real one.
type frameMsg struct {
	gen int
}

type clearCelebrationMsg struct {
	id int
}

type wakeLockRevokedMsg struct{}

type shareResultMsg struct {
	err    error
	method share.Method
}

func tick(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func frame(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func clearCelebrationAfter(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCelebrationMsg{id: id}
	})
}
