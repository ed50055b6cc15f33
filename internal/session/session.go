// Package session runs the earnings timer: it tracks running, paused and
// break time, turns elapsed time into earnings and records finished
// sessions in the history
package session

import (
	"time"

	"github.com/rytavi/howmuch/internal/earnings"
)

// Status is the position of the timer in its lifecycle.
type Status int

const (
	Idle Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// State is a snapshot of the timer. It is a value: changing a State
// returned by the controller has no effect on the controller.
type State struct {
	// StartTime is the start of the current running slice. It is zero
	// unless the timer is running.
	StartTime time.Time
	// BreakStart is the start of the break in progress, if any.
	BreakStart time.Time
	Rate       earnings.Rate
	Schedule   earnings.Schedule
	// Elapsed is the time accumulated by previous running slices.
	Elapsed time.Duration
	// BreakElapsed is the time accumulated by finished breaks.
	BreakElapsed time.Duration
	Earnings     float64
	Goal         float64
	// Celebrated is the highest milestone already celebrated in this
	// session.
	Celebrated   float64
	Status       Status
	OnBreak      bool
	UnpaidBreaks bool
}

// Running reports whether the timer is counting.
func (s State) Running() bool {
	return s.Status == Running
}

// TotalElapsed returns the session time up to now, breaks included.
func (s State) TotalElapsed(now time.Time) time.Duration {
	total := s.Elapsed

	if s.Status == Running && !s.StartTime.IsZero() {
		if slice := now.Sub(s.StartTime); slice > 0 {
			total += slice
		}
	}

	return total
}

// TotalBreak returns the time spent on breaks up to now.
func (s State) TotalBreak(now time.Time) time.Duration {
	total := s.BreakElapsed

	if s.OnBreak && !s.BreakStart.IsZero() {
		if slice := now.Sub(s.BreakStart); slice > 0 {
			total += slice
		}
	}

	return total
}

// WorkTime returns the session time up to now excluding breaks.
func (s State) WorkTime(now time.Time) time.Duration {
	work := s.TotalElapsed(now) - s.TotalBreak(now)
	if work < 0 {
		return 0
	}

	return work
}

// PerMinute returns the earnings per working minute at the current rate.
func (s State) PerMinute() float64 {
	return earnings.EarningsPerMinute(s.Rate.Annual(s.Schedule), s.Schedule)
}

// Progress returns how far the earnings are towards the goal as a
// percentage between 0 and 100. It is 0 when no goal is set.
func (s State) Progress() float64 {
	if s.Goal <= 0 {
		return 0
	}

	pct := s.Earnings / s.Goal * 100
	if pct > 100 {
		return 100
	}

	return pct
}

// Dirty reports whether the session holds anything worth recording.
func (s State) Dirty(now time.Time) bool {
	return s.Earnings > 0 || s.TotalElapsed(now) > 0
}
