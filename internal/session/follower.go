package session

import "math"

const (
	followFactor  = 0.2
	followEpsilon = 0.005
)

// Follower eases a displayed amount towards the real one. It only affects
// what is shown and is never used for milestones or records.
type Follower struct {
	value float64
}

// Value returns the amount to display.
func (f *Follower) Value() float64 {
	return f.value
}

// Step moves the displayed amount a fifth of the way to target and
// reports whether it has settled on it.
func (f *Follower) Step(target float64) bool {
	gap := target - f.value

	if math.Abs(gap) < followEpsilon {
		f.value = target
		return true
	}

	f.value += gap * followFactor

	if math.Abs(target-f.value) < followEpsilon {
		f.value = target
		return true
	}

	return false
}

// Snap jumps straight to v.
func (f *Follower) Snap(v float64) {
	f.value = v
}
