package session

import (
	"fmt"
	"slices"

	"github.com/rytavi/howmuch/internal/earnings"
)

// Milestones are the fixed amounts celebrated in every session, in
// ascending order.
var Milestones = []float64{10, 25, 50, 100, 250, 500, 1000}

// Celebration is raised the first time a session reaches a milestone or
// the goal.
type Celebration struct {
	Amount float64
	Goal   bool
}

func (c Celebration) Message() string {
	if c.Goal {
		return fmt.Sprintf("Goal reached: %s!", earnings.FormatMoney(c.Amount))
	}

	return fmt.Sprintf("You've made %s!", earnings.FormatMoney(c.Amount))
}

// thresholds returns the milestones merged with the goal, ascending.
func thresholds(goal float64) []float64 {
	out := append(slices.Clone(Milestones), goal)

	slices.Sort(out)

	return slices.Compact(out)
}

// checkMilestone returns the lowest threshold that has been reached but
// not celebrated yet. The caller must store the returned amount as the
// new watermark.
func checkMilestone(amount, goal, watermark float64) (Celebration, bool) {
	if goal <= 0 {
		return Celebration{}, false
	}

	for _, t := range thresholds(goal) {
		if t <= watermark {
			continue
		}

		if amount < t {
			return Celebration{}, false
		}

		return Celebration{
			Amount: t,
			Goal:   t == goal,
		}, true
	}

	return Celebration{}, false
}
