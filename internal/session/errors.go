package session

import (
	"github.com/rytavi/howmuch/internal/apperr"
)

var (
	ErrInvalidRate = &apperr.Error{
		Message: "enter a rate between $1 and $10,000,000 before starting",
	}

	ErrNotRunning = &apperr.Error{
		Message: "the timer is not running",
	}

	ErrRunning = &apperr.Error{
		Message: "pause or reset the timer before changing it",
	}

	ErrInvalidGoal = &apperr.Error{
		Message: "goal must be a positive amount no larger than $10,000,000",
	}
)
