package models

import (
	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/earnings"
)

// Preferences are the user's inputs that survive between runs.
type Preferences struct {
	Mode     earnings.Mode     `json:"mode"`
	Schedule earnings.Schedule `json:"schedule"`
	Rate     float64           `json:"rate"`
	Goal     float64           `json:"goal"`
	DarkMode bool              `json:"dark_mode"`
}

// Snapshot is everything that is persisted: the preferences plus the
// session history, newest first.
type Snapshot struct {
	History []history.Record `json:"history"`
	Preferences
}

// RateValue returns the stored rate with its mode.
func (p Preferences) RateValue() earnings.Rate {
	return earnings.Rate{
		Value: p.Rate,
		Mode:  p.Mode,
	}
}
