// Package history keeps the list of finished earning sessions and exports it
package history

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rytavi/howmuch/internal/earnings"
)

// Record is a finished earning session. Records are never modified after
// they are created.
type Record struct {
	Timestamp time.Time     `json:"timestamp"`
	ID        string        `json:"id"`
	Mode      earnings.Mode `json:"mode"`
	Earnings  float64       `json:"earnings"`
	Rate      float64       `json:"rate"`
	WorkTime  time.Duration `json:"work_time"`
	BreakTime time.Duration `json:"break_time"`
	TotalTime time.Duration `json:"total_time"`
}

// NewRecord creates a record for a session that ended at ts. Work time is
// the total time minus time spent on breaks.
func NewRecord(
	ts time.Time,
	amount float64,
	total, breaks time.Duration,
	rate earnings.Rate,
) Record {
	work := total - breaks
	if work < 0 {
		work = 0
	}

	return Record{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Earnings:  amount,
		WorkTime:  work,
		BreakTime: breaks,
		TotalTime: total,
		Rate:      rate.Value,
		Mode:      rate.Mode,
	}
}

// History is an append-only list of records ordered newest first.
type History struct {
	records []Record
}

// New returns a history holding records, which must already be ordered
// newest first.
func New(records []Record) *History {
	return &History{
		records: slices.Clone(records),
	}
}

// Add puts r at the front of the history.
func (h *History) Add(r Record) {
	h.records = slices.Insert(h.records, 0, r)
}

// Records returns a copy of every record, newest first.
func (h *History) Records() []Record {
	return slices.Clone(h.records)
}

// Len returns the number of stored records.
func (h *History) Len() int {
	return len(h.records)
}

// Clear removes every record.
func (h *History) Clear() {
	h.records = nil
}

// Filter returns the records whose timestamp falls within [since, until].
// A zero bound is treated as open.
func Filter(records []Record, since, until time.Time) []Record {
	var out []Record

	for _, r := range records {
		if !since.IsZero() && r.Timestamp.Before(since) {
			continue
		}

		if !until.IsZero() && r.Timestamp.After(until) {
			continue
		}

		out = append(out, r)
	}

	return out
}

// Summary aggregates a set of records.
type Summary struct {
	Earnings        decimal.Decimal `json:"earnings"`
	Count           int             `json:"count"`
	WorkTime        time.Duration   `json:"work_time"`
	BreakTime       time.Duration   `json:"break_time"`
	TotalTime       time.Duration   `json:"total_time"`
	EffectiveHourly decimal.Decimal `json:"effective_hourly"`
}

// Summarise totals the earnings and durations of records. The effective
// hourly rate is based on work time only.
func Summarise(records []Record) Summary {
	var s Summary

	for _, r := range records {
		s.Count++
		s.Earnings = s.Earnings.Add(decimal.NewFromFloat(r.Earnings))
		s.WorkTime += r.WorkTime
		s.BreakTime += r.BreakTime
		s.TotalTime += r.TotalTime
	}

	if s.WorkTime > 0 {
		hours := decimal.NewFromFloat(s.WorkTime.Hours())
		s.EffectiveHourly = s.Earnings.Div(hours).Round(2)
	}

	s.Earnings = s.Earnings.Round(2)

	return s
}
