package earnings

import "github.com/dustin/go-humanize"

const (
	secondsInAMinute = 60
	monthsInAYear    = 12
)

// Breakdown expresses a rate over every period shown to the user.
type Breakdown struct {
	Annual    float64 `json:"annual"`
	Monthly   float64 `json:"monthly"`
	Weekly    float64 `json:"weekly"`
	Daily     float64 `json:"daily"`
	Hourly    float64 `json:"hourly"`
	PerMinute float64 `json:"per_minute"`
	PerSecond float64 `json:"per_second"`
}

// NewBreakdown computes the breakdown of r under schedule s.
func NewBreakdown(r Rate, s Schedule) Breakdown {
	annual := r.Annual(s)
	perMinute := EarningsPerMinute(annual, s)

	return Breakdown{
		Annual:    annual,
		Monthly:   annual / monthsInAYear,
		Weekly:    annual / float64(s.WeeksPerYear),
		Daily:     DailyTarget(annual, s),
		Hourly:    HourlyRate(annual, s),
		PerMinute: perMinute,
		PerSecond: perMinute / secondsInAMinute,
	}
}

// Rows returns the breakdown as label/value pairs in display order.
func (b Breakdown) Rows() [][]string {
	return [][]string{
		{"Annual", FormatMoney(b.Annual)},
		{"Monthly", FormatMoney(b.Monthly)},
		{"Weekly", FormatMoney(b.Weekly)},
		{"Daily", FormatMoney(b.Daily)},
		{"Hourly", FormatMoney(b.Hourly)},
		{"Per minute", FormatMoney(b.PerMinute)},
		{"Per second", "$" + formatFine(b.PerSecond)},
	}
}

// formatFine keeps four decimal places for sub-cent amounts.
func formatFine(amount float64) string {
	return humanize.FormatFloat("#,###.####", amount)
}
