// Package earnings converts between hourly and annual pay and derives the
// per-minute rate used by the live counter
package earnings

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rytavi/howmuch/internal/apperr"
)

const minutesInAnHour = 60

const (
	MinRate = 1
	MaxRate = 10_000_000

	MinHoursPerDay  = 1
	MaxHoursPerDay  = 24
	MinDaysPerWeek  = 1
	MaxDaysPerWeek  = 7
	MinWeeksPerYear = 1
	MaxWeeksPerYear = 52
)

var (
	ErrEmptyRate = &apperr.Error{
		Message: "please enter your salary or hourly rate",
	}

	ErrRateNotNumeric = &apperr.Error{
		Message: "%q is not a number",
	}

	ErrRateTooLow = &apperr.Error{
		Message: "rate must be at least $%d",
	}

	ErrRateTooHigh = &apperr.Error{
		Message: "rate must not exceed $%s",
	}

	ErrInvalidMode = &apperr.Error{
		Message: "unknown rate mode %q: use annual or hourly",
	}

	ErrScheduleOutOfRange = &apperr.Error{
		Message: "%s must be between %v and %v",
	}
)

// Mode determines how a rate value is interpreted.
type Mode string

const (
	Annual Mode = "annual"
	Hourly Mode = "hourly"
)

// ParseMode converts a user supplied string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Annual, "salary", "yearly":
		return Annual, nil
	case Hourly, "hour":
		return Hourly, nil
	}

	return "", ErrInvalidMode.Fmt(s)
}

// Schedule is the working pattern used to spread an annual figure across
// working minutes.
type Schedule struct {
	HoursPerDay  float64 `json:"hours_per_day"  mapstructure:"hours_per_day"`
	DaysPerWeek  int     `json:"days_per_week"  mapstructure:"days_per_week"`
	WeeksPerYear int     `json:"weeks_per_year" mapstructure:"weeks_per_year"`
}

// DefaultSchedule is a standard 40 hour week worked all year round.
func DefaultSchedule() Schedule {
	return Schedule{
		HoursPerDay:  8,
		DaysPerWeek:  5,
		WeeksPerYear: 52,
	}
}

// Validate ensures every component is within bounds so that none of the
// derived rates divide by zero.
func (s Schedule) Validate() error {
	if s.HoursPerDay < MinHoursPerDay || s.HoursPerDay > MaxHoursPerDay {
		return ErrScheduleOutOfRange.Fmt("hours per day", MinHoursPerDay, MaxHoursPerDay)
	}

	if s.DaysPerWeek < MinDaysPerWeek || s.DaysPerWeek > MaxDaysPerWeek {
		return ErrScheduleOutOfRange.Fmt("days per week", MinDaysPerWeek, MaxDaysPerWeek)
	}

	if s.WeeksPerYear < MinWeeksPerYear || s.WeeksPerYear > MaxWeeksPerYear {
		return ErrScheduleOutOfRange.Fmt("weeks per year", MinWeeksPerYear, MaxWeeksPerYear)
	}

	return nil
}

// HoursPerYear returns the number of paid hours in a year.
func (s Schedule) HoursPerYear() float64 {
	return s.HoursPerDay * float64(s.DaysPerWeek) * float64(s.WeeksPerYear)
}

// DaysPerYear returns the number of working days in a year.
func (s Schedule) DaysPerYear() float64 {
	return float64(s.DaysPerWeek) * float64(s.WeeksPerYear)
}

// MinutesPerYear returns the number of paid minutes in a year.
func MinutesPerYear(s Schedule) float64 {
	return s.HoursPerYear() * minutesInAnHour
}

// AnnualFromHourly converts an hourly rate to its annual equivalent.
func AnnualFromHourly(hourly float64, s Schedule) float64 {
	return hourly * s.HoursPerYear()
}

// EarningsPerMinute returns how much is earned in one working minute.
func EarningsPerMinute(annual float64, s Schedule) float64 {
	return annual / MinutesPerYear(s)
}

// HourlyRate converts an annual figure to an hourly rate.
func HourlyRate(annual float64, s Schedule) float64 {
	return annual / s.HoursPerYear()
}

// DailyTarget returns the amount earned in a full working day.
func DailyTarget(annual float64, s Schedule) float64 {
	return annual / s.DaysPerYear()
}

// Rate is a pay rate expressed either per year or per hour.
type Rate struct {
	Value float64 `json:"value"`
	Mode  Mode    `json:"mode"`
}

// Valid reports whether the rate is within the accepted range.
func (r Rate) Valid() bool {
	return r.Value >= MinRate && r.Value <= MaxRate
}

// Annual returns the annual equivalent of the rate.
func (r Rate) Annual(s Schedule) float64 {
	if r.Mode == Hourly {
		return AnnualFromHourly(r.Value, s)
	}

	return r.Value
}

// ParseRate validates raw user input for a rate.
func ParseRate(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrEmptyRate
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrRateNotNumeric.Fmt(input)
	}

	if v < MinRate {
		return 0, ErrRateTooLow.Fmt(MinRate)
	}

	if v > MaxRate {
		return 0, ErrRateTooHigh.Fmt(humanize.Comma(MaxRate))
	}

	return v, nil
}

// FormatMoney renders an amount as dollars with thousands separators.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}

	return "$" + humanize.FormatFloat("#,###.##", amount)
}
