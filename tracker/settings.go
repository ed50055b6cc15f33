package tracker

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rytavi/howmuch/internal/config"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/session"
)

var errNotANumber = errors.New("please enter a number")

// settingsValues are bound to the fields of the settings form.
type settingsValues struct {
	mode         earnings.Mode
	rate         string
	goal         string
	hoursPerDay  string
	daysPerWeek  int
	weeksPerYear string
	unpaidBreaks bool
	// goalOnly is set when the form was opened while the timer runs
	goalOnly bool
}

func newSettingsValues(s session.State) *settingsValues {
	v := &settingsValues{
		mode:         s.Rate.Mode,
		hoursPerDay:  strconv.FormatFloat(s.Schedule.HoursPerDay, 'f', -1, 64),
		daysPerWeek:  s.Schedule.DaysPerWeek,
		weeksPerYear: strconv.Itoa(s.Schedule.WeeksPerYear),
		unpaidBreaks: s.UnpaidBreaks,
		goalOnly:     s.Running(),
	}

	if s.Rate.Value > 0 {
		v.rate = strconv.FormatFloat(s.Rate.Value, 'f', -1, 64)
	}

	if s.Goal > 0 {
		v.goal = strconv.FormatFloat(s.Goal, 'f', -1, 64)
	}

	return v
}

// settingsForm builds the form for v. Only the goal can be changed while
// the timer runs.
func settingsForm(v *settingsValues) *huh.Form {
	goal := huh.NewInput().
		Title("Goal").
		Description("Leave empty for no goal").
		Value(&v.goal).
		Validate(func(s string) error {
			_, err := config.ParseGoal(s)
			return err
		})

	if v.goalOnly {
		return huh.NewForm(huh.NewGroup(goal)).WithShowHelp(false)
	}

	days := make([]huh.Option[int], 0, earnings.MaxDaysPerWeek)
	for d := earnings.MinDaysPerWeek; d <= earnings.MaxDaysPerWeek; d++ {
		days = append(days, huh.NewOption(strconv.Itoa(d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[earnings.Mode]().
				Title("Pay").
				Options(
					huh.NewOption("Annual salary", earnings.Annual),
					huh.NewOption("Hourly rate", earnings.Hourly),
				).
				Value(&v.mode),
			huh.NewInput().
				Title("Rate").
				Value(&v.rate).
				Validate(func(s string) error {
					_, err := earnings.ParseRate(s)
					return err
				}),
			goal,
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours per day").
				Value(&v.hoursPerDay).
				Validate(validateNumber),
			huh.NewSelect[int]().
				Title("Days per week").
				Options(days...).
				Value(&v.daysPerWeek),
			huh.NewInput().
				Title("Weeks per year").
				Value(&v.weeksPerYear).
				Validate(validateNumber),
			huh.NewConfirm().
				Title("Unpaid breaks?").
				Value(&v.unpaidBreaks),
		),
	).WithShowHelp(false)
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errNotANumber
	}

	return nil
}

// applySettings hands the submitted values to the controller. The first
// refused change stops the rest.
func applySettings(ctrl *session.Controller, v *settingsValues) error {
	goal, err := config.ParseGoal(v.goal)
	if err != nil {
		return err
	}

	if _, err := ctrl.SetGoal(goal); err != nil {
		return err
	}

	if v.goalOnly {
		return nil
	}

	rate, err := earnings.ParseRate(v.rate)
	if err != nil {
		return err
	}

	if _, err := ctrl.SetRate(earnings.Rate{Value: rate, Mode: v.mode}); err != nil {
		return err
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(v.hoursPerDay), 64)
	if err != nil {
		return errNotANumber
	}

	weeks, err := strconv.Atoi(strings.TrimSpace(v.weeksPerYear))
	if err != nil {
		return errNotANumber
	}

	_, err = ctrl.SetSchedule(earnings.Schedule{
		HoursPerDay:  hours,
		DaysPerWeek:  v.daysPerWeek,
		WeeksPerYear: weeks,
	})
	if err != nil {
		return err
	}

	_, err = ctrl.SetUnpaidBreaks(v.unpaidBreaks)

	return err
}
