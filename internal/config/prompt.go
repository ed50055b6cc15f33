package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/rytavi/howmuch/internal/earnings"
)

const asciiLogo = `
██╗  ██╗ ██████╗ ██╗    ██╗    ███╗   ███╗██╗   ██╗ ██████╗██╗  ██╗
██║  ██║██╔═══██╗██║    ██║    ████╗ ████║██║   ██║██╔════╝██║  ██║
███████║██║   ██║██║ █╗ ██║    ██╔████╔██║██║   ██║██║     ███████║
██╔══██║██║   ██║██║███╗██║    ██║╚██╔╝██║██║   ██║██║     ██╔══██║
██║  ██║╚██████╔╝╚███╔███╔╝    ██║ ╚═╝ ██║╚██████╔╝╚██████╗██║  ██║
╚═╝  ╚═╝ ╚═════╝  ╚══╝╚══╝     ╚═╝     ╚═╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Mode        earnings.Mode
	Rate        string
	Goal        string
	HoursPerDay float64
	DaysPerWeek int
}

// WithPromptConfig returns an Option that asks for the default rate and
// schedule the first time howmuch runs.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Mode:        earnings.Annual,
		HoursPerDay: earnings.DefaultSchedule().HoursPerDay,
		DaysPerWeek: earnings.DefaultSchedule().DaysPerWeek,
	}

	// Display welcome message
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure howmuch for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'howmuch edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[earnings.Mode]().
				Title("How are you paid?").
				Options(
					huh.NewOption("Annual salary", earnings.Annual).Selected(true),
					huh.NewOption("Hourly rate", earnings.Hourly),
				).
				Value(&opts.Mode),
			huh.NewInput().
				Title("Rate (leave empty to enter it later)").
				Value(&opts.Rate).
				Validate(validateOptionalRate),
		),
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Hours per day").
				Options(
					huh.NewOption("4 hours", 4.0),
					huh.NewOption("6 hours", 6.0),
					huh.NewOption("7.5 hours", 7.5),
					huh.NewOption("8 hours", 8.0).Selected(true),
					huh.NewOption("10 hours", 10.0),
				).
				Value(&opts.HoursPerDay),
			huh.NewSelect[int]().
				Title("Days per week").
				Options(
					huh.NewOption("3 days", 3),
					huh.NewOption("4 days", 4),
					huh.NewOption("5 days", 5).Selected(true),
					huh.NewOption("6 days", 6),
				).
				Value(&opts.DaysPerWeek),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily goal in dollars (leave empty for none)").
				Value(&opts.Goal).
				Validate(validateOptionalGoal),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

func validateOptionalRate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	_, err := earnings.ParseRate(s)

	return err
}

func validateOptionalGoal(s string) error {
	_, err := ParseGoal(s)

	return err
}

// ParseGoal converts a goal typed by the user. An empty string means no
// goal.
func ParseGoal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")

	if s == "" {
		return 0, nil
	}

	goal, err := strconv.ParseFloat(s, 64)
	if err != nil || goal < 0 || goal > earnings.MaxRate {
		return 0, errInvalidGoal.Fmt(humanize.Comma(earnings.MaxRate))
	}

	return goal, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Defaults.Mode = opts.Mode

	if strings.TrimSpace(opts.Rate) != "" {
		rate, err := earnings.ParseRate(opts.Rate)
		if err != nil {
			return err
		}

		c.Defaults.Rate = rate
	}

	goal, err := ParseGoal(opts.Goal)
	if err != nil {
		return err
	}

	c.Defaults.Goal = goal

	c.Schedule = earnings.DefaultSchedule()
	c.Schedule.HoursPerDay = opts.HoursPerDay
	c.Schedule.DaysPerWeek = opts.DaysPerWeek

	return nil
}
