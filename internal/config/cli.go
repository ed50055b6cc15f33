package config

import (
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/rytavi/howmuch/internal/earnings"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Rate          string
	Mode          string
	Goal          float64
	HoursPerDay   float64
	DaysPerWeek   int
	WeeksPerYear  int
	UnpaidBreaks  bool
	DisableNotify bool
	NoWakeLock    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Rate:          ctx.String("rate"),
			Mode:          ctx.String("mode"),
			Goal:          ctx.Float64("goal"),
			HoursPerDay:   ctx.Float64("hours-per-day"),
			DaysPerWeek:   ctx.Int("days-per-week"),
			WeeksPerYear:  ctx.Int("weeks-per-year"),
			UnpaidBreaks:  ctx.Bool("unpaid-breaks"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoWakeLock:    ctx.Bool("no-wake-lock"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Rate != "" {
		rate, err := earnings.ParseRate(opts.Rate)
		if err != nil {
			return err
		}

		c.CLI.Rate = rate
	}

	if opts.Mode != "" {
		mode, err := earnings.ParseMode(opts.Mode)
		if err != nil {
			return err
		}

		c.CLI.Mode = mode
	}

	if opts.Goal < 0 || opts.Goal > earnings.MaxRate {
		return errInvalidGoal.Fmt(humanize.Comma(earnings.MaxRate))
	}

	c.CLI.Goal = opts.Goal

	c.CLI.Schedule = earnings.Schedule{
		HoursPerDay:  opts.HoursPerDay,
		DaysPerWeek:  opts.DaysPerWeek,
		WeeksPerYear: opts.WeeksPerYear,
	}

	if opts.UnpaidBreaks {
		c.Settings.UnpaidBreaks = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.NoWakeLock = opts.NoWakeLock

	return nil
}
