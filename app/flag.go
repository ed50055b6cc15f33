package app

import "github.com/urfave/cli/v2"

var (
	rateFlag = &cli.StringFlag{
		Name:    "rate",
		Aliases: []string{"r"},
		Usage:   "Your annual salary or hourly rate, depending on --mode (e.g. '52,000')",
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "How the rate is expressed: 'annual' or 'hourly'",
	}

	goalFlag = &cli.Float64Flag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Amount to aim for in this session. Milestones are celebrated only when a goal is set",
	}

	hoursPerDayFlag = &cli.Float64Flag{
		Name:  "hours-per-day",
		Usage: "Working hours per day (default: 8)",
	}

	daysPerWeekFlag = &cli.IntFlag{
		Name:  "days-per-week",
		Usage: "Working days per week (default: 5)",
	}

	weeksPerYearFlag = &cli.IntFlag{
		Name:  "weeks-per-year",
		Usage: "Working weeks per year (default: 52)",
	}

	unpaidBreaksFlag = &cli.BoolFlag{
		Name:  "unpaid-breaks",
		Usage: "Stop earning while on a break",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a milestone is reached",
	}

	noWakeLockFlag = &cli.BoolFlag{
		Name:  "no-wake-lock",
		Usage: "Allow the machine to sleep while the timer runs",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only include sessions from a time period: 'today', 'yesterday', '7days', '14days', '30days', '90days', '180days', '365days', 'all-time'",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions that ended after this date (e.g. '2024-03-01', 'last monday')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions that ended before this date (e.g. 'yesterday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the sessions as JSON",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "File to write the CSV to, or '-' for standard output (default: earnings-history-YYYY-MM-DD.csv)",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)

// rateFlags are shared by every command that works out earnings.
var rateFlags = []cli.Flag{
	rateFlag,
	modeFlag,
	hoursPerDayFlag,
	daysPerWeekFlag,
	weeksPerYearFlag,
}

// filterFlags select the history records a command works on.
var filterFlags = []cli.Flag{
	periodFlag,
	sinceFlag,
	untilFlag,
}
