package app

import (
	"slices"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rytavi/howmuch/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the howmuch app instance.
func Get() *cli.App {
	howmuchApp := &cli.App{
		Name: "howmuch",
		Usage: `
		howmuch shows how much money you have made so far today, second by 
		second, from your salary or hourly rate. Start the timer when you start 
		working and watch the total grow.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "calc",
				Usage:  "Print what a rate is worth per year, month, week, day, hour, minute and second",
				Flags:  rateFlags,
				Action: calcAction,
			},
			{
				Name:    "history",
				Aliases: []string{"list"},
				Usage:   "List recorded sessions",
				Flags:   append(slices.Clone(filterFlags), jsonFlag),
				Action:  historyAction,
			},
			{
				Name:   "export",
				Usage:  "Export recorded sessions to a CSV file",
				Flags:  append(slices.Clone(filterFlags), outputFlag),
				Action: exportAction,
			},
			{
				Name:   "clear-history",
				Usage:  "Delete every recorded session",
				Flags:  []cli.Flag{yesFlag},
				Action: clearHistoryAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: append(
			slices.Clone(rateFlags),
			goalFlag,
			unpaidBreaksFlag,
			disableNotificationFlag,
			noWakeLockFlag,
			noColorFlag,
		),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return howmuchApp
}
