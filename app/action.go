package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/config"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/models"
	"github.com/rytavi/howmuch/internal/pathutil"
	"github.com/rytavi/howmuch/internal/session"
	"github.com/rytavi/howmuch/internal/share"
	"github.com/rytavi/howmuch/internal/ui"
	"github.com/rytavi/howmuch/internal/wakelock"
	"github.com/rytavi/howmuch/store"
	"github.com/rytavi/howmuch/tracker"
)

const (
	envNoColor        = "NO_COLOR"
	envHowmuchNoColor = "HOWMUCH_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// filteredHistory loads the records selected by the filter flags.
func filteredHistory(ctx *cli.Context) ([]history.Record, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, err
	}

	defer db.Close()

	snap, err := db.Load()
	if err != nil {
		return nil, err
	}

	return history.Filter(snap.History, filter.Since, filter.Until), nil
}

// defaultAction starts the interactive earnings tracker.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	snap, err := db.Load()
	if err != nil {
		return err
	}

	prefs := cfg.Preferences(snap.Preferences)

	if err = prefs.Schedule.Validate(); err != nil {
		return err
	}

	ctrl := session.New(session.Settings{
		Rate:         prefs.RateValue(),
		Schedule:     prefs.Schedule,
		Goal:         prefs.Goal,
		UnpaidBreaks: cfg.Settings.UnpaidBreaks,
	}, session.WithHistory(history.New(snap.History)))

	lock, err := wakelock.New(cfg.WakeLockCmd())
	if err != nil {
		return err
	}

	sharer, err := share.New(cfg.Settings.ShareCmd)
	if err != nil {
		return err
	}

	t := tracker.New(
		ctrl,
		db,
		cfg,
		tracker.WithWakeLock(lock),
		tracker.WithSharer(sharer),
		tracker.WithDarkMode(prefs.DarkMode),
	)

	slog.InfoContext(
		ctx.Context,
		"starting tracker",
		slog.String("config", cfg.String()),
		slog.Int("history", len(snap.History)),
	)

	p := tea.NewProgram(t)

	_, err = p.Run()

	return errors.Join(err, t.Close())
}

// calcAction prints what the configured rate is worth over every period.
func calcAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	prefs := cfg.Preferences(models.Preferences{})

	rate := prefs.RateValue()
	if !rate.Valid() {
		return errMissingRate
	}

	if err = prefs.Schedule.Validate(); err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	fmt.Fprintf(
		config.Stdout,
		"%s %s (%s) working %g hours a day, %d days a week, %d weeks a year\n",
		ui.Highlight("Rate:"),
		earnings.FormatMoney(rate.Value),
		rate.Mode,
		prefs.Schedule.HoursPerDay,
		prefs.Schedule.DaysPerWeek,
		prefs.Schedule.WeeksPerYear,
	)

	rows := append(
		[][]string{{"PERIOD", "EARNINGS"}},
		earnings.NewBreakdown(rate, prefs.Schedule).Rows()...,
	)

	ui.PrintTable(rows, config.Stdout)

	return nil
}

// historyAction prints the recorded sessions within a time period.
func historyAction(ctx *cli.Context) error {
	records, err := filteredHistory(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(struct {
			Sessions []history.Record `json:"sessions"`
			Summary  history.Summary  `json:"summary"`
		}{
			Sessions: records,
			Summary:  history.Summarise(records),
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printHistoryTable(config.Stdout, records)
	printSummary(config.Stdout, history.Summarise(records))

	return nil
}

// exportAction writes the recorded sessions within a time period to a CSV
// file, or to standard output when the output is '-'.
func exportAction(ctx *cli.Context) error {
	records, err := filteredHistory(ctx)
	if err != nil {
		return err
	}

	output := firstNonEmptyString(
		ctx.String("output"),
		history.ExportFileName(time.Now()),
	)

	if output == "-" {
		return history.ExportCSV(config.Stdout, records)
	}

	f, err := os.Create(output)
	if err != nil {
		return errExport.Wrap(err)
	}

	if err = history.ExportCSV(f, records); err != nil {
		_ = f.Close()
		return errExport.Wrap(err)
	}

	if err = f.Close(); err != nil {
		return errExport.Wrap(err)
	}

	slog.InfoContext(
		ctx.Context,
		"exported history",
		slog.String("path", output),
		slog.Int("count", len(records)),
	)

	pterm.Success.Printfln("Exported %d sessions to %s", len(records), output)

	return nil
}

// clearHistoryAction handles the clear-history command which deletes every
// recorded session after asking for confirmation.
func clearHistoryAction(ctx *cli.Context) error {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	cleared, err := clearHistory(db, config.Stdin, config.Stdout, ctx.Bool("yes"))
	if err != nil {
		return err
	}

	if cleared {
		slog.InfoContext(ctx.Context, "history cleared")
		pterm.Success.Println("Session history cleared")
	}

	return nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// writes the defaults if the file does not exist yet
	_, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	if err = cmd.Run(); err != nil {
		return errEditor.Fmt(editor).Wrap(err)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HOWMUCH_NO_COLOR is set
	if _, exists := os.LookupEnv(envHowmuchNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting howmuch")

	return nil
}
