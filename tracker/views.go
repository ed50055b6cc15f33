package tracker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/session"
	"github.com/rytavi/howmuch/internal/timeutil"
)

// historyRows is the number of sessions listed in the history dialog.
const historyRows = 10

// View satisfies tea.Model.
func (t *Tracker) View() string {
	var view string

	switch t.dialog {
	case summaryDialog:
		view = t.summaryView()
	case shortcutsDialog:
		view = t.shortcutsView()
	case settingsDialog:
		view = t.settingsView()
	case historyDialog:
		view = t.historyView()
	case confirmResetDialog:
		view = t.confirmView(
			fmt.Sprintf(
				"Reset the timer? You have made %s this session.",
				earnings.FormatMoney(t.state.Earnings),
			),
		)
	case confirmClearDialog:
		view = t.confirmView(
			fmt.Sprintf("Delete all %d saved sessions?", t.ctrl.History().Len()),
		)
	default:
		view = t.timerView()
	}

	return t.style.Base.Render(view + t.statusView())
}

func (t *Tracker) timerView() string {
	var s strings.Builder

	now := t.ctrl.Now()

	s.WriteString(t.style.Title.Render(appTitle))
	s.WriteString("  ")
	s.WriteString(t.statusLabel())
	s.WriteString("\n\n")

	if t.celebration != nil {
		s.WriteString(t.style.Success.Render("🎉 " + t.celebration.Message()))
		s.WriteString("\n\n")
	}

	s.WriteString(t.style.Money.Render(earnings.FormatMoney(t.display.Value())))
	s.WriteString("\n\n")

	s.WriteString(t.style.Secondary.Render(rateLine(t.state)))
	s.WriteString("\n")
	s.WriteString(t.style.Hint.Render(fmt.Sprintf(
		"Total %s · Work %s · Break %s",
		timeutil.Clock(t.state.TotalElapsed(now)),
		timeutil.Clock(t.state.WorkTime(now)),
		timeutil.Clock(t.state.TotalBreak(now)),
	)))

	if t.state.Goal > 0 {
		s.WriteString("\n\n")
		s.WriteString(t.progress.View())
		s.WriteString(t.style.Hint.Render(fmt.Sprintf(
			"  %.0f%% of %s",
			t.state.Progress(),
			earnings.FormatMoney(t.state.Goal),
		)))
	}

	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView(defaultKeymap.ShortHelp()))

	return s.String()
}

func (t *Tracker) statusLabel() string {
	switch {
	case t.state.OnBreak:
		return t.style.Break.Render("[On break]")
	case t.state.Status == session.Running:
		return t.style.Success.Render("[Running]")
	case t.state.Status == session.Paused:
		return t.style.Secondary.Render("[Paused]")
	default:
		return t.style.Hint.Render("[Idle]")
	}
}

// rateLine describes the current rate, or asks for one.
func rateLine(s session.State) string {
	if !s.Rate.Valid() {
		return "Press o to enter your salary or hourly rate"
	}

	annual := s.Rate.Annual(s.Schedule)

	return fmt.Sprintf(
		"%s/yr · %s/hr · %s/min",
		earnings.FormatMoney(annual),
		earnings.FormatMoney(earnings.HourlyRate(annual, s.Schedule)),
		earnings.FormatMoney(s.PerMinute()),
	)
}

func (t *Tracker) statusView() string {
	if t.status == "" {
		return ""
	}

	if t.statusErr {
		return "\n\n" + t.style.Error.Render(t.status)
	}

	return "\n\n" + t.style.Success.Render(t.status)
}

func (t *Tracker) summaryView() string {
	var s strings.Builder

	rec := t.summary

	s.WriteString(t.style.Title.Render("Session complete"))
	s.WriteString("\n\n")

	if rec != nil {
		s.WriteString(t.style.Money.Render(earnings.FormatMoney(rec.Earnings)))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf(
			"Work time:  %s\nBreak time: %s\nTotal time: %s",
			timeutil.Clock(rec.WorkTime),
			timeutil.Clock(rec.BreakTime),
			timeutil.Clock(rec.TotalTime),
		))
	}

	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{defaultKeymap.esc}))

	return t.style.Dialog.Render(s.String())
}

func (t *Tracker) shortcutsView() string {
	var s strings.Builder

	s.WriteString(t.style.Title.Render("Keyboard shortcuts"))
	s.WriteString("\n\n")
	s.WriteString(t.help.FullHelpView(defaultKeymap.FullHelp()))

	return t.style.Dialog.Render(s.String())
}

func (t *Tracker) settingsView() string {
	if t.form == nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.style.Title.Render("Settings"))

	if t.formValues != nil && t.formValues.goalOnly {
		s.WriteString("\n")
		s.WriteString(t.style.Hint.Render("Pause the timer to change the rate or schedule"))
	}

	s.WriteString("\n\n")
	s.WriteString(t.form.View())
	s.WriteString("\n")

	if t.state.Rate.Valid() {
		s.WriteString(t.breakdownView())
		s.WriteString("\n\n")
	}

	s.WriteString(t.help.ShortHelpView([]key.Binding{defaultKeymap.esc}))

	return t.style.Dialog.Render(s.String())
}

// breakdownView lists what the current rate is worth over each period.
func (t *Tracker) breakdownView() string {
	rows := earnings.NewBreakdown(t.state.Rate, t.state.Schedule).Rows()

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = t.style.Secondary.Render(fmt.Sprintf("%-11s %s", row[0], row[1]))
	}

	return strings.Join(lines, "\n")
}

func (t *Tracker) historyView() string {
	var s strings.Builder

	records := t.ctrl.History().Records()

	s.WriteString(t.style.Title.Render("History"))
	s.WriteString("\n\n")

	if len(records) == 0 {
		s.WriteString(t.style.Hint.Render("No sessions yet"))
	} else {
		summary := history.Summarise(records)

		s.WriteString(fmt.Sprintf(
			"%d sessions · $%s earned · $%s/hr effective",
			summary.Count,
			summary.Earnings.StringFixed(2),
			summary.EffectiveHourly.StringFixed(2),
		))
		s.WriteString("\n\n")

		for i, r := range records {
			if i == historyRows {
				s.WriteString(t.style.Hint.Render(
					fmt.Sprintf("… and %d more", len(records)-historyRows),
				))

				break
			}

			s.WriteString(fmt.Sprintf(
				"%s  %12s  %s\n",
				r.Timestamp.Local().Format("Jan 02 15:04"),
				earnings.FormatMoney(r.Earnings),
				t.style.Hint.Render(timeutil.Clock(r.TotalTime)),
			))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.clear,
		defaultKeymap.export,
		defaultKeymap.esc,
	}))

	return t.style.Dialog.Render(s.String())
}

func (t *Tracker) confirmView(question string) string {
	var s strings.Builder

	s.WriteString(t.style.Main.Render(question))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.confirm,
		defaultKeymap.cancel,
	}))

	return t.style.Dialog.Render(s.String())
}
