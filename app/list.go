package app

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/rytavi/howmuch/history"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/timeutil"
	"github.com/rytavi/howmuch/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	dateLayout    = "Jan 02, 2006 03:04 PM"
)

// printHistoryTable prints a table of records to w.
func printHistoryTable(w io.Writer, records []history.Record) {
	tableBody := make([][]string, len(records))

	for i := range records {
		rec := records[i]

		rate := earnings.FormatMoney(rec.Rate) + "/yr"
		if rec.Mode == earnings.Hourly {
			rate = earnings.FormatMoney(rec.Rate) + "/hr"
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			rec.Timestamp.Local().Format(dateLayout),
			ui.Green(earnings.FormatMoney(rec.Earnings)),
			timeutil.Clock(rec.WorkTime),
			timeutil.Clock(rec.BreakTime),
			timeutil.Clock(rec.TotalTime),
			rate,
		}
	}

	tableBody = append([][]string{
		{"#", "ENDED", "EARNED", "WORK", "BREAK", "TOTAL", "RATE"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printSummary prints the totals of a set of records.
func printSummary(w io.Writer, s history.Summary) {
	earned, _ := s.Earnings.Float64()
	hourly, _ := s.EffectiveHourly.Float64()

	fmt.Fprintf(
		w,
		"%s %s across %s %s (%s worked, %s on break, %s/hr effective)\n",
		ui.Highlight("Total:"),
		ui.Green(earnings.FormatMoney(earned)),
		humanize.Comma(int64(s.Count)),
		sessionNoun(s.Count),
		timeutil.Clock(s.WorkTime),
		timeutil.Clock(s.BreakTime),
		earnings.FormatMoney(hourly),
	)
}

func sessionNoun(n int) string {
	if n == 1 {
		return "session"
	}

	return "sessions"
}
