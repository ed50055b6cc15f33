package history

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rytavi/howmuch/internal/timeutil"
)

const (
	exportDateFormat = "2006-01-02 15:04:05"
	exportFilePrefix = "earnings-history-"
)

var exportHeader = []string{
	"Date",
	"Earnings",
	"Work Time",
	"Break Time",
	"Total Time",
	"Rate",
	"Mode",
}

// ExportFileName returns the default name of an export written at now.
func ExportFileName(now time.Time) string {
	return exportFilePrefix + now.Format(time.DateOnly) + ".csv"
}

// ExportCSV writes records as comma separated rows preceded by a header.
func ExportCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return errExport.Wrap(err)
	}

	for _, r := range records {
		row := []string{
			r.Timestamp.Format(exportDateFormat),
			decimal.NewFromFloat(r.Earnings).StringFixed(2),
			timeutil.Clock(r.WorkTime),
			timeutil.Clock(r.BreakTime),
			timeutil.Clock(r.TotalTime),
			decimal.NewFromFloat(r.Rate).StringFixed(2),
			string(r.Mode),
		}

		if err := cw.Write(row); err != nil {
			return errExport.Wrap(err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return errExport.Wrap(err)
	}

	return nil
}

// ExportCSV writes every record in the history.
func (h *History) ExportCSV(w io.Writer) error {
	return ExportCSV(w, h.records)
}
