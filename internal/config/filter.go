package config

import (
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/rytavi/howmuch/internal/timeutil"
)

// FilterConfig selects the history records to show or export by the time
// the session ended.
type FilterConfig struct {
	Since time.Time
	Until time.Time
}

// FilterOptions are the raw filter flags.
type FilterOptions struct {
	Period string
	Since  string
	Until  string
}

// Filter returns a configuration to filter history records from
// command-line arguments.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	opts := FilterOptions{
		Period: ctx.String("period"),
		Since:  ctx.String("since"),
		Until:  ctx.String("until"),
	}

	return newFilter(opts, time.Now())
}

func newFilter(opts FilterOptions, now time.Time) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	period := timeutil.Period(strings.TrimSpace(opts.Period))

	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			names := make([]string, len(timeutil.PeriodCollection))
			for i, p := range timeutil.PeriodCollection {
				names[i] = string(p)
			}

			return nil, errInvalidPeriod.Fmt(strings.Join(names, ", "))
		}

		filterCfg.Since, filterCfg.Until = timeutil.TimeRange(period, now)

		return filterCfg, nil
	}

	var err error

	if opts.Since != "" {
		filterCfg.Since, err = parseDate(opts.Since, now)
		if err != nil {
			return nil, err
		}
	}

	if opts.Until != "" {
		filterCfg.Until, err = parseDate(opts.Until, now)
		if err != nil {
			return nil, err
		}
	}

	if !filterCfg.Since.IsZero() && !filterCfg.Until.IsZero() &&
		filterCfg.Until.Before(filterCfg.Since) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

// parseDate understands absolute dates as well as relative ones such as
// "yesterday" or "2 weeks ago".
func parseDate(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	date, err := dateparser.Parse(cfg, s)
	if err != nil || date.Time.IsZero() {
		return time.Time{}, errInvalidDate.Fmt(s)
	}

	return date.Time, nil
}
