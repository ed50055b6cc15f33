package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func TestFilterPeriod(t *testing.T) {
	cfg, err := newFilter(FilterOptions{Period: "yesterday"}, filterNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), cfg.Since)
	assert.Equal(t, 9, cfg.Until.Day())
}

func TestFilterPeriodTakesPrecedence(t *testing.T) {
	cfg, err := newFilter(FilterOptions{
		Period: "all-time",
		Since:  "2024-03-01",
	}, filterNow)
	require.NoError(t, err)

	assert.True(t, cfg.Since.IsZero())
}

func TestFilterInvalidPeriod(t *testing.T) {
	_, err := newFilter(FilterOptions{Period: "fortnight"}, filterNow)

	assert.ErrorIs(t, err, errInvalidPeriod)
	assert.ErrorContains(t, err, "7days")
}

func TestFilterDates(t *testing.T) {
	cfg, err := newFilter(FilterOptions{
		Since: "2024-03-01",
		Until: "2024-03-05",
	}, filterNow)
	require.NoError(t, err)

	assert.Equal(t, 2024, cfg.Since.Year())
	assert.Equal(t, time.March, cfg.Since.Month())
	assert.Equal(t, 1, cfg.Since.Day())
	assert.Equal(t, 5, cfg.Until.Day())
}

func TestFilterOpenEnded(t *testing.T) {
	cfg, err := newFilter(FilterOptions{}, filterNow)
	require.NoError(t, err)

	assert.True(t, cfg.Since.IsZero())
	assert.True(t, cfg.Until.IsZero())
}

func TestFilterRejectsReversedRange(t *testing.T) {
	_, err := newFilter(FilterOptions{
		Since: "2024-03-05",
		Until: "2024-03-01",
	}, filterNow)

	assert.ErrorIs(t, err, errInvalidDateRange)
}
