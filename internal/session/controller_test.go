package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rytavi/howmuch/internal/clock"
	"github.com/rytavi/howmuch/internal/earnings"
)

const moneyDelta = 1e-6

var epoch = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

// newTestController returns a controller paying $52,000 a year on the
// default schedule, i.e. $25 an hour.
func newTestController(t *testing.T, goal float64) (*Controller, *clock.Manual) {
	t.Helper()

	clk := clock.NewManual(epoch)

	ctrl := New(Settings{
		Rate:     earnings.Rate{Value: 52_000, Mode: earnings.Annual},
		Schedule: earnings.DefaultSchedule(),
		Goal:     goal,
	}, WithClock(clk))

	return ctrl, clk
}

func TestStartThenPause(t *testing.T) {
	ctrl, _ := newTestController(t, 0)

	s, err := ctrl.Start()
	require.NoError(t, err)
	assert.Equal(t, Running, s.Status)
	assert.Equal(t, epoch, s.StartTime)

	s, err = ctrl.Pause()
	require.NoError(t, err)

	assert.Equal(t, Paused, s.Status)
	assert.Zero(t, s.Elapsed)
	assert.Zero(t, s.Earnings)
	assert.True(t, s.StartTime.IsZero())
}

func TestStartRequiresValidRate(t *testing.T) {
	ctrl := New(Settings{})

	s, err := ctrl.Start()

	assert.ErrorIs(t, err, ErrInvalidRate)
	assert.Equal(t, Idle, s.Status)
}

func TestTickComputesEarnings(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	clk.Advance(time.Hour)

	s, cel := ctrl.Tick()

	assert.Nil(t, cel)
	assert.InDelta(t, 25.0, s.Earnings, moneyDelta)
	assert.Equal(t, time.Hour, s.TotalElapsed(clk.Now()))
}

func TestTickIgnoredWhenNotRunning(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	clk.Advance(time.Hour)

	s, cel := ctrl.Tick()

	assert.Nil(t, cel)
	assert.Zero(t, s.Earnings)
	assert.Equal(t, Idle, s.Status)
}

func TestPauseResumeIsAdditive(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	slices := []time.Duration{10 * time.Minute, 20 * time.Minute, 30 * time.Minute}

	var want time.Duration

	for _, d := range slices {
		_, err := ctrl.Start()
		require.NoError(t, err)

		clk.Advance(d)
		want += d

		_, err = ctrl.Pause()
		require.NoError(t, err)

		// time spent paused must not count
		clk.Advance(time.Hour)
	}

	s := ctrl.State()

	assert.Equal(t, want, s.Elapsed)
	assert.Equal(t, want, s.TotalElapsed(clk.Now()))
	assert.InDelta(t, 25.0, s.Earnings, moneyDelta)
}

func TestBreakExcludedFromWorkTime(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)

	s, err := ctrl.ToggleBreak()
	require.NoError(t, err)
	assert.True(t, s.OnBreak)

	clk.Advance(10 * time.Minute)

	s, err = ctrl.ToggleBreak()
	require.NoError(t, err)
	assert.False(t, s.OnBreak)
	assert.Equal(t, 10*time.Minute, s.BreakElapsed)

	clk.Advance(20 * time.Minute)

	_, rec := ctrl.Reset()
	require.NotNil(t, rec)

	assert.Equal(t, time.Hour, rec.TotalTime)
	assert.Equal(t, 10*time.Minute, rec.BreakTime)
	assert.Equal(t, 50*time.Minute, rec.WorkTime)
	assert.Equal(t, rec.TotalTime-rec.BreakTime, rec.WorkTime)
	// breaks are paid unless configured otherwise
	assert.InDelta(t, 25.0, rec.Earnings, moneyDelta)
}

func TestUnpaidBreaks(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.SetUnpaidBreaks(true)
	require.NoError(t, err)

	_, err = ctrl.Start()
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)

	_, err = ctrl.ToggleBreak()
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)

	s, _ := ctrl.Tick()
	assert.InDelta(t, 12.5, s.Earnings, moneyDelta)

	s, err = ctrl.Pause()
	require.NoError(t, err)

	assert.False(t, s.OnBreak)
	assert.Equal(t, 30*time.Minute, s.BreakElapsed)
	assert.InDelta(t, 12.5, s.Earnings, moneyDelta)
}

func TestBreakRequiresRunning(t *testing.T) {
	ctrl, _ := newTestController(t, 0)

	_, err := ctrl.ToggleBreak()
	assert.ErrorIs(t, err, ErrNotRunning)

	_, err = ctrl.Pause()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestResetWithoutTimeCreatesNoRecord(t *testing.T) {
	ctrl, _ := newTestController(t, 0)

	s, rec := ctrl.Reset()

	assert.Nil(t, rec)
	assert.Equal(t, Idle, s.Status)
	assert.Equal(t, 0, ctrl.History().Len())
}

func TestResetCreatesOneRecord(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	clk.Advance(90 * time.Minute)

	before, _ := ctrl.Tick()

	s, rec := ctrl.Reset()
	require.NotNil(t, rec)

	assert.Equal(t, 1, ctrl.History().Len())
	assert.Equal(t, *rec, ctrl.History().Records()[0])
	assert.InDelta(t, before.Earnings, rec.Earnings, moneyDelta)
	assert.Equal(t, before.TotalElapsed(clk.Now()), rec.TotalTime)
	assert.Equal(t, 52_000.0, rec.Rate)
	assert.Equal(t, earnings.Annual, rec.Mode)
	assert.Equal(t, clk.Now(), rec.Timestamp)

	assert.Equal(t, Idle, s.Status)
	assert.Zero(t, s.Elapsed)
	assert.Zero(t, s.BreakElapsed)
	assert.Zero(t, s.Earnings)
	assert.Zero(t, s.Celebrated)
	assert.False(t, s.OnBreak)

	// nothing left to record
	_, rec = ctrl.Reset()
	assert.Nil(t, rec)
	assert.Equal(t, 1, ctrl.History().Len())
}

func TestResetDuringBreak(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	_, err = ctrl.ToggleBreak()
	require.NoError(t, err)

	clk.Advance(15 * time.Minute)

	_, rec := ctrl.Reset()
	require.NotNil(t, rec)

	assert.Equal(t, 15*time.Minute, rec.BreakTime)
	assert.Zero(t, rec.WorkTime)
}

func TestMilestonesFireOncePerSession(t *testing.T) {
	ctrl, clk := newTestController(t, 40)

	_, err := ctrl.Start()
	require.NoError(t, err)

	// $60 at $25/h jumps over 10, 25, 40 and 50 at once
	clk.Advance(144 * time.Minute)

	var fired []Celebration

	for range 6 {
		if _, cel := ctrl.Tick(); cel != nil {
			fired = append(fired, *cel)
		}
	}

	assert.Equal(t, []Celebration{
		{Amount: 10},
		{Amount: 25},
		{Amount: 40, Goal: true},
		{Amount: 50},
	}, fired)

	// a new session celebrates again
	ctrl.Reset()

	_, err = ctrl.Start()
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)

	_, cel := ctrl.Tick()
	require.NotNil(t, cel)
	assert.Equal(t, 10.0, cel.Amount)
}

func TestNoMilestonesWithoutGoal(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	clk.Advance(3 * time.Hour)

	_, cel := ctrl.Tick()
	assert.Nil(t, cel)
}

func TestSettersRefusedWhileRunning(t *testing.T) {
	ctrl, _ := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	_, err = ctrl.SetRate(earnings.Rate{Value: 20, Mode: earnings.Hourly})
	assert.ErrorIs(t, err, ErrRunning)

	_, err = ctrl.SetSchedule(earnings.Schedule{HoursPerDay: 4, DaysPerWeek: 5, WeeksPerYear: 52})
	assert.ErrorIs(t, err, ErrRunning)

	s, err := ctrl.SetUnpaidBreaks(true)
	assert.ErrorIs(t, err, ErrRunning)
	assert.False(t, s.UnpaidBreaks)

	s, err = ctrl.SetGoal(100)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, s.Goal)

	_, err = ctrl.SetGoal(-1)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestSetRateWhilePausedRebasesEarnings(t *testing.T) {
	ctrl, clk := newTestController(t, 0)

	_, err := ctrl.Start()
	require.NoError(t, err)

	clk.Advance(time.Hour)

	s, err := ctrl.Pause()
	require.NoError(t, err)
	assert.InDelta(t, 25.0, s.Earnings, moneyDelta)

	s, err = ctrl.SetRate(earnings.Rate{Value: 20, Mode: earnings.Hourly})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, s.Earnings, moneyDelta)

	_, err = ctrl.SetRate(earnings.Rate{Value: 0, Mode: earnings.Hourly})
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestSubscribersReceiveCommittedStates(t *testing.T) {
	ctrl, _ := newTestController(t, 0)

	var got []Status

	unsubscribe := ctrl.Subscribe(func(s State) {
		got = append(got, s.Status)
	})

	_, _ = ctrl.Start()
	_, _ = ctrl.Pause()
	_, _ = ctrl.Pause() // refused, not committed

	unsubscribe()

	_, _ = ctrl.Reset()

	assert.Equal(t, []Status{Running, Paused}, got)
}

func TestProgress(t *testing.T) {
	s := State{Earnings: 25, Goal: 100}
	assert.InDelta(t, 25.0, s.Progress(), moneyDelta)

	s.Earnings = 150
	assert.InDelta(t, 100.0, s.Progress(), moneyDelta)

	s.Goal = 0
	assert.Zero(t, s.Progress())
}
