package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rytavi/howmuch/internal/config"
	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/models"
	"github.com/rytavi/howmuch/internal/wakelock"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Defaults: config.DefaultsConfig{
			Mode: earnings.Annual,
		},
		Schedule: earnings.DefaultSchedule(),
		Settings: config.SettingsConfig{
			ConfirmResetAbove: 10,
			WakeLockCmd:       wakelock.DefaultCommand(),
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			CelebrationDuration: 5 * time.Second,
			DarkTheme:           true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config should be written")

	// reading the written file yields the same values
	again, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(`defaults:
  mode: hourly
  rate: 42.5
  goal: 200
schedule:
  hours_per_day: 6
  days_per_week: 4
  weeks_per_year: 48
settings:
  unpaid_breaks: true
  confirm_reset_above: 25
  wake_lock_cmd: ""
  share_cmd: wl-copy
notifications:
  enabled: false
display:
  dark_theme: false
  celebration_duration: 3s
`), 0o600)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := &config.Config{
		Defaults: config.DefaultsConfig{
			Mode: earnings.Hourly,
			Rate: 42.5,
			Goal: 200,
		},
		Schedule: earnings.Schedule{
			HoursPerDay:  6,
			DaysPerWeek:  4,
			WeeksPerYear: 48,
		},
		Settings: config.SettingsConfig{
			UnpaidBreaks:      true,
			ConfirmResetAbove: 25,
			ShareCmd:          "wl-copy",
		},
		Display: config.DisplayConfig{
			CelebrationDuration: 3 * time.Second,
		},
	}

	assert.Equal(t, want, cfg)
}

func TestViperRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		Name string
		YAML string
	}{
		{
			Name: "unknown mode",
			YAML: "defaults:\n  mode: weekly\n",
		},
		{
			Name: "rate too high",
			YAML: "defaults:\n  rate: 20000000\n",
		},
		{
			Name: "too many days",
			YAML: "schedule:\n  days_per_week: 8\n",
		},
		{
			Name: "negative reset threshold",
			YAML: "settings:\n  confirm_reset_above: -1\n",
		},
		{
			Name: "unsupported sound",
			YAML: "settings:\n  celebration_sound: tada.aiff\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.YAML), 0o600)
			require.NoError(t, err)

			_, err = config.New(config.WithViperConfig(configPath))
			assert.Error(t, err)
		})
	}
}

func TestPreferences(t *testing.T) {
	cfg := defaultConfig()
	cfg.Defaults.Rate = 60_000
	cfg.Defaults.Goal = 100

	t.Run("first run uses configured defaults", func(t *testing.T) {
		p := cfg.Preferences(models.Preferences{})

		assert.Equal(t, 60_000.0, p.Rate)
		assert.Equal(t, earnings.Annual, p.Mode)
		assert.Equal(t, 100.0, p.Goal)
		assert.True(t, p.DarkMode)
		assert.Equal(t, earnings.DefaultSchedule(), p.Schedule)
	})

	t.Run("stored preferences win over defaults", func(t *testing.T) {
		stored := models.Preferences{
			Mode:     earnings.Hourly,
			Rate:     30,
			Schedule: earnings.Schedule{HoursPerDay: 4, DaysPerWeek: 5, WeeksPerYear: 52},
		}

		p := cfg.Preferences(stored)

		assert.Equal(t, stored, p)
	})

	t.Run("flags win over everything", func(t *testing.T) {
		withFlags := *cfg
		withFlags.CLI = config.CLIConfig{
			Rate:     45,
			Mode:     earnings.Hourly,
			Schedule: earnings.Schedule{DaysPerWeek: 4},
		}

		p := withFlags.Preferences(models.Preferences{
			Mode:     earnings.Annual,
			Rate:     80_000,
			Schedule: earnings.DefaultSchedule(),
		})

		assert.Equal(t, 45.0, p.Rate)
		assert.Equal(t, earnings.Hourly, p.Mode)
		assert.Equal(t, 4, p.Schedule.DaysPerWeek)
		assert.Equal(t, 8.0, p.Schedule.HoursPerDay)
	})
}

func TestWakeLockCmd(t *testing.T) {
	cfg := defaultConfig()
	cfg.Settings.WakeLockCmd = "caffeinate -d"

	assert.Equal(t, "caffeinate -d", cfg.WakeLockCmd())

	cfg.CLI.NoWakeLock = true

	assert.Empty(t, cfg.WakeLockCmd())
}

func TestParseGoal(t *testing.T) {
	goal, err := config.ParseGoal(" $1,500 ")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, goal)

	goal, err = config.ParseGoal("")
	require.NoError(t, err)
	assert.Zero(t, goal)

	_, err = config.ParseGoal("-5")
	assert.Error(t, err)
}
