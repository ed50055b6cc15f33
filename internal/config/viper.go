package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/wakelock"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyMode                 = "defaults.mode"
	keyRate                 = "defaults.rate"
	keyGoal                 = "defaults.goal"
	keyHoursPerDay          = "schedule.hours_per_day"
	keyDaysPerWeek          = "schedule.days_per_week"
	keyWeeksPerYear         = "schedule.weeks_per_year"
	keyUnpaidBreaks         = "settings.unpaid_breaks"
	keyConfirmResetAbove    = "settings.confirm_reset_above"
	keyWakeLockCmd          = "settings.wake_lock_cmd"
	keyShareCmd             = "settings.share_cmd"
	keyCelebrationSound     = "settings.celebration_sound"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyCelebrationDuration  = "display.celebration_duration"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values already set on
// the config, such as the answers to the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	schedule := earnings.DefaultSchedule()

	v.SetDefault(keyMode, string(earnings.Annual))
	v.SetDefault(keyRate, 0)
	v.SetDefault(keyGoal, 0)
	v.SetDefault(keyHoursPerDay, schedule.HoursPerDay)
	v.SetDefault(keyDaysPerWeek, schedule.DaysPerWeek)
	v.SetDefault(keyWeeksPerYear, schedule.WeeksPerYear)
	v.SetDefault(keyUnpaidBreaks, false)
	v.SetDefault(keyConfirmResetAbove, 10)
	v.SetDefault(keyWakeLockCmd, wakelock.DefaultCommand())
	v.SetDefault(keyShareCmd, "")
	v.SetDefault(keyCelebrationSound, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyCelebrationDuration, "5s")

	if c.Defaults.Mode != "" {
		v.Set(keyMode, string(c.Defaults.Mode))
	}

	if c.Defaults.Rate != 0 {
		v.Set(keyRate, c.Defaults.Rate)
	}

	if c.Defaults.Goal != 0 {
		v.Set(keyGoal, c.Defaults.Goal)
	}

	if c.Schedule != (earnings.Schedule{}) {
		v.Set(keyHoursPerDay, c.Schedule.HoursPerDay)
		v.Set(keyDaysPerWeek, c.Schedule.DaysPerWeek)
		v.Set(keyWeeksPerYear, c.Schedule.WeeksPerYear)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	mode, err := earnings.ParseMode(string(c.Defaults.Mode))
	if err != nil {
		return err
	}

	c.Defaults.Mode = mode

	return nil
}
