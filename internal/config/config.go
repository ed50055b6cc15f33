// Package config loads howmuch settings from the config file, the command
// line and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rytavi/howmuch/internal/earnings"
	"github.com/rytavi/howmuch/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		Defaults      DefaultsConfig     `mapstructure:"defaults"`
		Schedule      earnings.Schedule  `mapstructure:"schedule"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// DefaultsConfig holds the inputs used until the user picks their own
	DefaultsConfig struct {
		Mode earnings.Mode `mapstructure:"mode"`
		Rate float64       `mapstructure:"rate"`
		Goal float64       `mapstructure:"goal"`
	}

	// SettingsConfig holds timer behaviour settings
	SettingsConfig struct {
		WakeLockCmd       string  `mapstructure:"wake_lock_cmd"`
		ShareCmd          string  `mapstructure:"share_cmd"`
		CelebrationSound  string  `mapstructure:"celebration_sound"`
		ConfirmResetAbove float64 `mapstructure:"confirm_reset_above"`
		UnpaidBreaks      bool    `mapstructure:"unpaid_breaks"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		CelebrationDuration time.Duration `mapstructure:"celebration_duration"`
		DarkTheme           bool          `mapstructure:"dark_theme"`
	}

	// CLIConfig holds values that only come from command-line flags.
	// Zero values mean the flag was not provided.
	CLIConfig struct {
		Mode       earnings.Mode
		Schedule   earnings.Schedule
		Rate       float64
		Goal       float64
		NoWakeLock bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Preferences combines the stored preferences with the configuration.
// The configured defaults apply only when nothing has been stored yet, and
// command-line values override both.
func (c *Config) Preferences(stored models.Preferences) models.Preferences {
	p := stored

	if p.Rate == 0 && p.Mode == "" {
		p.Rate = c.Defaults.Rate
		p.Mode = c.Defaults.Mode
		p.Goal = c.Defaults.Goal
		p.DarkMode = c.Display.DarkTheme
	}

	if p.Mode == "" {
		p.Mode = earnings.Annual
	}

	if p.Schedule == (earnings.Schedule{}) {
		p.Schedule = c.Schedule
	}

	if c.CLI.Rate != 0 {
		p.Rate = c.CLI.Rate
	}

	if c.CLI.Mode != "" {
		p.Mode = c.CLI.Mode
	}

	if c.CLI.Goal != 0 {
		p.Goal = c.CLI.Goal
	}

	if c.CLI.Schedule.HoursPerDay != 0 {
		p.Schedule.HoursPerDay = c.CLI.Schedule.HoursPerDay
	}

	if c.CLI.Schedule.DaysPerWeek != 0 {
		p.Schedule.DaysPerWeek = c.CLI.Schedule.DaysPerWeek
	}

	if c.CLI.Schedule.WeeksPerYear != 0 {
		p.Schedule.WeeksPerYear = c.CLI.Schedule.WeeksPerYear
	}

	return p
}

// WakeLockCmd returns the command that holds the wake lock, or an empty
// string when the wake lock is disabled.
func (c *Config) WakeLockCmd() string {
	if c.CLI.NoWakeLock {
		return ""
	}

	return c.Settings.WakeLockCmd
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"mode=%s rate=%.2f goal=%.2f schedule=%+v settings=%+v notifications=%t",
		c.Defaults.Mode,
		c.Defaults.Rate,
		c.Defaults.Goal,
		c.Schedule,
		c.Settings,
		c.Notifications.Enabled,
	)
}
