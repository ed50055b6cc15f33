package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rytavi/howmuch/internal/earnings"
)

var (
	minCelebrationDuration = 1 * time.Second
	maxCelebrationDuration = 1 * time.Minute

	soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}

	if err := c.Schedule.Validate(); err != nil {
		return err
	}

	return c.validateSettings()
}

func (c *Config) validateDefaults() error {
	if _, err := earnings.ParseMode(string(c.Defaults.Mode)); err != nil {
		return err
	}

	// zero means no default rate
	if c.Defaults.Rate != 0 {
		if c.Defaults.Rate < earnings.MinRate {
			return earnings.ErrRateTooLow.Fmt(earnings.MinRate)
		}

		if c.Defaults.Rate > earnings.MaxRate {
			return earnings.ErrRateTooHigh.Fmt(humanize.Comma(earnings.MaxRate))
		}
	}

	if c.Defaults.Goal < 0 || c.Defaults.Goal > earnings.MaxRate {
		return errInvalidGoal.Fmt(humanize.Comma(earnings.MaxRate))
	}

	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.ConfirmResetAbove < 0 {
		return errInvalidResetThreshold.Fmt(c.Settings.ConfirmResetAbove)
	}

	if c.Display.CelebrationDuration < minCelebrationDuration ||
		c.Display.CelebrationDuration > maxCelebrationDuration {
		return errInvalidCelebrationDuration.Fmt(
			minCelebrationDuration,
			maxCelebrationDuration,
		)
	}

	if c.Settings.CelebrationSound != "" {
		return validateSound(c.Settings.CelebrationSound)
	}

	return nil
}

// validateSound checks that a custom sound file exists and can be decoded.
func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))

	if !slices.Contains(soundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errSoundNotFound.Fmt(sound)
	}

	return err
}
