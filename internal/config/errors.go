package config

import "github.com/rytavi/howmuch/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidGoal = &apperr.Error{
		Message: "goal must be between 0 and %s",
	}

	errInvalidResetThreshold = &apperr.Error{
		Message: "confirm_reset_above must not be negative, got %v",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errSoundNotFound = &apperr.Error{
		Message: "celebration sound not found: %s",
	}

	errInvalidCelebrationDuration = &apperr.Error{
		Message: "celebration duration must be between %v and %v",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period (one of %s)",
	}

	errInvalidDate = &apperr.Error{
		Message: "could not understand the date %q",
	}
)
