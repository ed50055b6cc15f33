package app

import "github.com/rytavi/howmuch/internal/apperr"

var (
	errMissingRate = &apperr.Error{
		Message: "no rate to work with: pass --rate or set defaults.rate in the config file",
	}

	errExport = &apperr.Error{
		Message: "unable to export the session history",
	}

	errEditor = &apperr.Error{
		Message: "unable to open the config file in %s",
	}
)
