package history

import "github.com/rytavi/howmuch/internal/apperr"

var errExport = &apperr.Error{
	Message: "exporting session history failed",
}
