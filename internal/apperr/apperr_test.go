package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rytavi/howmuch/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "value must be between %d and %d",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTemplate.Fmt(1, 7)

	assert.Equal(t, "value must be between 1 and 7", err.Error())
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrap(t *testing.T) {
	err := errTemplate.Fmt(1, 24).Wrap(io.EOF)

	assert.Equal(t, "value must be between 1 and 24: EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errTemplate)
}

func TestDistinctTemplates(t *testing.T) {
	other := &apperr.Error{Message: "something else"}

	assert.False(t, errors.Is(errTemplate.Fmt(1, 2), other))
}
