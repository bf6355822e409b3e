package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title   *string `validate:"required"`
	DueDate *int64  `validate:"required"`
}

func TestStructRequiresPresence(t *testing.T) {
	title := ""
	var due int64

	err := Struct(sample{Title: &title, DueDate: &due})
	assert.NoError(t, err, "empty but present values pass")

	err = Struct(sample{Title: &title})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "due_date is required", FormatValidationError(err))

	err = Struct(sample{})
	require.Error(t, err)
	assert.Equal(t, "title is required; due_date is required", FormatValidationError(err))
}

func TestFormatValidationErrorPassesThroughOtherErrors(t *testing.T) {
	err := errors.New("unexpected EOF")
	assert.False(t, IsValidationError(err))
	assert.Equal(t, "unexpected EOF", FormatValidationError(err))
}
