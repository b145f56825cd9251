package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataValidationError(t *testing.T) {
	plain := NewDataValidationError("update called with empty id field")
	assert.Equal(t, "update called with empty id field", plain.Error())
	assert.Nil(t, plain.Unwrap())

	cause := errors.New("duplicate key value violates unique constraint")
	wrapped := WrapDataValidationError("create rejected by storage", cause)
	assert.Equal(t, "create rejected by storage: duplicate key value violates unique constraint", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsDataValidationError(t *testing.T) {
	require.True(t, IsDataValidationError(NewDataValidationError("boom")))

	// Detection survives further wrapping by callers.
	nested := fmt.Errorf("saving product: %w", NewDataValidationError("boom"))
	require.True(t, IsDataValidationError(nested))

	require.False(t, IsDataValidationError(errors.New("boom")))
	require.False(t, IsDataValidationError(nil))
}
