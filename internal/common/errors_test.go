package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapsCause(t *testing.T) {
	err := NewAppError("STORE_ERROR", "save failed", ErrStoreBusy)

	assert.EqualError(t, err, "STORE_ERROR: save failed: ledger store busy")
	assert.True(t, errors.Is(err, ErrStoreBusy))
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "LEDGER_PATH is required", nil)

	assert.EqualError(t, err, "CONFIG_ERROR: LEDGER_PATH is required")
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))
	assert.EqualError(t, WrapError(ErrInvalidInput, "loading config"), "loading config: invalid input")
}
