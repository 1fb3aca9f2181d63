package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrNoInvoiceNumber means the document yielded no candidate invoice-number
	// token; it is rejected and left in the input directory.
	ErrNoInvoiceNumber = errors.New("no invoice number found")

	// ErrStoreBusy means the ledger file stayed locked by another process for
	// the whole retry window.
	ErrStoreBusy = errors.New("ledger store busy")

	// ErrStoreCorrupt means the persisted ledger was unreadable or carried a
	// mismatched header. Recovered internally by resetting to an empty ledger.
	ErrStoreCorrupt = errors.New("ledger store corrupt")

	// ErrConversionFailed means text conversion produced nothing usable.
	// Downgraded to empty text at the pipeline boundary.
	ErrConversionFailed = errors.New("document conversion failed")

	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
