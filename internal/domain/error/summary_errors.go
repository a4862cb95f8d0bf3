// Package error defines domain-specific errors for the FinFlow application.
package error

import "errors"

// Summary domain errors.
var (
	// ErrInvalidSummaryRequest is returned when a compute request body cannot be read.
	ErrInvalidSummaryRequest = errors.New("invalid summary request")

	// ErrBatchTooLarge is returned when a compute request exceeds the batch limit.
	ErrBatchTooLarge = errors.New("transaction batch too large")

	// ErrTransactionStoreUnavailable is returned when transactions cannot be loaded.
	ErrTransactionStoreUnavailable = errors.New("transaction store unavailable")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSummaryRequest SummaryErrorCode = "SUM-010001"
	ErrCodeBatchTooLarge         SummaryErrorCode = "SUM-010002"

	// Upstream errors (02XXXX)
	ErrCodeTransactionStore SummaryErrorCode = "SUM-020001"

	// Internal errors (99XXXX)
	ErrCodeSummaryInternalError SummaryErrorCode = "SUM-990001"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
