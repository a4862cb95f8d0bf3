// Package ingestion contains statement upload and forecast use cases.
package ingestion

import (
	"context"
	"errors"
	"strings"
	"time"

	domainerror "github.com/finflow/backend/internal/domain/error"
)

// Error code constants for failed ingestion jobs.
const (
	ErrCodeServiceUnavailable = "INGESTION_UNAVAILABLE"
	ErrCodeTimeout            = "INGESTION_TIMEOUT"
	ErrCodeRejected           = "INGESTION_REJECTED"
	ErrCodeUnknown            = "INGESTION_UNKNOWN_ERROR"
)

// errorMessages contains the user-facing message for each error code.
var errorMessages = map[string]string{
	ErrCodeServiceUnavailable: "The statement service is temporarily unavailable. Please try again later.",
	ErrCodeTimeout:            "Processing took longer than expected. Please try again.",
	ErrCodeRejected:           "The statement service could not process this request. Check the file and try again.",
	ErrCodeUnknown:            "An unexpected error occurred while processing. Please try again.",
}

// ProcessingError describes the last failed ingestion job of a user.
type ProcessingError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// classifyError converts an ingestion failure to a ProcessingError.
func classifyError(err error) *ProcessingError {
	now := time.Now()
	newError := func(code string, retryable bool) *ProcessingError {
		return &ProcessingError{
			Code:      code,
			Message:   errorMessages[code],
			Retryable: retryable,
			Timestamp: now,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newError(ErrCodeTimeout, true)
	}
	if errors.Is(err, domainerror.ErrIngestionRejected) {
		return newError(ErrCodeRejected, false)
	}
	if errors.Is(err, domainerror.ErrIngestionUnavailable) {
		return newError(ErrCodeServiceUnavailable, true)
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "dial") ||
		strings.Contains(errStr, "timeout") || strings.Contains(errStr, "503") {
		return newError(ErrCodeServiceUnavailable, true)
	}

	return newError(ErrCodeUnknown, true)
}
