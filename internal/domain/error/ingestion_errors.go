// Package error defines domain-specific errors for the FinFlow application.
package error

import "errors"

// Ingestion domain errors.
var (
	// ErrMissingStatementFile is returned when no file is attached to an upload.
	ErrMissingStatementFile = errors.New("statement file is required")

	// ErrUnsupportedStatementType is returned for files other than PDF or CSV.
	ErrUnsupportedStatementType = errors.New("statement must be a PDF or CSV file")

	// ErrStatementTooLarge is returned when the file exceeds the upload limit.
	ErrStatementTooLarge = errors.New("statement file too large")

	// ErrInvalidMonthlyIncome is returned when a forecast request has a bad income.
	ErrInvalidMonthlyIncome = errors.New("monthly income must be a non-negative number")

	// ErrIngestionUnavailable is returned when the ingestion service cannot be reached.
	ErrIngestionUnavailable = errors.New("ingestion service unavailable")

	// ErrIngestionRejected is returned when the ingestion service reports a failure.
	ErrIngestionRejected = errors.New("ingestion service rejected the request")
)

// IngestionErrorCode defines error codes for ingestion errors.
// Format: ING-XXYYYY where XX is category and YYYY is specific error.
type IngestionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStatementFile     IngestionErrorCode = "ING-010001"
	ErrCodeUnsupportedStatementType IngestionErrorCode = "ING-010002"
	ErrCodeStatementTooLarge        IngestionErrorCode = "ING-010003"
	ErrCodeInvalidMonthlyIncome     IngestionErrorCode = "ING-010004"
	ErrCodeInvalidForecastRequest   IngestionErrorCode = "ING-010005"

	// Upstream errors (02XXXX)
	ErrCodeIngestionUnavailable IngestionErrorCode = "ING-020001"
	ErrCodeIngestionRejected    IngestionErrorCode = "ING-020002"
)

// IngestionError represents an ingestion error with code and message.
type IngestionError struct {
	Code    IngestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IngestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IngestionError) Unwrap() error {
	return e.Err
}

// NewIngestionError creates a new IngestionError with the given code and message.
func NewIngestionError(code IngestionErrorCode, message string, err error) *IngestionError {
	return &IngestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrIngestionInProgress is returned when the user already has an ingestion job running.
var ErrIngestionInProgress = errors.New("an ingestion job is already running for this user")

// ErrCodeIngestionInProgress marks a rejected concurrent ingestion job.
const ErrCodeIngestionInProgress IngestionErrorCode = "ING-030001"
