// Package error defines domain-specific errors for the FinFlow application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidToken is returned when a session token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a session token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidSubject is returned when the token subject is not a user ID.
	ErrInvalidSubject = errors.New("token subject is not a valid user id")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Request errors (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)
