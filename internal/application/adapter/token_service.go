package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionClaims represents the identity carried by a verified session token.
type SessionClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// SessionVerifier validates session tokens issued by the external auth provider.
type SessionVerifier interface {
	// Verify validates a bearer token and returns its claims.
	Verify(ctx context.Context, token string) (*SessionClaims, error)
}
