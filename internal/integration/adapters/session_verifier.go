// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// ProviderClaims represents the claims of a session token issued by the auth provider.
// The subject carries the user ID.
type ProviderClaims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// sessionVerifier implements the adapter.SessionVerifier interface for HS256 provider tokens.
type sessionVerifier struct {
	secret   []byte
	audience string
	issuer   string
}

// NewSessionVerifier creates a new session verifier. Empty audience or issuer disables that check.
func NewSessionVerifier(secret, audience, issuer string) adapter.SessionVerifier {
	return &sessionVerifier{
		secret:   []byte(secret),
		audience: audience,
		issuer:   issuer,
	}
}

// Verify validates a session token and returns its claims.
func (v *sessionVerifier) Verify(_ context.Context, token string) (*adapter.SessionClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &ProviderClaims{}, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*ProviderClaims)
	if !ok || !parsed.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerror.ErrInvalidSubject
	}

	return &adapter.SessionClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
