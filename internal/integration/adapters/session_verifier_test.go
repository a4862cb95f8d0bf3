package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finflow/backend/internal/domain/error"
)

const testSecret = "provider-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims ProviderClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(subject string) ProviderClaims {
	now := time.Now()
	return ProviderClaims{
		Email: "user@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{"authenticated"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestSessionVerifier_Verify(t *testing.T) {
	verifier := NewSessionVerifier(testSecret, "authenticated", "")
	ctx := context.Background()
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims(userID.String()))

		claims, err := verifier.Verify(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.False(t, claims.ExpiresAt.IsZero())
	})

	t.Run("expired token", func(t *testing.T) {
		c := validClaims(userID.String())
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		_, err := verifier.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS256, c))

		assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		c := validClaims(userID.String())
		c.ExpiresAt = nil

		_, err := verifier.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS256, c))

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signToken(t, "other", jwt.SigningMethodHS256, validClaims(userID.String())))

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS512, validClaims(userID.String())))

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := validClaims(userID.String())
		c.Audience = jwt.ClaimStrings{"anon"}

		_, err := verifier.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS256, c))

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		_, err := verifier.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("service-role")))

		assert.ErrorIs(t, err, domainerror.ErrInvalidSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("audience check disabled", func(t *testing.T) {
		open := NewSessionVerifier(testSecret, "", "")
		c := validClaims(userID.String())
		c.Audience = nil

		claims, err := open.Verify(ctx, signToken(t, testSecret, jwt.SigningMethodHS256, c))

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})
}
