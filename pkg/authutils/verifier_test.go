package authutils_test

import (
	"context"
	"testing"
	"time"

	"gameforge/internal/models"
	"gameforge/pkg/authutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "unit-test-secret"

func TestVerifyToken(t *testing.T) {
	verifier, err := authutils.NewJWTVerifier(secret, zap.NewNop())
	require.NoError(t, err)
	userID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		token, err := authutils.GenerateTestToken(userID, secret, time.Hour)
		require.NoError(t, err)
		claims, err := verifier.VerifyToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := authutils.GenerateTestToken(userID, secret, -time.Minute)
		require.NoError(t, err)
		_, err = verifier.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, models.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := authutils.GenerateTestToken(userID, "other-secret", time.Hour)
		require.NoError(t, err)
		_, err = verifier.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := verifier.VerifyToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, models.ErrTokenMalformed)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte(secret))
		require.NoError(t, err)
		_, err = verifier.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})
}

func TestNewJWTVerifier_EmptySecret(t *testing.T) {
	_, err := authutils.NewJWTVerifier("", nil)
	assert.Error(t, err)
}
