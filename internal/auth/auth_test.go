package auth_test

import (
	"testing"
	"time"

	"buildmat-orders-api-server/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("Xk9!mQw2#r")
	require.NoError(t, err)
	assert.NotEqual(t, "Xk9!mQw2#r", hash)

	assert.True(t, auth.CheckPasswordHash("Xk9!mQw2#r", hash))
	assert.False(t, auth.CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")

	token, err := auth.GenerateJWT("63f1c2a4b5", "maria@example.com", "personal", time.Hour)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "63f1c2a4b5", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, "personal", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")
	token, err := auth.GenerateJWT("63f1c2a4b5", "maria@example.com", "personal", time.Hour)
	require.NoError(t, err)

	auth.JwtSecret = []byte("another-secret")
	_, err = auth.ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateJWT_DefaultExpiration(t *testing.T) {
	auth.JwtSecret = []byte("test-secret")

	token, err := auth.GenerateJWT("63f1c2a4b5", "maria@example.com", "admin", 0)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}
