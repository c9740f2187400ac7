package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/jwt"
)

func TestHashPassword(t *testing.T) {
	as := NewAuthService(jwt.New("secret"), time.Hour)

	hash, err := as.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	// a bcrypt hash verifies against the original and nothing else
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse battery staple")))
	require.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	as := NewAuthService(jwt.New("secret"), time.Hour)

	h1, err := as.HashPassword("password123")
	require.NoError(t, err)
	h2, err := as.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestGenerateToken(t *testing.T) {
	jwtService := jwt.New("secret")
	as := NewAuthService(jwtService, time.Hour)

	hash, err := as.HashPassword("password123")
	require.NoError(t, err)
	u := &user.User{ID: 42, Username: "alice", PasswordHash: hash}

	t.Run("correct password yields a valid token", func(t *testing.T) {
		tok, err := as.GenerateToken(u, "password123")
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(tok)
		require.NoError(t, err)
		assert.Equal(t, "42", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		tok, err := as.GenerateToken(u, "password124")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, tok)
	})
}

func TestIssueToken(t *testing.T) {
	jwtService := jwt.New("secret")
	as := NewAuthService(jwtService, 30*time.Minute)

	tok, err := as.IssueToken(&user.User{ID: 7})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}
