package auth

import (
	"testing"
	"time"

	"bakery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	a, err := NewAuthenticator("Admin@Padaria.com", hash, "signing-key", time.Hour)
	require.NoError(t, err)
	return a
}

func TestHashPassword(t *testing.T) {
	t.Run("should produce a bcrypt hash that is not the password", func(t *testing.T) {
		hash, err := HashPassword("s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)
		assert.Contains(t, hash, "$2a$")
	})

	t.Run("should reject an empty password", func(t *testing.T) {
		_, err := HashPassword("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewAuthenticator(t *testing.T) {
	t.Run("should report every missing setting", func(t *testing.T) {
		a, err := NewAuthenticator("", "", "", 0)
		require.Error(t, err)
		assert.Nil(t, a)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestAuthenticator_Login(t *testing.T) {
	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		a := newTestAuthenticator(t)
		now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
		a.now = func() time.Time { return now }

		token, err := a.Login(" admin@padaria.com ", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token.Value)
		assert.Equal(t, now.Add(time.Hour), token.ExpiresAt)

		claims, err := a.Verify(token.Value)
		require.NoError(t, err)
		assert.Equal(t, "admin@padaria.com", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		_, err := newTestAuthenticator(t).Login("admin@padaria.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("should reject an unknown email", func(t *testing.T) {
		_, err := newTestAuthenticator(t).Login("other@padaria.com", "s3cret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthenticator_Verify(t *testing.T) {
	t.Run("should reject an expired token", func(t *testing.T) {
		a := newTestAuthenticator(t)
		issued := time.Now().Add(-2 * time.Hour)
		a.now = func() time.Time { return issued }
		token, err := a.Login("admin@padaria.com", "s3cret")
		require.NoError(t, err)

		a.now = time.Now
		_, err = a.Verify(token.Value)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token signed with another key", func(t *testing.T) {
		a := newTestAuthenticator(t)
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "bakery",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("other-key"))
		require.NoError(t, err)

		_, err = a.Verify(forged)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := newTestAuthenticator(t).Verify("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
