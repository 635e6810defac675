package identity

import (
	"context"
	"testing"
	"time"

	"github.com/firmdir-simple/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub":     "subject-1",
		"email":   "user@example.com",
		"name":    "Test User",
		"picture": "https://img.example.com/me.jpg",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	ident, err := verifier.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", ident.Subject)
	assert.Equal(t, "user@example.com", ident.Email)
	assert.Equal(t, "Test User", ident.Name)
	assert.Equal(t, "https://img.example.com/me.jpg", ident.Picture)
}

func TestVerifyExpiredToken(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub": "subject-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = verifier.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestVerifyWrongSecret(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	raw := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "subject-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestVerifyMissingSubject(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	raw := signToken(t, testSecret, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "https://issuer.example.com")
	require.NoError(t, err)

	raw := signToken(t, testSecret, jwt.MapClaims{
		"sub": "subject-1",
		"iss": "https://rogue.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestVerifyGarbage(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "")
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestEmptySecretRejected(t *testing.T) {
	_, err := NewJWTVerifier("", "")
	assert.Error(t, err)
}
