package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

const testSecret = "test-jwt-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseToken_Valid(t *testing.T) {
	raw := signToken(t, testSecret, jwt.MapClaims{
		"account_id": "a1",
		"role":       string(domain.RoleAdmin),
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	identity, err := parseToken(raw, []byte(testSecret))

	require.NoError(t, err)
	assert.Equal(t, "a1", identity.AccountID)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	raw := signToken(t, "other-secret", jwt.MapClaims{
		"account_id": "a1",
		"role":       string(domain.RoleUser),
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	_, err := parseToken(raw, []byte(testSecret))

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestParseToken_Expired(t *testing.T) {
	raw := signToken(t, testSecret, jwt.MapClaims{
		"account_id": "a1",
		"role":       string(domain.RoleUser),
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})

	_, err := parseToken(raw, []byte(testSecret))

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestParseToken_MissingClaims(t *testing.T) {
	raw := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := parseToken(raw, []byte(testSecret))

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
