package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "customer",
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shopapi", "shopapi-clients", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := issuer.Issue(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "shopapi", claims.Issuer)
}

func TestTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("", "shopapi", "shopapi-clients", time.Hour)
	assert.Error(t, err)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	a, err := NewTokenIssuer("secret-a", "shopapi", "shopapi-clients", time.Hour)
	require.NoError(t, err)
	b, err := NewTokenIssuer("secret-b", "shopapi", "shopapi-clients", time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue(testUser())
	require.NoError(t, err)

	_, err = b.Parse(token)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shopapi", "shopapi-clients", -time.Minute)
	require.NoError(t, err)

	// A non-positive expiry falls back to one hour, so force one by issuing
	// with a direct negative lifetime.
	issuer.expiry = -time.Minute

	token, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_WrongIssuer(t *testing.T) {
	a, err := NewTokenIssuer("test-secret", "other-service", "shopapi-clients", time.Hour)
	require.NoError(t, err)
	b, err := NewTokenIssuer("test-secret", "shopapi", "shopapi-clients", time.Hour)
	require.NoError(t, err)

	token, _, err := a.Issue(testUser())
	require.NoError(t, err)

	_, err = b.Parse(token)
	assert.Error(t, err)
}

func TestClaims_UserContext(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", "shopapi", "shopapi-clients", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	uc := claims.UserContext()
	assert.Equal(t, int64(42), uc.UserID)
	assert.Equal(t, "alice@example.com", uc.Email)
	assert.Equal(t, "customer", uc.Role)
}
