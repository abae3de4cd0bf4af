package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
	"shopapi/internal/infrastructure/auth"
)

func testService(t *testing.T) *Service {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("test-secret", "shopapi", "shopapi-clients", time.Hour)
	require.NoError(t, err)
	return NewService(tokens)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := testService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginInput{Email: "alice@example.com"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, LoginInput{Password: "secret123"})
	assert.Error(t, err)
}
