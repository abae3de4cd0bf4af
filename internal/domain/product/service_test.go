package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
)

// Validation happens before any storage access, so these run without a
// database.

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	tests := []struct {
		name    string
		product *entity.Product
	}{
		{"missing name", &entity.Product{Price: decimal.NewFromInt(10), CategoryID: 1}},
		{"zero price", &entity.Product{Name: "Widget", CategoryID: 1}},
		{"negative price", &entity.Product{Name: "Widget", Price: decimal.NewFromInt(-5), CategoryID: 1}},
		{"missing category", &entity.Product{Name: "Widget", Price: decimal.NewFromInt(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.product)
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}

func TestService_InvalidID(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 0)
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	_, err = svc.Update(ctx, -1, UpdateInput{})
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	_, err = svc.Delete(ctx, 0)
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	_, err = svc.ByCategory(ctx, 0)
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))
}

func TestService_Search_BlankTerm(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.Search(ctx, "")
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	_, err = svc.Search(ctx, "   ")
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))
}

func TestService_FilterByPrice_InvalidBounds(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.FilterByPrice(ctx, decimal.NewFromInt(-1), decimal.NewFromInt(10))
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))

	_, err = svc.FilterByPrice(ctx, decimal.NewFromInt(20), decimal.NewFromInt(10))
	assert.Equal(t, apperror.CodeValidation, mustCode(t, err))
}

func mustCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	return appErr.Code
}
