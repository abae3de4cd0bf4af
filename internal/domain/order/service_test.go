package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
)

func TestTotalOf(t *testing.T) {
	items := []ItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("25.00")},
	}

	total := totalOf(items)

	assert.True(t, total.Equal(decimal.RequireFromString("44.98")))
}

func TestTotalOf_Empty(t *testing.T) {
	assert.True(t, totalOf(nil).IsZero())
}

func TestItemInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    ItemInput
		wantErr bool
	}{
		{"valid", ItemInput{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}, false},
		{"missing product", ItemInput{Quantity: 1, UnitPrice: decimal.NewFromInt(5)}, true},
		{"zero quantity", ItemInput{ProductID: 1, UnitPrice: decimal.NewFromInt(5)}, true},
		{"zero price", ItemInput{ProductID: 1, Quantity: 1}, true},
		{"negative price", ItemInput{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(-5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Items: []ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}}})
	assert.Equal(t, apperror.CodeValidation, code(t, err), "missing user")

	_, err = svc.Create(ctx, CreateInput{UserID: 1})
	assert.Equal(t, apperror.CodeValidation, code(t, err), "no items")

	_, err = svc.Create(ctx, CreateInput{UserID: 1, Items: []ItemInput{{ProductID: 1}}})
	assert.Equal(t, apperror.CodeValidation, code(t, err), "bad line")
}

func code(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	return appErr.Code
}
