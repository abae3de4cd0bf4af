package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
)

func TestLineInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    LineInput
		wantErr bool
	}{
		{"valid", LineInput{ProductID: 1, Quantity: 1}, false},
		{"missing product", LineInput{Quantity: 1}, true},
		{"zero quantity", LineInput{ProductID: 1}, true},
		{"negative quantity", LineInput{ProductID: 1, Quantity: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_InvalidUserID(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	_, err := svc.ByUser(ctx, 0)
	assertValidation(t, err)

	_, err = svc.Create(ctx, -1, nil)
	assertValidation(t, err)

	_, err = svc.Update(ctx, 0, LineInput{ProductID: 1, Quantity: 1})
	assertValidation(t, err)

	_, err = svc.Clear(ctx, 0)
	assertValidation(t, err)
}

func TestService_Update_InvalidLine(t *testing.T) {
	svc := NewService()

	_, err := svc.Update(context.Background(), 1, LineInput{ProductID: 1})
	assertValidation(t, err)
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
