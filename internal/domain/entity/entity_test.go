package entity

import (
	"testing"

	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  interface{ Validate() error }
		wantErr bool
	}{
		{"valid user", &User{Username: "alice", Email: "a@b.c", Role: "customer"}, false},
		{"user missing email", &User{Username: "alice", Role: "customer"}, true},
		{"user missing role", &User{Username: "alice", Email: "a@b.c"}, true},

		{"valid product", &Product{Name: "Widget", Price: decimal.NewFromInt(10), CategoryID: 1}, false},
		{"product zero price", &Product{Name: "Widget", CategoryID: 1}, true},
		{"product negative price", &Product{Name: "Widget", Price: decimal.NewFromInt(-1), CategoryID: 1}, true},

		{"valid category", &Category{Name: "Books"}, false},
		{"category empty name", &Category{}, true},

		{"valid cart", &Cart{UserID: 1}, false},
		{"cart missing user", &Cart{}, true},

		{"valid cart item", &CartItem{CartID: 1, ProductID: 2, Quantity: 1}, false},
		{"cart item zero quantity", &CartItem{CartID: 1, ProductID: 2}, true},

		{"valid order", &Order{UserID: 1, TotalAmount: decimal.NewFromInt(10), Status: "Pending"}, false},
		{"order zero total allowed", &Order{UserID: 1, Status: "Pending"}, false},
		{"order negative total", &Order{UserID: 1, TotalAmount: decimal.NewFromInt(-1), Status: "Pending"}, true},
		{"order missing status", &Order{UserID: 1}, true},

		{"valid order item", &OrderItem{OrderID: 1, ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}, false},
		{"order item zero price", &OrderItem{OrderID: 1, ProductID: 2, Quantity: 1}, true},

		{"valid address", &Address{UserID: 1, Street: "s", City: "c", State: "st", PostalCode: "p", Country: "de"}, false},
		{"address missing city", &Address{UserID: 1, Street: "s", State: "st", PostalCode: "p", Country: "de"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				appErr, ok := apperror.AsAppError(err)
				if !ok || appErr.Code != apperror.CodeValidation {
					t.Errorf("expected validation code, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSetID(t *testing.T) {
	entities := []Entity{
		&User{}, &Product{}, &Category{}, &Cart{}, &CartItem{},
		&Order{}, &OrderItem{}, &Address{},
	}

	for _, e := range entities {
		e.SetID(77)
		if e.EntityID() != 77 {
			t.Errorf("%T: SetID not reflected in EntityID", e)
		}
	}
}
