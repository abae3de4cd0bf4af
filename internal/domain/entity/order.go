package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
)

// Order is a placed order with a monetary total and a status string.
type Order struct {
	ID          int64           `db:"id" json:"id"`
	UserID      int64           `db:"user_id" json:"userId"`
	OrderDate   time.Time       `db:"order_date" json:"orderDate"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
	Status      string          `db:"status" json:"status"`
}

func (o *Order) EntityID() int64 { return o.ID }
func (o *Order) SetID(id int64)  { o.ID = id }

// Validate checks order invariants.
func (o *Order) Validate() error {
	if o.UserID <= 0 {
		return apperror.NewValidation("userId is required").WithDetail("field", "userId")
	}
	if o.TotalAmount.IsNegative() {
		return apperror.NewValidation("totalAmount must not be negative").WithDetail("field", "totalAmount")
	}
	if o.Status == "" {
		return apperror.NewValidation("status is required").WithDetail("field", "status")
	}
	return nil
}

// OrderItem is one product line inside an order, priced at order time.
type OrderItem struct {
	ID        int64           `db:"id" json:"id"`
	OrderID   int64           `db:"order_id" json:"orderId"`
	ProductID int64           `db:"product_id" json:"productId"`
	Quantity  int             `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`
}

func (i *OrderItem) EntityID() int64 { return i.ID }
func (i *OrderItem) SetID(id int64)  { i.ID = id }

// Validate checks order item invariants.
func (i *OrderItem) Validate() error {
	if i.OrderID <= 0 {
		return apperror.NewValidation("orderId is required").WithDetail("field", "orderId")
	}
	if i.ProductID <= 0 {
		return apperror.NewValidation("productId is required").WithDetail("field", "productId")
	}
	if i.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").WithDetail("field", "quantity")
	}
	if !i.UnitPrice.IsPositive() {
		return apperror.NewValidation("unitPrice must be positive").WithDetail("field", "unitPrice")
	}
	return nil
}
