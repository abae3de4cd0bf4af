package dto

import (
	"github.com/shopspring/decimal"

	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/orderitem"
)

// CreateOrderItemRequest is the request body for adding a line to an
// existing order.
type CreateOrderItemRequest struct {
	OrderID   int64           `json:"orderId" binding:"required"`
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrderItemRequest) ToEntity() *entity.OrderItem {
	return &entity.OrderItem{
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

// UpdateOrderItemRequest is the request body for a partial order line
// update. A zero unit price keeps the stored value.
type UpdateOrderItemRequest struct {
	ProductID *int64          `json:"productId"`
	Quantity  *int            `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateOrderItemRequest) ToInput() orderitem.UpdateInput {
	in := orderitem.UpdateInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
	if !r.UnitPrice.IsZero() {
		price := r.UnitPrice
		in.UnitPrice = &price
	}
	return in
}
