package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/order"
)

// OrderLineRequest is one requested order line.
type OrderLineRequest struct {
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

func (r OrderLineRequest) toInput() order.ItemInput {
	return order.ItemInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

// CreateOrderRequest is the request body for placing an order. The order
// date is stamped server-side and the total is computed from the lines.
// userId may be omitted, in which case the authenticated user is used.
type CreateOrderRequest struct {
	UserID int64              `json:"userId"`
	Status string             `json:"status"`
	Items  []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// ToInput converts the DTO to a service create input.
func (r *CreateOrderRequest) ToInput() order.CreateInput {
	items := make([]order.ItemInput, 0, len(r.Items))
	for _, line := range r.Items {
		items = append(items, line.toInput())
	}
	return order.CreateInput{
		UserID: r.UserID,
		Status: r.Status,
		Items:  items,
	}
}

// UpdateOrderRequest is the request body for a partial order update.
// Providing items replaces all existing lines.
type UpdateOrderRequest struct {
	Status *string             `json:"status"`
	Items  *[]OrderLineRequest `json:"items"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateOrderRequest) ToInput() order.UpdateInput {
	in := order.UpdateInput{Status: r.Status}
	if r.Items != nil {
		items := make([]order.ItemInput, 0, len(*r.Items))
		for _, line := range *r.Items {
			items = append(items, line.toInput())
		}
		in.Items = &items
	}
	return in
}

// OrderItemResponse is the response body for one order line.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// FromOrderItem creates response DTO from domain entity.
func FromOrderItem(it *entity.OrderItem) *OrderItemResponse {
	return &OrderItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
	}
}

// FromOrderItems converts a slice of order lines.
func FromOrderItems(items []*entity.OrderItem) []*OrderItemResponse {
	out := make([]*OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromOrderItem(it))
	}
	return out
}

// OrderResponse is the response body for an order with its lines.
type OrderResponse struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"userId"`
	OrderDate   time.Time            `json:"orderDate"`
	TotalAmount decimal.Decimal      `json:"totalAmount"`
	Status      string               `json:"status"`
	Items       []*OrderItemResponse `json:"items"`
}

// FromOrderView creates response DTO from an order aggregate.
func FromOrderView(v *order.View) *OrderResponse {
	return &OrderResponse{
		ID:          v.Order.ID,
		UserID:      v.Order.UserID,
		OrderDate:   v.Order.OrderDate,
		TotalAmount: v.Order.TotalAmount,
		Status:      v.Order.Status,
		Items:       FromOrderItems(v.Items),
	}
}

// FromOrderViews converts a slice of order aggregates.
func FromOrderViews(views []*order.View) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
