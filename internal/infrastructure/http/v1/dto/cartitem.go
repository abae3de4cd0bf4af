package dto

import (
	"shopapi/internal/domain/cartitem"
	"shopapi/internal/domain/entity"
)

// CreateCartItemRequest is the request body for adding a line to an
// existing cart.
type CreateCartItemRequest struct {
	CartID    int64 `json:"cartId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCartItemRequest) ToEntity() *entity.CartItem {
	return &entity.CartItem{
		CartID:    r.CartID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
}

// UpdateCartItemRequest is the request body for a partial cart line update.
type UpdateCartItemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateCartItemRequest) ToInput() cartitem.UpdateInput {
	return cartitem.UpdateInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
}

// CartItemResponse is the response body for one cart line.
type CartItemResponse struct {
	ID        int64 `json:"id"`
	CartID    int64 `json:"cartId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// FromCartItem creates response DTO from domain entity.
func FromCartItem(it *entity.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:        it.ID,
		CartID:    it.CartID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
	}
}

// FromCartItems converts a slice of cart lines.
func FromCartItems(items []*entity.CartItem) []*CartItemResponse {
	out := make([]*CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCartItem(it))
	}
	return out
}
