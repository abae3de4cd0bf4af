package dto

import (
	"github.com/shopspring/decimal"

	"shopapi/internal/domain/cart"
)

// CartLineRequest is one requested cart line.
type CartLineRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

func (r CartLineRequest) toInput() cart.LineInput {
	return cart.LineInput{ProductID: r.ProductID, Quantity: r.Quantity}
}

// CreateCartRequest is the request body for creating a user's cart.
type CreateCartRequest struct {
	Items []CartLineRequest `json:"items" binding:"dive"`
}

// ToInputs converts the DTO to service line inputs.
func (r *CreateCartRequest) ToInputs() []cart.LineInput {
	lines := make([]cart.LineInput, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, it.toInput())
	}
	return lines
}

// UpdateCartRequest upserts one line in the user's cart.
type UpdateCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// ToInput converts the DTO to a service line input.
func (r *UpdateCartRequest) ToInput() cart.LineInput {
	return cart.LineInput{ProductID: r.ProductID, Quantity: r.Quantity}
}

// CartLineResponse is one cart line flattened with product details.
type CartLineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// CartResponse is the response body for a user's full cart.
type CartResponse struct {
	ID     int64               `json:"id"`
	UserID int64               `json:"userId"`
	Items  []*CartLineResponse `json:"items"`
	Total  decimal.Decimal     `json:"total"`
}

// FromCartView creates response DTO from the cart aggregate. Lines whose
// product no longer exists keep their quantity with empty product details.
func FromCartView(v *cart.View) *CartResponse {
	resp := &CartResponse{
		ID:     v.Cart.ID,
		UserID: v.Cart.UserID,
		Items:  make([]*CartLineResponse, 0, len(v.Lines)),
		Total:  decimal.Zero,
	}
	for _, line := range v.Lines {
		lr := &CartLineResponse{
			ID:        line.Item.ID,
			ProductID: line.Item.ProductID,
			Quantity:  line.Item.Quantity,
		}
		if line.Product != nil {
			lr.ProductName = line.Product.Name
			lr.ImageURL = line.Product.ImageURL
			lr.UnitPrice = line.Product.Price
			lr.LineTotal = line.Product.Price.Mul(decimal.NewFromInt(int64(line.Item.Quantity)))
			resp.Total = resp.Total.Add(lr.LineTotal)
		}
		resp.Items = append(resp.Items, lr)
	}
	return resp
}
