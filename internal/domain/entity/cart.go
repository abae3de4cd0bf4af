package entity

import "shopapi/internal/core/apperror"

// Cart is a user's shopping cart. One active cart per user is assumed.
type Cart struct {
	ID     int64 `db:"id" json:"id"`
	UserID int64 `db:"user_id" json:"userId"`
}

func (c *Cart) EntityID() int64 { return c.ID }
func (c *Cart) SetID(id int64)  { c.ID = id }

// Validate checks cart invariants.
func (c *Cart) Validate() error {
	if c.UserID <= 0 {
		return apperror.NewValidation("userId is required").WithDetail("field", "userId")
	}
	return nil
}

// CartItem is one product line inside a cart.
type CartItem struct {
	ID        int64 `db:"id" json:"id"`
	CartID    int64 `db:"cart_id" json:"cartId"`
	ProductID int64 `db:"product_id" json:"productId"`
	Quantity  int   `db:"quantity" json:"quantity"`
}

func (i *CartItem) EntityID() int64 { return i.ID }
func (i *CartItem) SetID(id int64)  { i.ID = id }

// Validate checks cart item invariants.
func (i *CartItem) Validate() error {
	if i.CartID <= 0 {
		return apperror.NewValidation("cartId is required").WithDetail("field", "cartId")
	}
	if i.ProductID <= 0 {
		return apperror.NewValidation("productId is required").WithDetail("field", "productId")
	}
	if i.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").WithDetail("field", "quantity")
	}
	return nil
}
