package entity

import (
	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
)

// Product is a catalog item belonging to one category.
type Product struct {
	ID         int64           `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Price      decimal.Decimal `db:"price" json:"price"`
	ImageURL   string          `db:"image_url" json:"imageUrl"`
	CategoryID int64           `db:"category_id" json:"categoryId"`
}

func (p *Product) EntityID() int64 { return p.ID }
func (p *Product) SetID(id int64)  { p.ID = id }

// Validate checks product invariants.
func (p *Product) Validate() error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if !p.Price.IsPositive() {
		return apperror.NewValidation("price must be positive").WithDetail("field", "price")
	}
	if p.CategoryID <= 0 {
		return apperror.NewValidation("categoryId is required").WithDetail("field", "categoryId")
	}
	return nil
}
