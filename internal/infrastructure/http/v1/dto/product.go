package dto

import (
	"github.com/shopspring/decimal"

	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	ImageURL   string          `json:"imageUrl"`
	CategoryID int64           `json:"categoryId" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *entity.Product {
	return &entity.Product{
		Name:       r.Name,
		Price:      r.Price,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
	}
}

// UpdateProductRequest is the request body for a partial product update.
// Absent fields and a zero price keep the stored values.
type UpdateProductRequest struct {
	Name       *string         `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   *string         `json:"imageUrl"`
	CategoryID *int64          `json:"categoryId"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateProductRequest) ToInput() product.UpdateInput {
	in := product.UpdateInput{
		Name:       r.Name,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
	}
	if !r.Price.IsZero() {
		price := r.Price
		in.Price = &price
	}
	return in
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	CategoryID int64           `json:"categoryId"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		ImageURL:   p.ImageURL,
		CategoryID: p.CategoryID,
	}
}

// FromProducts converts a slice of products.
func FromProducts(items []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p))
	}
	return out
}
