package dto

import (
	"shopapi/internal/domain/category"
	"shopapi/internal/domain/entity"
)

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCategoryRequest) ToEntity() *entity.Category {
	return &entity.Category{Name: r.Name}
}

// UpdateCategoryRequest is the request body for a partial category update.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateCategoryRequest) ToInput() category.UpdateInput {
	return category.UpdateInput{Name: r.Name}
}

// CategoryResponse is the response body for a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromCategory creates response DTO from domain entity.
func FromCategory(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name}
}

// FromCategories converts a slice of categories.
func FromCategories(items []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCategory(c))
	}
	return out
}
