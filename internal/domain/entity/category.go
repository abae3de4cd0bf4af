package entity

import "shopapi/internal/core/apperror"

// Category groups products.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

func (c *Category) EntityID() int64 { return c.ID }
func (c *Category) SetID(id int64)  { c.ID = id }

// Validate checks category invariants.
func (c *Category) Validate() error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	return nil
}
