package entity

import "shopapi/internal/core/apperror"

// Address is a user's postal address. Every field is required.
type Address struct {
	ID         int64  `db:"id" json:"id"`
	UserID     int64  `db:"user_id" json:"userId"`
	Street     string `db:"street" json:"street"`
	City       string `db:"city" json:"city"`
	State      string `db:"state" json:"state"`
	PostalCode string `db:"postal_code" json:"postalCode"`
	Country    string `db:"country" json:"country"`
}

func (a *Address) EntityID() int64 { return a.ID }
func (a *Address) SetID(id int64)  { a.ID = id }

// Validate checks address invariants.
func (a *Address) Validate() error {
	if a.UserID <= 0 {
		return apperror.NewValidation("userId is required").WithDetail("field", "userId")
	}
	required := map[string]string{
		"street":     a.Street,
		"city":       a.City,
		"state":      a.State,
		"postalCode": a.PostalCode,
		"country":    a.Country,
	}
	for field, val := range required {
		if val == "" {
			return apperror.NewValidation(field + " is required").WithDetail("field", field)
		}
	}
	return nil
}
