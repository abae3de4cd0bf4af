package dto

import (
	"shopapi/internal/domain/address"
	"shopapi/internal/domain/entity"
)

// CreateAddressRequest is the request body for creating an address.
type CreateAddressRequest struct {
	UserID     int64  `json:"userId" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAddressRequest) ToEntity() *entity.Address {
	return &entity.Address{
		UserID:     r.UserID,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// UpdateAddressRequest is the request body for a partial address update.
type UpdateAddressRequest struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateAddressRequest) ToInput() address.UpdateInput {
	return address.UpdateInput{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// AddressResponse is the response body for an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// FromAddress creates response DTO from domain entity.
func FromAddress(a *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// FromAddresses converts a slice of addresses.
func FromAddresses(items []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAddress(a))
	}
	return out
}
