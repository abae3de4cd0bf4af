// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// SuccessResponse is a generic success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
