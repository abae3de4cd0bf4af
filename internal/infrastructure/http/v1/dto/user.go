package dto

import (
	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/user"
)

// CreateUserRequest is the request body for creating a user. The plaintext
// password is handed to the service for hashing and never stored.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// ToInput converts the DTO to a service create input.
func (r *CreateUserRequest) ToInput() user.CreateInput {
	return user.CreateInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// UpdateUserRequest is the request body for a partial user update.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// ToInput converts the DTO to a service update input.
func (r *UpdateUserRequest) ToInput() user.UpdateInput {
	return user.UpdateInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// UserResponse is the response body for a user. The password hash is never
// exposed.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// FromUser creates response DTO from domain entity.
func FromUser(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// FromUsers converts a slice of users.
func FromUsers(items []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, FromUser(u))
	}
	return out
}
