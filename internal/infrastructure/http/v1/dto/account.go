package dto

import (
	"time"

	"shopapi/internal/domain/account"
)

// RegisterRequest is the request body for self-registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ToInput converts the DTO to a service register input.
func (r *RegisterRequest) ToInput() account.RegisterInput {
	return account.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToInput converts the DTO to a service login input.
func (r *LoginRequest) ToInput() account.LoginInput {
	return account.LoginInput{Email: r.Email, Password: r.Password}
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

// FromLoginResult creates response DTO from the login result.
func FromLoginResult(res *account.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      FromUser(res.User),
	}
}
