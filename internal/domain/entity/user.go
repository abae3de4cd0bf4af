package entity

import "shopapi/internal/core/apperror"

// User is a registered account. The password is stored only as a bcrypt hash.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
}

func (u *User) EntityID() int64 { return u.ID }
func (u *User) SetID(id int64)  { u.ID = id }

// Validate checks user invariants.
func (u *User) Validate() error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if u.Role == "" {
		return apperror.NewValidation("role is required").WithDetail("field", "role")
	}
	return nil
}
