// Package user provides administrative user management.
package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
)

// Service provides user operations.
type Service struct{}

// NewService creates a new user service.
func NewService() *Service {
	return &Service{}
}

// CreateInput carries the fields for creating a user. The plaintext password
// is hashed here and never stored.
type CreateInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
// A non-nil Password replaces the stored hash.
type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

// Create validates and persists a new user.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if in.Password == "" {
		return nil, apperror.NewValidation("password is required").WithDetail("field", "password")
	}

	u := &entity.User{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(strings.ToLower(in.Email)),
		Role:     in.Role,
	}
	if u.Role == "" {
		u.Role = "customer"
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)

	uow := postgres.MustGetUnitOfWork(ctx)
	if taken, err := EmailTaken(ctx, uow, u.Email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperror.NewDuplicate("user", "email", u.Email)
	}

	uow.Users().Create(ctx, u)
	uow.RecordChange(ctx, "user", u, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID returns one user.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}
	return postgres.MustGetUnitOfWork(ctx).Users().GetByID(ctx, id)
}

// GetAll returns every user.
func (s *Service) GetAll(ctx context.Context) ([]*entity.User, error) {
	return postgres.MustGetUnitOfWork(ctx).Users().GetAll(ctx)
}

// Update applies a partial update to an existing user.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.User, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		existing.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email != existing.Email {
			if taken, err := EmailTaken(ctx, uow, email, id); err != nil {
				return nil, err
			} else if taken {
				return nil, apperror.NewDuplicate("user", "email", email)
			}
		}
		existing.Email = email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.NewInternal(err)
		}
		existing.PasswordHash = string(hash)
	}
	if in.Role != nil {
		existing.Role = *in.Role
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.Users().Update(ctx, existing)
	uow.RecordChange(ctx, "user", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a user. Returns false when no such user exists.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := uow.Users().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "user", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// FindByEmail scans all users for a matching email, case-insensitively.
// Returns a not-found error when absent.
func FindByEmail(ctx context.Context, uow *postgres.UnitOfWork, email string) (*entity.User, error) {
	all, err := uow.Users().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.TrimSpace(strings.ToLower(email))
	for _, u := range all {
		if strings.EqualFold(u.Email, needle) {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

// EmailTaken reports whether another user already owns the email.
func EmailTaken(ctx context.Context, uow *postgres.UnitOfWork, email string, excludeID int64) (bool, error) {
	existing, err := FindByEmail(ctx, uow, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
