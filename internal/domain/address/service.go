// Package address provides business logic for user addresses.
package address

import (
	"context"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
)

// Service provides address operations.
type Service struct{}

// NewService creates a new address service.
func NewService() *Service {
	return &Service{}
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
type UpdateInput struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

func (in UpdateInput) applyTo(a *entity.Address) {
	if in.Street != nil {
		a.Street = *in.Street
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.PostalCode != nil {
		a.PostalCode = *in.PostalCode
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
}

// Create validates and persists a new address.
func (s *Service) Create(ctx context.Context, a *entity.Address) (*entity.Address, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	uow.Addresses().Create(ctx, a)
	uow.RecordChange(ctx, "address", a, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID returns one address.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}
	return postgres.MustGetUnitOfWork(ctx).Addresses().GetByID(ctx, id)
}

// GetAll returns every address.
func (s *Service) GetAll(ctx context.Context) ([]*entity.Address, error) {
	return postgres.MustGetUnitOfWork(ctx).Addresses().GetAll(ctx)
}

// ByUser returns all addresses belonging to the user.
func (s *Service) ByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	if userID <= 0 {
		return nil, apperror.NewValidation("userId must be positive").WithDetail("userId", userID)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Address, 0, len(all))
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Update applies a partial update to an existing address.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.Address, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Addresses().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.applyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.Addresses().Update(ctx, existing)
	uow.RecordChange(ctx, "address", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes an address. Returns false when no such address exists.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Addresses().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := uow.Addresses().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "address", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}
