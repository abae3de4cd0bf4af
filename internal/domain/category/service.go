// Package category provides business logic for product categories.
package category

import (
	"context"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
)

// Service provides category operations.
type Service struct{}

// NewService creates a new category service.
func NewService() *Service {
	return &Service{}
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
type UpdateInput struct {
	Name *string
}

// Create validates and persists a new category.
func (s *Service) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	uow.Categories().Create(ctx, c)
	uow.RecordChange(ctx, "category", c, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns one category.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}
	return postgres.MustGetUnitOfWork(ctx).Categories().GetByID(ctx, id)
}

// GetAll returns every category.
func (s *Service) GetAll(ctx context.Context) ([]*entity.Category, error) {
	return postgres.MustGetUnitOfWork(ctx).Categories().GetAll(ctx)
}

// Update applies a partial update to an existing category.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.Category, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.Categories().Update(ctx, existing)
	uow.RecordChange(ctx, "category", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a category. Returns false when no such category exists.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Categories().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := uow.Categories().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "category", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}
