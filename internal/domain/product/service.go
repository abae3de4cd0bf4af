// Package product provides business logic for the product catalog.
package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
	"shopapi/pkg/logger"
)

// Service provides product operations. State lives in the per-request unit
// of work, so the service itself is stateless and safe to share.
type Service struct{}

// NewService creates a new product service.
func NewService() *Service {
	return &Service{}
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
type UpdateInput struct {
	Name       *string
	Price      *decimal.Decimal
	ImageURL   *string
	CategoryID *int64
}

func (in UpdateInput) applyTo(p *entity.Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
}

// Create validates and persists a new product.
func (s *Service) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	uow.Products().Create(ctx, p)
	uow.RecordChange(ctx, "product", p, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}

	logger.Info(ctx, "product created", "product_id", p.ID, "name", p.Name)
	return p, nil
}

// GetByID returns one product.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}
	return postgres.MustGetUnitOfWork(ctx).Products().GetByID(ctx, id)
}

// GetAll returns every product.
func (s *Service) GetAll(ctx context.Context) ([]*entity.Product, error) {
	return postgres.MustGetUnitOfWork(ctx).Products().GetAll(ctx)
}

// Update applies a partial update to an existing product. Absent fields keep
// their stored values.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.Product, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Products().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.applyTo(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.Products().Update(ctx, existing)
	uow.RecordChange(ctx, "product", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a product. Returns false when no such product exists.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Products().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := uow.Products().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "product", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ByCategory returns products belonging to the category.
func (s *Service) ByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	if categoryID <= 0 {
		return nil, apperror.NewValidation("categoryId must be positive").WithDetail("categoryId", categoryID)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(all, categoryID), nil
}

// Search returns products whose name contains the term, case-insensitively.
// A blank term is rejected rather than matching everything.
func (s *Service) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperror.NewValidation("search term must not be empty")
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SearchByName(all, term), nil
}

// FilterByPrice returns products priced inside the inclusive range.
func (s *Service) FilterByPrice(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	if min.IsNegative() || max.IsNegative() {
		return nil, apperror.NewValidation("price bounds must not be negative")
	}
	if min.GreaterThan(max) {
		return nil, apperror.NewValidation("minPrice must not exceed maxPrice")
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByPriceRange(all, min, max), nil
}

// SortByPriceDesc returns all products sorted by price, most expensive first.
func (s *Service) SortByPriceDesc(ctx context.Context) ([]*entity.Product, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return SortedByPriceDesc(all), nil
}
