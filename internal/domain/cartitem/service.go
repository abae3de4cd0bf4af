// Package cartitem provides direct CRUD over cart lines.
package cartitem

import (
	"context"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
)

// Service provides cart item operations.
type Service struct{}

// NewService creates a new cart item service.
func NewService() *Service {
	return &Service{}
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
type UpdateInput struct {
	ProductID *int64
	Quantity  *int
}

// Create validates and persists a new cart line. The referenced cart must
// exist.
func (s *Service) Create(ctx context.Context, it *entity.CartItem) (*entity.CartItem, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	if _, err := uow.Carts().GetByID(ctx, it.CartID); err != nil {
		return nil, err
	}

	uow.CartItems().Create(ctx, it)
	uow.RecordChange(ctx, "cart_item", it, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return it, nil
}

// GetByID returns one cart line.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.CartItem, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}
	return postgres.MustGetUnitOfWork(ctx).CartItems().GetByID(ctx, id)
}

// GetAll returns every cart line.
func (s *Service) GetAll(ctx context.Context) ([]*entity.CartItem, error) {
	return postgres.MustGetUnitOfWork(ctx).CartItems().GetAll(ctx)
}

// ByCart returns all lines of one cart.
func (s *Service) ByCart(ctx context.Context, cartID int64) ([]*entity.CartItem, error) {
	if cartID <= 0 {
		return nil, apperror.NewValidation("cartId must be positive").WithDetail("cartId", cartID)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.CartItem, 0, len(all))
	for _, it := range all {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Update applies a partial update to an existing cart line.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.CartItem, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.CartItems().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ProductID != nil {
		existing.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		existing.Quantity = *in.Quantity
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.CartItems().Update(ctx, existing)
	uow.RecordChange(ctx, "cart_item", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a cart line. Returns false when absent.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.CartItems().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := uow.CartItems().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "cart_item", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}
