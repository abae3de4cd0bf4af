// Package orderitem provides direct CRUD over order lines.
package orderitem

import (
	"context"

	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
)

// Service provides order item operations.
type Service struct{}

// NewService creates a new order item service.
func NewService() *Service {
	return &Service{}
}

// UpdateInput carries a partial update. Nil fields keep the stored value.
type UpdateInput struct {
	ProductID *int64
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// Create validates and persists a new order line. The referenced order must
// exist.
func (s *Service) Create(ctx context.Context, it *entity.OrderItem) (*entity.OrderItem, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	if _, err := uow.Orders().GetByID(ctx, it.OrderID); err != nil {
		return nil, err
	}

	uow.OrderItems().Create(ctx, it)
	uow.RecordChange(ctx, "order_item", it, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return it, nil
}

// GetByID returns one order line.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.OrderItem, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}
	return postgres.MustGetUnitOfWork(ctx).OrderItems().GetByID(ctx, id)
}

// GetAll returns every order line.
func (s *Service) GetAll(ctx context.Context) ([]*entity.OrderItem, error) {
	return postgres.MustGetUnitOfWork(ctx).OrderItems().GetAll(ctx)
}

// ByOrder returns all lines of one order.
func (s *Service) ByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	if orderID <= 0 {
		return nil, apperror.NewValidation("orderId must be positive").WithDetail("orderId", orderID)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.OrderItem, 0, len(all))
	for _, it := range all {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

// Update applies a partial update to an existing order line.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.OrderItem, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.OrderItems().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ProductID != nil {
		existing.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		existing.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		existing.UnitPrice = *in.UnitPrice
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.OrderItems().Update(ctx, existing)
	uow.RecordChange(ctx, "order_item", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes an order line. Returns false when absent.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.OrderItems().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := uow.OrderItems().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "order_item", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}
