// Package order provides business logic for placed orders and their lines.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
	"shopapi/pkg/logger"
)

// DefaultStatus is assigned when a new order carries no explicit status.
const DefaultStatus = "Pending"

// Service provides order operations.
type Service struct{}

// NewService creates a new order service.
func NewService() *Service {
	return &Service{}
}

// ItemInput is one requested order line.
type ItemInput struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (in ItemInput) validate() error {
	if in.ProductID <= 0 {
		return apperror.NewValidation("productId is required").WithDetail("field", "productId")
	}
	if in.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").WithDetail("field", "quantity")
	}
	if !in.UnitPrice.IsPositive() {
		return apperror.NewValidation("unitPrice must be positive").WithDetail("field", "unitPrice")
	}
	return nil
}

// CreateInput carries the fields for placing an order. The order date is
// always stamped server-side.
type CreateInput struct {
	UserID int64
	Status string
	Items  []ItemInput
}

// UpdateInput carries a partial update. Nil fields keep the stored values;
// a non-nil Items slice replaces all existing lines.
type UpdateInput struct {
	Status *string
	Items  *[]ItemInput
}

// View is an order together with its lines.
type View struct {
	Order *entity.Order
	Items []*entity.OrderItem
}

// Create places a new order with its lines in one transaction. The total is
// computed from the lines and the order date is the current UTC time.
func (s *Service) Create(ctx context.Context, in CreateInput) (*View, error) {
	if in.UserID <= 0 {
		return nil, apperror.NewValidation("userId is required").WithDetail("field", "userId")
	}
	if len(in.Items) == 0 {
		return nil, apperror.NewValidation("order must contain at least one item").WithDetail("field", "items")
	}

	o := &entity.Order{
		UserID:      in.UserID,
		OrderDate:   time.Now().UTC(),
		TotalAmount: totalOf(in.Items),
		Status:      in.Status,
	}
	if o.Status == "" {
		o.Status = DefaultStatus
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if err := line.validate(); err != nil {
			return nil, err
		}
		items = append(items, &entity.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	uow.Orders().Create(ctx, o)
	for _, it := range items {
		it := it
		// The order id is generated inside the transaction, so the link runs
		// after the order insert and before the line insert.
		uow.Link(func() { it.OrderID = o.ID })
		uow.OrderItems().Create(ctx, it)
	}
	uow.RecordChange(ctx, "order", o, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}

	logger.Info(ctx, "order placed", "order_id", o.ID, "user_id", o.UserID, "lines", len(items))
	return &View{Order: o, Items: items}, nil
}

// GetByID returns one order with its lines.
func (s *Service) GetByID(ctx context.Context, id int64) (*View, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	o, err := uow.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := itemsOf(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return &View{Order: o, Items: items}, nil
}

// GetAll returns every order with its lines.
func (s *Service) GetAll(ctx context.Context) ([]*View, error) {
	uow := postgres.MustGetUnitOfWork(ctx)
	orders, err := uow.Orders().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	allItems, err := uow.OrderItems().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]*entity.OrderItem, len(orders))
	for _, it := range allItems {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	views := make([]*View, 0, len(orders))
	for _, o := range orders {
		views = append(views, &View{Order: o, Items: byOrder[o.ID]})
	}
	return views, nil
}

// ByUser returns orders placed by the user, with their lines.
func (s *Service) ByUser(ctx context.Context, userID int64) ([]*View, error) {
	if userID <= 0 {
		return nil, apperror.NewValidation("userId must be positive").WithDetail("userId", userID)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*View, 0, len(all))
	for _, v := range all {
		if v.Order.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

// Update applies a partial update. Providing items replaces all existing
// lines and recomputes the total.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*View, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	currentItems, err := itemsOf(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		existing.Status = *in.Status
	}

	resultItems := currentItems
	if in.Items != nil {
		if len(*in.Items) == 0 {
			return nil, apperror.NewValidation("order must contain at least one item").WithDetail("field", "items")
		}
		for _, it := range currentItems {
			if _, err := uow.OrderItems().Delete(ctx, it.ID); err != nil {
				return nil, err
			}
		}
		resultItems = make([]*entity.OrderItem, 0, len(*in.Items))
		for _, line := range *in.Items {
			it := &entity.OrderItem{
				OrderID:   id,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			if err := it.Validate(); err != nil {
				return nil, err
			}
			uow.OrderItems().Create(ctx, it)
			resultItems = append(resultItems, it)
		}
		existing.TotalAmount = totalOf(*in.Items)
	}

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	uow.Orders().Update(ctx, existing)
	uow.RecordChange(ctx, "order", existing, postgres.AuditUpdate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return &View{Order: existing, Items: resultItems}, nil
}

// Delete removes an order and its lines. Returns false when absent.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperror.NewValidation("id must be positive").WithDetail("id", id)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	existing, err := uow.Orders().GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	items, err := itemsOf(ctx, uow, id)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if _, err := uow.OrderItems().Delete(ctx, it.ID); err != nil {
			return false, err
		}
	}
	ok, err := uow.Orders().Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "order", existing, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func totalOf(items []ItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func itemsOf(ctx context.Context, uow *postgres.UnitOfWork, orderID int64) ([]*entity.OrderItem, error) {
	all, err := uow.OrderItems().GetAll(ctx)
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
