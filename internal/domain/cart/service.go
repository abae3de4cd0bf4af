// Package cart provides the user-keyed shopping cart aggregate.
package cart

import (
	"context"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/infrastructure/storage/postgres"
	"shopapi/pkg/logger"
)

// Service provides cart operations keyed by user id.
type Service struct{}

// NewService creates a new cart service.
func NewService() *Service {
	return &Service{}
}

// LineInput is one requested cart line.
type LineInput struct {
	ProductID int64
	Quantity  int
}

func (in LineInput) validate() error {
	if in.ProductID <= 0 {
		return apperror.NewValidation("productId is required").WithDetail("field", "productId")
	}
	if in.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").WithDetail("field", "quantity")
	}
	return nil
}

// Line is a cart line joined with its product.
type Line struct {
	Item    *entity.CartItem
	Product *entity.Product
}

// View is the full cart of one user.
type View struct {
	Cart  *entity.Cart
	Lines []*Line
}

// ByUser returns the user's full cart with product details for every line.
func (s *Service) ByUser(ctx context.Context, userID int64) (*View, error) {
	if userID <= 0 {
		return nil, apperror.NewValidation("userId must be positive").WithDetail("userId", userID)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	c, err := findByUser(ctx, uow, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, uow, c)
}

// Create creates a cart for the user with the given lines. A user may own at
// most one cart.
func (s *Service) Create(ctx context.Context, userID int64, lines []LineInput) (*View, error) {
	if userID <= 0 {
		return nil, apperror.NewValidation("userId must be positive").WithDetail("userId", userID)
	}
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return nil, err
		}
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	if existing, err := findByUser(ctx, uow, userID); err == nil && existing != nil {
		return nil, apperror.NewConflict("user already has a cart").WithDetail("userId", userID)
	} else if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	c := &entity.Cart{UserID: userID}
	uow.Carts().Create(ctx, c)

	items := make([]*entity.CartItem, 0, len(lines))
	for _, line := range lines {
		it := &entity.CartItem{ProductID: line.ProductID, Quantity: line.Quantity}
		uow.Link(func() { it.CartID = c.ID })
		uow.CartItems().Create(ctx, it)
		items = append(items, it)
	}
	uow.RecordChange(ctx, "cart", c, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}

	logger.Info(ctx, "cart created", "cart_id", c.ID, "user_id", userID, "lines", len(items))
	return s.view(ctx, uow, c)
}

// Update upserts one line in the user's cart. An existing line for the same
// product gets the new quantity, otherwise a new line is added.
func (s *Service) Update(ctx context.Context, userID int64, line LineInput) (*View, error) {
	if userID <= 0 {
		return nil, apperror.NewValidation("userId must be positive").WithDetail("userId", userID)
	}
	if err := line.validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	c, err := findByUser(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	items, err := itemsOf(ctx, uow, c.ID)
	if err != nil {
		return nil, err
	}

	var target *entity.CartItem
	for _, it := range items {
		if it.ProductID == line.ProductID {
			target = it
			break
		}
	}

	if target != nil {
		target.Quantity = line.Quantity
		uow.CartItems().Update(ctx, target)
		uow.RecordChange(ctx, "cart_item", target, postgres.AuditUpdate)
	} else {
		target = &entity.CartItem{CartID: c.ID, ProductID: line.ProductID, Quantity: line.Quantity}
		uow.CartItems().Create(ctx, target)
		uow.RecordChange(ctx, "cart_item", target, postgres.AuditCreate)
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return s.view(ctx, uow, c)
}

// Clear removes the user's cart and all its lines. Returns false when the
// user has no cart.
func (s *Service) Clear(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, apperror.NewValidation("userId must be positive").WithDetail("userId", userID)
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	c, err := findByUser(ctx, uow, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	items, err := itemsOf(ctx, uow, c.ID)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if _, err := uow.CartItems().Delete(ctx, it.ID); err != nil {
			return false, err
		}
	}
	ok, err := uow.Carts().Delete(ctx, c.ID)
	if err != nil || !ok {
		return ok, err
	}
	uow.RecordChange(ctx, "cart", c, postgres.AuditDelete)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// view joins the cart's lines with their products.
func (s *Service) view(ctx context.Context, uow *postgres.UnitOfWork, c *entity.Cart) (*View, error) {
	items, err := itemsOf(ctx, uow, c.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]*Line, 0, len(items))
	for _, it := range items {
		p, err := uow.Products().GetByID(ctx, it.ProductID)
		if err != nil {
			if apperror.IsNotFound(err) {
				// The product was removed from the catalog; keep the line
				// without details rather than failing the whole view.
				lines = append(lines, &Line{Item: it})
				continue
			}
			return nil, err
		}
		lines = append(lines, &Line{Item: it, Product: p})
	}
	return &View{Cart: c, Lines: lines}, nil
}

func findByUser(ctx context.Context, uow *postgres.UnitOfWork, userID int64) (*entity.Cart, error) {
	all, err := uow.Carts().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperror.NewNotFound("cart", userID).WithDetail("userId", userID)
}

func itemsOf(ctx context.Context, uow *postgres.UnitOfWork, cartID int64) ([]*entity.CartItem, error) {
	all, err := uow.CartItems().GetAll(ctx)
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
