package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"shopapi/internal/domain/entity"
	"shopapi/pkg/logger"
)

var tracer = otel.Tracer("shopapi/uow")

// Querier is the subset of pgx operations repositories need.
// Satisfied by both pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// operation is a staged mutation. It runs inside the commit transaction and
// reports the number of rows it affected.
type operation func(ctx context.Context, tx pgx.Tx) (int64, error)

// UnitOfWork batches repository mutations into one atomic commit.
//
// One instance serves one HTTP request (created by middleware, carried in the
// request context) and is not safe for concurrent use. Reads go straight to
// the pool; creates, updates and deletes are staged and executed in staging
// order inside a single transaction when SaveChanges runs. Connections are
// managed by the pool, so there is nothing to release per request.
type UnitOfWork struct {
	pool             *pgxpool.Pool
	statementTimeout time.Duration

	// reader overrides the pool for immediate reads when set.
	reader Querier

	// repos memoizes one repository instance per entity type.
	repos   map[string]any
	pending []operation
}

// NewUnitOfWork creates a unit of work over the given pool.
func NewUnitOfWork(pool *Pool) *UnitOfWork {
	return &UnitOfWork{
		pool:             pool.Pool,
		statementTimeout: 30 * time.Second,
		repos:            make(map[string]any),
	}
}

// SetStatementTimeout overrides the per-transaction statement timeout.
func (u *UnitOfWork) SetStatementTimeout(d time.Duration) {
	u.statementTimeout = d
}

// querier returns the read source; reads never join the staged transaction.
func (u *UnitOfWork) querier() Querier {
	if u.reader != nil {
		return u.reader
	}
	return u.pool
}

// stage appends a mutation for the next SaveChanges.
func (u *UnitOfWork) stage(op operation) {
	u.pending = append(u.pending, op)
}

// Link stages a callback that runs in order with the other staged
// operations. Used to propagate generated parent ids to dependent entities
// before their own insert executes.
func (u *UnitOfWork) Link(fn func()) {
	u.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		fn()
		return 0, nil
	})
}

// Pending reports how many mutations are staged.
func (u *UnitOfWork) Pending() int {
	return len(u.pending)
}

// SaveChanges commits all staged mutations across all repositories obtained
// from this unit of work in a single transaction, in staging order, and
// returns the total number of affected rows.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if len(u.pending) == 0 {
		return 0, nil
	}

	ctx, span := tracer.Start(ctx, "uow.save_changes",
		trace.WithAttributes(attribute.Int("uow.staged_ops", len(u.pending))))
	defer span.End()

	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	if u.statementTimeout > 0 {
		_, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", u.statementTimeout.Milliseconds()))
		if err != nil {
			_ = tx.Rollback(ctx)
			return 0, fmt.Errorf("set statement_timeout: %w", err)
		}
	}

	var affected int64
	for _, op := range u.pending {
		n, err := op(ctx, tx)
		if err != nil {
			// Rollback with a background context so it completes even if
			// the request context was cancelled.
			if rbErr := tx.Rollback(context.Background()); rbErr != nil {
				logger.Error(ctx, "rollback failed", "error", rbErr, "original_error", err)
			}
			return 0, err
		}
		affected += n
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	u.pending = nil
	return affected, nil
}

// --- Typed repository accessors ---
//
// Each accessor memoizes one repository per entity type for the lifetime of
// the unit of work, created lazily on first request.

func (u *UnitOfWork) Users() *Repository[*entity.User] {
	return repositoryFor(u, "users", func() *entity.User { return &entity.User{} })
}

func (u *UnitOfWork) Products() *Repository[*entity.Product] {
	return repositoryFor(u, "products", func() *entity.Product { return &entity.Product{} })
}

func (u *UnitOfWork) Categories() *Repository[*entity.Category] {
	return repositoryFor(u, "categories", func() *entity.Category { return &entity.Category{} })
}

func (u *UnitOfWork) Carts() *Repository[*entity.Cart] {
	return repositoryFor(u, "carts", func() *entity.Cart { return &entity.Cart{} })
}

func (u *UnitOfWork) CartItems() *Repository[*entity.CartItem] {
	return repositoryFor(u, "cart_items", func() *entity.CartItem { return &entity.CartItem{} })
}

func (u *UnitOfWork) Orders() *Repository[*entity.Order] {
	return repositoryFor(u, "orders", func() *entity.Order { return &entity.Order{} })
}

func (u *UnitOfWork) OrderItems() *Repository[*entity.OrderItem] {
	return repositoryFor(u, "order_items", func() *entity.OrderItem { return &entity.OrderItem{} })
}

func (u *UnitOfWork) Addresses() *Repository[*entity.Address] {
	return repositoryFor(u, "addresses", func() *entity.Address { return &entity.Address{} })
}

// --- Context plumbing ---

type uowKey struct{}

// WithUnitOfWork adds a UnitOfWork to the context.
func WithUnitOfWork(ctx context.Context, u *UnitOfWork) context.Context {
	return context.WithValue(ctx, uowKey{}, u)
}

// GetUnitOfWork returns the UnitOfWork from context, or nil.
func GetUnitOfWork(ctx context.Context) *UnitOfWork {
	if u, ok := ctx.Value(uowKey{}).(*UnitOfWork); ok {
		return u
	}
	return nil
}

// MustGetUnitOfWork returns the UnitOfWork from context.
// Panics if missing - that indicates a programming error (middleware not installed).
func MustGetUnitOfWork(ctx context.Context) *UnitOfWork {
	u := GetUnitOfWork(ctx)
	if u == nil {
		panic("unit of work not found in context")
	}
	return u
}
