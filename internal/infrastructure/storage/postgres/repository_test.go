package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
)

func newTestUoW() *UnitOfWork {
	return &UnitOfWork{repos: make(map[string]any)}
}

// emptyStore answers every read as an empty table.
type emptyStore struct{}

func (emptyStore) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (emptyStore) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return emptyRows{}, nil
}

func (emptyStore) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestRepositoryFor_Memoizes(t *testing.T) {
	u := newTestUoW()

	first := u.Products()
	second := u.Products()

	assert.Same(t, first, second)
	assert.Len(t, u.repos, 1)
}

func TestRepositoryFor_SeparateTables(t *testing.T) {
	u := newTestUoW()

	u.Products()
	u.Categories()
	u.Users()

	assert.Len(t, u.repos, 3)
}

func TestBuildInsert_ExcludesID(t *testing.T) {
	u := newTestUoW()
	repo := u.Categories()

	sql, args, err := repo.buildInsert(&entity.Category{ID: 99, Name: "Books"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO categories (name) VALUES ($1) RETURNING id", sql)
	assert.Equal(t, []any{"Books"}, args)
}

func TestBuildInsert_ProductColumns(t *testing.T) {
	u := newTestUoW()
	repo := u.Products()

	price := decimal.RequireFromString("10.50")
	sql, args, err := repo.buildInsert(&entity.Product{
		Name:       "Widget",
		Price:      price,
		CategoryID: 2,
	})
	require.NoError(t, err)

	// squirrel's SetMap emits columns in sorted order.
	assert.Equal(t,
		"INSERT INTO products (category_id,image_url,name,price) VALUES ($1,$2,$3,$4) RETURNING id",
		sql)
	assert.Equal(t, []any{int64(2), "", "Widget", price}, args)
}

func TestBuildUpdate_AllColumnsByID(t *testing.T) {
	u := newTestUoW()
	repo := u.Categories()

	sql, args, err := repo.buildUpdate(&entity.Category{ID: 5, Name: "Updated"})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE categories SET name = $1 WHERE id = $2", sql)
	assert.Equal(t, []any{"Updated", int64(5)}, args)
}

func TestBuildDelete(t *testing.T) {
	u := newTestUoW()
	repo := u.Categories()

	sql, args, err := repo.buildDelete(42)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM categories WHERE id = $1", sql)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestCreate_StagesOperation(t *testing.T) {
	u := newTestUoW()
	ctx := context.Background()

	u.Categories().Create(ctx, &entity.Category{Name: "Books"})
	u.Categories().Create(ctx, &entity.Category{Name: "Games"})

	assert.Equal(t, 2, u.Pending())
}

func TestUpdate_StagesOperation(t *testing.T) {
	u := newTestUoW()
	ctx := context.Background()

	u.Categories().Update(ctx, &entity.Category{ID: 1, Name: "Books"})

	assert.Equal(t, 1, u.Pending())
}

func TestLink_StagesCallback(t *testing.T) {
	u := newTestUoW()

	u.Link(func() {})

	assert.Equal(t, 1, u.Pending())
}

func TestDelete_MissingRow(t *testing.T) {
	u := newTestUoW()
	u.reader = emptyStore{}

	deleted, err := u.Products().Delete(context.Background(), 42)

	require.NoError(t, err)
	assert.False(t, deleted)
	// Nothing was staged, so SaveChanges has nothing to commit.
	assert.Zero(t, u.Pending())
}

func TestGetByID_MissingRow(t *testing.T) {
	u := newTestUoW()
	u.reader = emptyStore{}

	_, err := u.Products().GetByID(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSaveChanges_NothingStaged(t *testing.T) {
	u := newTestUoW()

	affected, err := u.SaveChanges(context.Background())

	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestUnitOfWorkContext(t *testing.T) {
	u := newTestUoW()
	ctx := WithUnitOfWork(context.Background(), u)

	assert.Same(t, u, GetUnitOfWork(ctx))
	assert.Same(t, u, MustGetUnitOfWork(ctx))
	assert.Nil(t, GetUnitOfWork(context.Background()))
	assert.Panics(t, func() { MustGetUnitOfWork(context.Background()) })
}
