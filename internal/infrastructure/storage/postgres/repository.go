package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
)

// Repository provides generic CRUD over one table.
//
// Reads execute immediately against the pool. Writes are staged on the owning
// UnitOfWork and run inside a single transaction when SaveChanges is called.
// Column lists come from the entity's db struct tags.
type Repository[T entity.Entity] struct {
	uow        *UnitOfWork
	table      string
	selectCols []string
	newFn      func() T
}

// repositoryFor returns the memoized repository for the table, creating it on
// first use.
func repositoryFor[T entity.Entity](u *UnitOfWork, table string, newFn func() T) *Repository[T] {
	if r, ok := u.repos[table]; ok {
		return r.(*Repository[T])
	}
	r := &Repository[T]{
		uow:        u,
		table:      table,
		selectCols: ExtractDBColumns[T](),
		newFn:      newFn,
	}
	u.repos[table] = r
	return r
}

// sqBuilder returns a squirrel builder with PostgreSQL placeholders.
func sqBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (r *Repository[T]) Builder() sq.StatementBuilderType {
	return sqBuilder()
}

// Table returns the table this repository works with.
func (r *Repository[T]) Table() string {
	return r.table
}

// GetAll returns every row in the table ordered by id.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	query, args, err := r.Builder().
		Select(r.selectCols...).
		From(r.table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var items []T
	if err := pgxscan.Select(ctx, r.uow.querier(), &items, query, args...); err != nil {
		return nil, fmt.Errorf("select from %s: %w", r.table, err)
	}
	return items, nil
}

// GetByID returns the row with the given id, or a not-found error.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T

	query, args, err := r.Builder().
		Select(r.selectCols...).
		From(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("build select query: %w", err)
	}

	item := r.newFn()
	if err := pgxscan.Get(ctx, r.uow.querier(), item, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return zero, apperror.NewNotFound(r.table, id)
		}
		return zero, fmt.Errorf("select from %s by id: %w", r.table, err)
	}
	return item, nil
}

// Exists reports whether a row with the given id is present.
func (r *Repository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.Builder().
		Select("1").
		From(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var one int
	err = r.uow.querier().QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists on %s: %w", r.table, err)
	}
	return true, nil
}

// Create stages an insert. The generated id is assigned to the entity when
// SaveChanges executes the insert, so later staged operations in the same
// unit of work can read it.
func (r *Repository[T]) Create(ctx context.Context, item T) {
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		query, args, err := r.buildInsert(item)
		if err != nil {
			return 0, err
		}
		var id int64
		if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert into %s: %w", r.table, err)
		}
		item.SetID(id)
		return 1, nil
	})
}

// Update stages a full-row update. Every column is written with the entity's
// value at execution time. A missing row surfaces as a not-found error from
// SaveChanges.
func (r *Repository[T]) Update(ctx context.Context, item T) {
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		query, args, err := r.buildUpdate(item)
		if err != nil {
			return 0, err
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("update %s: %w", r.table, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, apperror.NewNotFound(r.table, item.EntityID())
		}
		return tag.RowsAffected(), nil
	})
}

// Delete checks existence immediately and reports false when the row is
// absent. When present, the delete is staged for the next SaveChanges and
// true is returned.
func (r *Repository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		query, args, err := r.buildDelete(id)
		if err != nil {
			return 0, err
		}
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("delete from %s: %w", r.table, err)
		}
		return tag.RowsAffected(), nil
	})
	return true, nil
}

// buildInsert produces INSERT ... RETURNING id from the entity's db-tagged
// fields, excluding the id column.
func (r *Repository[T]) buildInsert(item T) (string, []any, error) {
	values := StructToMap(item)
	delete(values, "id")

	query, args, err := r.Builder().
		Insert(r.table).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert query: %w", err)
	}
	return query, args, nil
}

// buildUpdate produces UPDATE ... WHERE id setting every non-id column.
func (r *Repository[T]) buildUpdate(item T) (string, []any, error) {
	values := StructToMap(item)
	delete(values, "id")

	query, args, err := r.Builder().
		Update(r.table).
		SetMap(values).
		Where(sq.Eq{"id": item.EntityID()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build update query: %w", err)
	}
	return query, args, nil
}

func (r *Repository[T]) buildDelete(id int64) (string, []any, error) {
	query, args, err := r.Builder().
		Delete(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build delete query: %w", err)
	}
	return query, args, nil
}
