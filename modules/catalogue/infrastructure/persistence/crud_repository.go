// Package persistence implements the catalogue's storage layer: one generic
// CRUD repository instantiated per entity type from a static binding, the
// ownership resolver used by authorization, and the history writer backing
// the audit ledger. All storage errors are translated to the core's error
// kinds at this boundary.
package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/repo"
	"github.com/colophon-press/colophon/pkg/serrors"
)

// CrudRepository is the uniform data-access implementation shared by every
// entity type. T is the entity row, K its (possibly composite) key, F its
// sortable-field enum.
type CrudRepository[T any, K any, F comparable] struct {
	b        Binding[T, F]
	keyWhere KeyWhere[K]
}

func NewCrudRepository[T any, K any, F comparable](b Binding[T, F], keyWhere KeyWhere[K]) *CrudRepository[T, K, F] {
	return &CrudRepository[T, K, F]{b: b, keyWhere: keyWhere}
}

func (r *CrudRepository[T, K, F]) Binding() Binding[T, F] {
	return r.b
}

// buildFilters assembles the conjunction of scope and filter conditions.
// Publisher scope values are disjunctive among themselves (ANY), as are
// multiple values of one enum filter.
func (r *CrudRepository[T, K, F]) buildFilters(params repo.FindParams[F]) (joins []string, where []string, args []any) {
	b := r.b

	if len(params.Publishers) > 0 && b.PublisherCol != "" {
		joins = append(joins, b.OwnershipJoins...)
		args = append(args, params.Publishers)
		where = append(where, fmt.Sprintf("%s = ANY($%d)", b.PublisherCol, len(args)))
	}
	if params.ParentID != nil && b.ParentCol != "" {
		args = append(args, *params.ParentID)
		where = append(where, fmt.Sprintf("%s = $%d", b.ParentCol, len(args)))
	}
	if params.SecondParentID != nil && b.SecondParentCol != "" {
		args = append(args, *params.SecondParentID)
		where = append(where, fmt.Sprintf("%s = $%d", b.SecondParentCol, len(args)))
	}
	if params.Search != "" && len(b.SearchCols) > 0 {
		args = append(args, "%"+params.Search+"%")
		where = append(where, repo.ILikeAny(b.SearchCols, len(args)))
	}
	for _, f := range params.Filters {
		col, ok := b.FieldMap[f.Field]
		if !ok || len(f.Values) == 0 {
			continue
		}
		args = append(args, f.Values)
		where = append(where, fmt.Sprintf("%s = ANY($%d)", col, len(args)))
	}
	return joins, where, args
}

// List returns one deterministic page of entities matching the filters.
func (r *CrudRepository[T, K, F]) List(ctx context.Context, params repo.FindParams[F]) ([]T, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	joins, where, args := r.buildFilters(params)
	query := repo.Join(
		"SELECT "+r.b.selectColumns()+" FROM "+r.b.Table,
		strings.Join(joins, " "),
		repo.JoinWhere(where...),
		params.SortBy.ToSQL(r.b.FieldMap, r.b.Tiebreak),
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(serrors.FromDatabase(err), "failed to list "+r.b.Table)
	}
	result, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, errors.Wrap(serrors.FromDatabase(err), "failed to collect "+r.b.Table+" rows")
	}
	return result, nil
}

// Count mirrors List's filter semantics without ordering or pagination.
func (r *CrudRepository[T, K, F]) Count(ctx context.Context, params repo.FindParams[F]) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	joins, where, args := r.buildFilters(params)
	query := repo.Join(
		"SELECT COUNT(*) FROM "+r.b.Table,
		strings.Join(joins, " "),
		repo.JoinWhere(where...),
	)

	var count int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(serrors.FromDatabase(err), "failed to count "+r.b.Table)
	}
	return count, nil
}

func (r *CrudRepository[T, K, F]) Get(ctx context.Context, key K) (T, error) {
	var zero T
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return zero, err
	}

	cond, args := r.keyWhere(key, 1)
	query := repo.Join(
		"SELECT "+r.b.selectColumns()+" FROM "+r.b.Table,
		repo.JoinWhere(cond),
	)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return zero, errors.Wrap(serrors.FromDatabase(err), "failed to get "+r.b.Table)
	}
	result, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	return result, nil
}

// Create inserts the fully populated row and returns the stored copy.
func (r *CrudRepository[T, K, F]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return zero, err
	}

	query := repo.Insert(r.b.Table, r.b.Columns, r.b.Columns...)
	rows, err := tx.Query(ctx, query, r.b.Values(entity)...)
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	return stored, nil
}

// Update replaces the row's mutable columns and returns the stored copy.
func (r *CrudRepository[T, K, F]) Update(ctx context.Context, key K, entity T) (T, error) {
	var zero T
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return zero, err
	}

	cols := r.b.mutableColumns()
	values := r.b.valuesFor(entity, cols)
	cond, keyArgs := r.keyWhere(key, len(values)+1)
	values = append(values, keyArgs...)

	query := repo.Update(r.b.Table, cols, cond) + " RETURNING " + strings.Join(r.b.Columns, ", ")
	rows, err := tx.Query(ctx, query, values...)
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	return stored, nil
}

// Delete removes the row and returns its prior state.
func (r *CrudRepository[T, K, F]) Delete(ctx context.Context, key K) (T, error) {
	var zero T
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return zero, err
	}

	cond, args := r.keyWhere(key, 1)
	query := repo.Delete(r.b.Table, cond) + " RETURNING " + strings.Join(r.b.Columns, ", ")
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	deleted, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, serrors.FromDatabase(err)
	}
	return deleted, nil
}
