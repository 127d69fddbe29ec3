// Package repository provides the shared data persistence implementation for
// ledger entries. One generic repository serves every resource; the schema
// value supplies table names, columns and row scanning.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/database"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/listing"

	apperrors "github.com/lifebook/lifebook/internal/errors"
)

// SQLEntryRepository handles persistence for one ledger resource on either
// PostgreSQL or MySQL. Every query carries the owner predicate first.
type SQLEntryRepository[T domain.Entry] struct {
	db      *sql.DB
	dialect listing.Dialect
	schema  domain.Schema[T]
}

// NewSQLEntryRepository creates a repository for the given schema. The
// driver name ("postgres" or "mysql") selects the SQL dialect.
func NewSQLEntryRepository[T domain.Entry](db *sql.DB, driver string, schema domain.Schema[T]) *SQLEntryRepository[T] {
	return &SQLEntryRepository[T]{
		db:      db,
		dialect: listing.DialectFromDriver(driver),
		schema:  schema,
	}
}

// selectColumns is the column list matching schema.Scan's expected order.
func (r *SQLEntryRepository[T]) selectColumns() string {
	return "id, user_id, " + strings.Join(r.schema.FieldColumns, ", ") + ", created_at, updated_at"
}

// Create inserts a new entry. Identity must already be assigned.
func (r *SQLEntryRepository[T]) Create(ctx context.Context, record T) error {
	querier := database.GetTx(ctx, r.db)

	columns := append([]string{"id", "user_id"}, r.schema.FieldColumns...)
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = r.dialect.Placeholder(i + 1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, created_at, updated_at) VALUES (%s, NOW(), NOW())",
		r.schema.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	args := append([]any{record.EntryID(), record.EntryOwner()}, r.schema.FieldArgs(record)...)

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to create "+r.schema.Resource+" entry")
	}
	return nil
}

// Get retrieves a single entry scoped to its owner. A missing row and a row
// owned by someone else are both not-found.
func (r *SQLEntryRepository[T]) Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (T, error) {
	var zero T
	querier := database.GetTx(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE user_id = %s AND id = %s",
		r.selectColumns(), r.schema.Table, r.dialect.Placeholder(1), r.dialect.Placeholder(2))

	record, err := r.schema.Scan(querier.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.ErrEntryNotFound
		}
		return zero, apperrors.Wrap(err, "failed to get "+r.schema.Resource+" entry")
	}

	return record, nil
}

// Update replaces an entry's fields. Reports not-found via the affected row
// count instead of a prior read, so the ownership check and the write are a
// single statement.
func (r *SQLEntryRepository[T]) Update(ctx context.Context, record T) error {
	querier := database.GetTx(ctx, r.db)

	sets := make([]string, len(r.schema.FieldColumns))
	for i, column := range r.schema.FieldColumns {
		sets[i] = fmt.Sprintf("%s = %s", column, r.dialect.Placeholder(i+1))
	}
	n := len(sets)

	query := fmt.Sprintf("UPDATE %s SET %s, updated_at = NOW() WHERE user_id = %s AND id = %s",
		r.schema.Table, strings.Join(sets, ", "), r.dialect.Placeholder(n+1), r.dialect.Placeholder(n+2))

	args := append(r.schema.FieldArgs(record), record.EntryOwner(), record.EntryID())

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to update "+r.schema.Resource+" entry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete removes an entry scoped to its owner, reporting not-found via the
// affected row count.
func (r *SQLEntryRepository[T]) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = %s AND id = %s",
		r.schema.Table, r.dialect.Placeholder(1), r.dialect.Placeholder(2))

	result, err := querier.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete "+r.schema.Resource+" entry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// List returns one page of the owner's entries matching the query, plus the
// total matching count. Sorted by natural date descending, creation time as
// tie-break.
func (r *SQLEntryRepository[T]) List(ctx context.Context, ownerID uuid.UUID, query listing.Query) ([]T, int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := listing.WhereClause(r.dialect, "user_id", ownerID, query.Filters)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", r.schema.Table, where)
	var totalCount int
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count "+r.schema.Resource+" entries")
	}

	limitClause, limitArgs := listing.LimitOffsetClause(r.dialect, len(args), query.Limit, query.Offset())
	selectQuery := fmt.Sprintf("SELECT %s FROM %s %s %s %s",
		r.selectColumns(), r.schema.Table, where, listing.OrderByClause(r.schema.DateColumn), limitClause)

	records, err := r.queryRecords(ctx, querier, selectQuery, append(args, limitArgs...))
	if err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}

// ListAll returns every entry of the owner matching the filters, in list
// order. Used by the export and stats pipelines.
func (r *SQLEntryRepository[T]) ListAll(ctx context.Context, ownerID uuid.UUID, filters []listing.Filter) ([]T, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := listing.WhereClause(r.dialect, "user_id", ownerID, filters)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s",
		r.selectColumns(), r.schema.Table, where, listing.OrderByClause(r.schema.DateColumn))

	return r.queryRecords(ctx, querier, query, args)
}

// Distinct returns the owner's distinct non-empty values of a column, sorted
// ascending. The column must come from the schema's ValueColumns; callers
// validate the request field before reaching here.
func (r *SQLEntryRepository[T]) Distinct(ctx context.Context, ownerID uuid.UUID, column string) ([]string, error) {
	querier := database.GetTx(ctx, r.db)

	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE user_id = %s AND %s IS NOT NULL AND %s <> '' ORDER BY %s ASC",
		column, r.schema.Table, r.dialect.Placeholder(1), column, column, column)

	rows, err := querier.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list distinct "+r.schema.Resource+" values")
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan distinct value")
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate distinct values")
	}

	return values, nil
}

func (r *SQLEntryRepository[T]) queryRecords(ctx context.Context, querier database.Querier, query string, args []any) ([]T, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list "+r.schema.Resource+" entries")
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		record, err := r.schema.Scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan "+r.schema.Resource+" entry")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate "+r.schema.Resource+" entries")
	}

	return records, nil
}
