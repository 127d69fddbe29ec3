// Package domain defines the ledger entry types (incomes, expenses, assets,
// book notes, diary entries) and the schema metadata that drives the shared
// repository, use case and export pipeline.
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifebook/lifebook/internal/csvutil"
	"github.com/lifebook/lifebook/internal/database"
	"github.com/lifebook/lifebook/internal/listing"
)

// Entry is implemented by every owner-scoped ledger record. The pointer
// types (*Income, *Expense, ...) satisfy it.
type Entry interface {
	// EntryID returns the record's id.
	EntryID() uuid.UUID

	// EntryOwner returns the owning user's id.
	EntryOwner() uuid.UUID

	// SetIdentity assigns the id and owner. Called by the use case on
	// create; never from request input.
	SetIdentity(id uuid.UUID, owner uuid.UUID)

	// Validate checks the record's business rules.
	Validate() error
}

// Dimension is one group_by target of a stats request.
type Dimension[T Entry] struct {
	// Key extracts the bucket key for a record.
	Key func(record T) string

	// Chronological buckets sort by key ascending (time series); others
	// sort by descending total.
	Chronological bool
}

// Schema carries everything the generic repository, use case and handlers
// need to know about one resource. One value per resource, built in this
// package, shared by all layers.
type Schema[T Entry] struct {
	// Resource is the URL path segment and metrics label, e.g. "expenses".
	Resource string

	// Table is the store table name.
	Table string

	// FieldColumns are the resource's own columns, in insert order. They sit
	// between (id, user_id) and (created_at, updated_at) in every statement.
	FieldColumns []string

	// DateColumn is the natural-date column used for sorting.
	DateColumn string

	// FilterSpecs declare which query parameters the list endpoints accept.
	FilterSpecs []listing.FieldSpec

	// ValueColumns maps the field= parameter of the distinct-values endpoint
	// to a column. Only listed fields may be queried.
	ValueColumns map[string]string

	// Dimensions maps group_by= values of the stats endpoint to bucket key
	// extractors. Empty for resources without stats.
	Dimensions map[string]Dimension[T]

	// Amount extracts the monetary amount for stats sums. Nil for resources
	// that have no amount; their buckets carry counts only.
	Amount func(record T) decimal.Decimal

	// CSVFields define the export column order and cell rendering.
	CSVFields []csvutil.Field[T]

	// Scan builds a record from a select row. Column order: id, user_id,
	// FieldColumns..., created_at, updated_at.
	Scan func(row database.RowScanner) (T, error)

	// FieldArgs returns the bind values for FieldColumns, in the same order.
	FieldArgs func(record T) []any
}
