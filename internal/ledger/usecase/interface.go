// Package usecase implements the shared business logic for ledger entries:
// CRUD, the filter/paginate list pipeline, stats aggregation, distinct
// values and CSV export. One generic use case serves every resource.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/listing"
)

// EntryRepository defines the store operations the use case needs.
type EntryRepository[T domain.Entry] interface {
	Create(ctx context.Context, record T) error
	Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (T, error)
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, query listing.Query) ([]T, int, error)
	ListAll(ctx context.Context, ownerID uuid.UUID, filters []listing.Filter) ([]T, error)
	Distinct(ctx context.Context, ownerID uuid.UUID, column string) ([]string, error)
}

// ListOutput is one page of entries plus pagination metadata.
type ListOutput[T domain.Entry] struct {
	Items      []T
	TotalCount int
	TotalPages int
	Page       int
	Limit      int
}

// UseCase defines the business operations available on every ledger
// resource. All operations are scoped to the owning user.
type UseCase[T domain.Entry] interface {
	// Create validates the record, assigns identity and persists it.
	Create(ctx context.Context, ownerID uuid.UUID, record T) (T, error)

	// Get fetches one entry; missing or unowned entries are not-found.
	Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (T, error)

	// Update validates and fully replaces an entry's fields, then returns
	// the stored record.
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, record T) (T, error)

	// Delete removes one entry.
	Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error

	// List returns a filtered, sorted page of entries.
	List(ctx context.Context, ownerID uuid.UUID, params httputil.Params) (ListOutput[T], error)

	// Stats groups the filtered, unpaginated set in memory per the group_by
	// parameter.
	Stats(ctx context.Context, ownerID uuid.UUID, params httputil.Params) ([]listing.Bucket, error)

	// Values returns the distinct non-empty values of a filterable field.
	Values(ctx context.Context, ownerID uuid.UUID, field string) ([]string, error)

	// ExportCSV renders the filtered, unpaginated set as a CSV document.
	ExportCSV(ctx context.Context, ownerID uuid.UUID, params httputil.Params) (string, error)
}
