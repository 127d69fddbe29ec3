package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/csvutil"
	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/listing"
)

// EntryUseCase is the schema-driven implementation of UseCase.
type EntryUseCase[T domain.Entry] struct {
	repo   EntryRepository[T]
	schema domain.Schema[T]
}

// NewEntryUseCase creates a use case for one resource.
func NewEntryUseCase[T domain.Entry](repo EntryRepository[T], schema domain.Schema[T]) *EntryUseCase[T] {
	return &EntryUseCase[T]{
		repo:   repo,
		schema: schema,
	}
}

// Create validates the record, assigns a fresh id and the owner, and
// persists it.
func (uc *EntryUseCase[T]) Create(ctx context.Context, ownerID uuid.UUID, record T) (T, error) {
	var zero T

	if err := record.Validate(); err != nil {
		return zero, err
	}

	record.SetIdentity(uuid.Must(uuid.NewV7()), ownerID)

	if err := uc.repo.Create(ctx, record); err != nil {
		return zero, err
	}

	// Read back so timestamps come from the store.
	return uc.repo.Get(ctx, ownerID, record.EntryID())
}

// Get fetches one entry scoped to its owner.
func (uc *EntryUseCase[T]) Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (T, error) {
	return uc.repo.Get(ctx, ownerID, id)
}

// Update validates and fully replaces an entry's fields. The id and owner
// come from the request path and principal, never from the body.
func (uc *EntryUseCase[T]) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, record T) (T, error) {
	var zero T

	if err := record.Validate(); err != nil {
		return zero, err
	}

	record.SetIdentity(id, ownerID)

	if err := uc.repo.Update(ctx, record); err != nil {
		return zero, err
	}

	return uc.repo.Get(ctx, ownerID, id)
}

// Delete removes one entry scoped to its owner.
func (uc *EntryUseCase[T]) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

// List returns a filtered, sorted page of the owner's entries.
func (uc *EntryUseCase[T]) List(ctx context.Context, ownerID uuid.UUID, params httputil.Params) (ListOutput[T], error) {
	query, err := listing.ParseQuery(params, uc.schema.FilterSpecs)
	if err != nil {
		return ListOutput[T]{}, err
	}

	items, totalCount, err := uc.repo.List(ctx, ownerID, query)
	if err != nil {
		return ListOutput[T]{}, err
	}

	return ListOutput[T]{
		Items:      items,
		TotalCount: totalCount,
		TotalPages: httputil.TotalPages(totalCount, query.Limit),
		Page:       query.Page,
		Limit:      query.Limit,
	}, nil
}

// Stats groups the filtered, unpaginated set in memory. The group_by
// parameter selects a dimension declared by the schema.
func (uc *EntryUseCase[T]) Stats(ctx context.Context, ownerID uuid.UUID, params httputil.Params) ([]listing.Bucket, error) {
	dimension, ok := uc.schema.Dimensions[params.Get("group_by")]
	if !ok {
		return nil, domain.ErrUnknownDimension
	}

	filters, err := listing.ParseFilters(params, uc.schema.FilterSpecs)
	if err != nil {
		return nil, err
	}

	records, err := uc.repo.ListAll(ctx, ownerID, filters)
	if err != nil {
		return nil, err
	}

	return listing.Aggregate(records, dimension.Key, uc.schema.Amount, dimension.Chronological), nil
}

// Values returns the distinct non-empty values of a filterable field,
// sorted ascending. Unknown fields are invalid input.
func (uc *EntryUseCase[T]) Values(ctx context.Context, ownerID uuid.UUID, field string) ([]string, error) {
	column, ok := uc.schema.ValueColumns[field]
	if !ok {
		return nil, domain.ErrUnknownField
	}

	return uc.repo.Distinct(ctx, ownerID, column)
}

// ExportCSV renders the filtered, unpaginated set as a CSV document in list
// order. An empty set yields the header row only.
func (uc *EntryUseCase[T]) ExportCSV(ctx context.Context, ownerID uuid.UUID, params httputil.Params) (string, error) {
	filters, err := listing.ParseFilters(params, uc.schema.FilterSpecs)
	if err != nil {
		return "", err
	}

	records, err := uc.repo.ListAll(ctx, ownerID, filters)
	if err != nil {
		return "", err
	}

	return csvutil.Marshal(records, uc.schema.CSVFields)
}
