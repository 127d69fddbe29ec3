package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/listing"
	"github.com/lifebook/lifebook/internal/metrics"
)

// entryUseCaseWithMetrics decorates a ledger UseCase with metrics
// instrumentation. The resource name becomes the metric label.
type entryUseCaseWithMetrics[T domain.Entry] struct {
	next     UseCase[T]
	metrics  metrics.BusinessMetrics
	resource string
}

// NewEntryUseCaseWithMetrics wraps a ledger UseCase with metrics recording.
func NewEntryUseCaseWithMetrics[T domain.Entry](
	useCase UseCase[T],
	m metrics.BusinessMetrics,
	resource string,
) UseCase[T] {
	return &entryUseCaseWithMetrics[T]{
		next:     useCase,
		metrics:  m,
		resource: resource,
	}
}

func (c *entryUseCaseWithMetrics[T]) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, c.resource, operation, status)
	c.metrics.RecordDuration(ctx, c.resource, operation, time.Since(start), status)
}

// Create records metrics for entry creation operations.
func (c *entryUseCaseWithMetrics[T]) Create(ctx context.Context, ownerID uuid.UUID, record T) (T, error) {
	start := time.Now()
	created, err := c.next.Create(ctx, ownerID, record)
	c.record(ctx, "create", start, err)
	return created, err
}

// Get records metrics for entry retrieval operations.
func (c *entryUseCaseWithMetrics[T]) Get(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (T, error) {
	start := time.Now()
	found, err := c.next.Get(ctx, ownerID, id)
	c.record(ctx, "get", start, err)
	return found, err
}

// Update records metrics for entry update operations.
func (c *entryUseCaseWithMetrics[T]) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, record T) (T, error) {
	start := time.Now()
	updated, err := c.next.Update(ctx, ownerID, id, record)
	c.record(ctx, "update", start, err)
	return updated, err
}

// Delete records metrics for entry deletion operations.
func (c *entryUseCaseWithMetrics[T]) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, ownerID, id)
	c.record(ctx, "delete", start, err)
	return err
}

// List records metrics for list operations.
func (c *entryUseCaseWithMetrics[T]) List(ctx context.Context, ownerID uuid.UUID, params httputil.Params) (ListOutput[T], error) {
	start := time.Now()
	output, err := c.next.List(ctx, ownerID, params)
	c.record(ctx, "list", start, err)
	return output, err
}

// Stats records metrics for stats operations.
func (c *entryUseCaseWithMetrics[T]) Stats(ctx context.Context, ownerID uuid.UUID, params httputil.Params) ([]listing.Bucket, error) {
	start := time.Now()
	buckets, err := c.next.Stats(ctx, ownerID, params)
	c.record(ctx, "stats", start, err)
	return buckets, err
}

// Values records metrics for distinct-value operations.
func (c *entryUseCaseWithMetrics[T]) Values(ctx context.Context, ownerID uuid.UUID, field string) ([]string, error) {
	start := time.Now()
	values, err := c.next.Values(ctx, ownerID, field)
	c.record(ctx, "values", start, err)
	return values, err
}

// ExportCSV records metrics for export operations.
func (c *entryUseCaseWithMetrics[T]) ExportCSV(ctx context.Context, ownerID uuid.UUID, params httputil.Params) (string, error) {
	start := time.Now()
	document, err := c.next.ExportCSV(ctx, ownerID, params)
	c.record(ctx, "export", start, err)
	return document, err
}
