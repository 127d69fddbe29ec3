package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

// Record holds the identity and bookkeeping columns shared by every entry
// type. Embedding it satisfies the identity part of the Entry interface.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryID returns the record's id.
func (r *Record) EntryID() uuid.UUID { return r.ID }

// EntryOwner returns the owning user's id.
func (r *Record) EntryOwner() uuid.UUID { return r.UserID }

// SetIdentity assigns the id and owner.
func (r *Record) SetIdentity(id uuid.UUID, owner uuid.UUID) {
	r.ID = id
	r.UserID = owner
}

// NonNegativeAmount validates that a decimal amount is not negative.
var NonNegativeAmount = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a decimal amount")
	}
	if d.IsNegative() {
		return validation.NewError("validation_amount_negative", "must not be negative")
	}
	return nil
})

// formatDate renders a natural date for CSV export.
func formatDate(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}

// monthKey and yearKey are the time-series bucket keys for stats.
func monthKey(ts time.Time) string { return ts.UTC().Format("2006-01") }
func yearKey(ts time.Time) string  { return ts.UTC().Format("2006") }
