package domain

import (
	"github.com/lifebook/lifebook/internal/errors"
)

// Domain-specific errors for ledger operations.
var (
	// ErrEntryNotFound indicates the entry does not exist or belongs to a
	// different user. The two cases are deliberately indistinguishable.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "entry not found")

	// ErrUnknownField indicates a distinct-values request for a field the
	// resource does not expose.
	ErrUnknownField = errors.Wrap(errors.ErrInvalidInput, "unknown field")

	// ErrUnknownDimension indicates a stats request with an unsupported
	// group_by value.
	ErrUnknownDimension = errors.Wrap(errors.ErrInvalidInput, "unknown group_by dimension")
)
