// Package listing implements the filter/sort/paginate/aggregate pipeline
// shared by every owner-scoped resource. Handlers declare which query
// parameters a resource accepts via FieldSpec lists; the package turns
// normalized parameters into store filters and pagination, and aggregates
// result sets in memory for statistics endpoints.
package listing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/lifebook/lifebook/internal/errors"
	"github.com/lifebook/lifebook/internal/httputil"
)

// Kind identifies how a query parameter value is interpreted.
type Kind int

const (
	// KindContains matches case-insensitive substrings on a text column.
	KindContains Kind = iota
	// KindDateFrom is an inclusive lower bound on a timestamp column.
	KindDateFrom
	// KindDateTo is an inclusive upper bound on a timestamp column.
	// Date-only values are normalized to the end of that day (UTC).
	KindDateTo
	// KindDecimalMin is an inclusive lower bound on a numeric column.
	KindDecimalMin
	// KindDecimalMax is an inclusive upper bound on a numeric column.
	KindDecimalMax
	// KindIntMin is an inclusive lower bound on an integer column.
	KindIntMin
	// KindIntMax is an inclusive upper bound on an integer column.
	KindIntMax
)

// FieldSpec binds one query parameter to a filterable column.
type FieldSpec struct {
	Param  string
	Column string
	Kind   Kind
}

// Op is a store comparison operator.
type Op int

const (
	OpContains Op = iota
	OpGte
	OpLte
)

// Filter is one conjunctive predicate of a list query. All filters are
// combined with AND; the owner predicate is added by the repository and is
// never expressible through a FieldSpec.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Query is the transient value object describing one list request.
type Query struct {
	Filters []Filter
	Page    int
	Limit   int
}

// Offset returns the record offset for the current page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseQuery builds a Query from normalized parameters. Pagination values
// are coerced to valid positive integers; malformed filter values (dates,
// numbers) are invalid-input errors.
func ParseQuery(params httputil.Params, specs []FieldSpec) (Query, error) {
	filters, err := ParseFilters(params, specs)
	if err != nil {
		return Query{}, err
	}

	page, limit := httputil.ParsePagination(params)

	return Query{Filters: filters, Page: page, Limit: limit}, nil
}

// ParseFilters extracts the filter predicates declared by specs from the
// request parameters. Unknown parameters are ignored; empty values do not
// produce filters.
func ParseFilters(params httputil.Params, specs []FieldSpec) ([]Filter, error) {
	var filters []Filter

	for _, spec := range specs {
		raw := params.Get(spec.Param)
		if raw == "" {
			continue
		}

		filter, err := spec.parse(raw)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}

	return filters, nil
}

func (s FieldSpec) parse(raw string) (Filter, error) {
	switch s.Kind {
	case KindContains:
		return Filter{Column: s.Column, Op: OpContains, Value: raw}, nil

	case KindDateFrom:
		ts, err := parseTime(raw, false)
		if err != nil {
			return Filter{}, invalidParam(s.Param, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
		}
		return Filter{Column: s.Column, Op: OpGte, Value: ts}, nil

	case KindDateTo:
		ts, err := parseTime(raw, true)
		if err != nil {
			return Filter{}, invalidParam(s.Param, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
		}
		return Filter{Column: s.Column, Op: OpLte, Value: ts}, nil

	case KindDecimalMin, KindDecimalMax:
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return Filter{}, invalidParam(s.Param, "must be a number")
		}
		return Filter{Column: s.Column, Op: boundOp(s.Kind == KindDecimalMin), Value: value}, nil

	case KindIntMin, KindIntMax:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Filter{}, invalidParam(s.Param, "must be an integer")
		}
		return Filter{Column: s.Column, Op: boundOp(s.Kind == KindIntMin), Value: value}, nil
	}

	return Filter{}, invalidParam(s.Param, "unsupported filter kind")
}

func boundOp(isMin bool) Op {
	if isMin {
		return OpGte
	}
	return OpLte
}

func invalidParam(param, reason string) error {
	return apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("%s: %s", param, reason))
}

// parseTime accepts a calendar date or a full RFC 3339 timestamp. Date-only
// upper bounds are normalized to 23:59:59.999 UTC so the range stays
// inclusive of the whole day.
func parseTime(raw string, endOfDay bool) (time.Time, error) {
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		ts = ts.UTC()
		if endOfDay {
			ts = ts.Add(24*time.Hour - time.Millisecond)
		}
		return ts, nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}
