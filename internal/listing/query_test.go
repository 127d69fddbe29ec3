package listing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lifebook/lifebook/internal/errors"
	"github.com/lifebook/lifebook/internal/httputil"
)

var testSpecs = []FieldSpec{
	{Param: "category", Column: "category", Kind: KindContains},
	{Param: "date_from", Column: "date", Kind: KindDateFrom},
	{Param: "date_to", Column: "date", Kind: KindDateTo},
	{Param: "amount_min", Column: "amount", Kind: KindDecimalMin},
	{Param: "amount_max", Column: "amount", Kind: KindDecimalMax},
	{Param: "rating_min", Column: "rating", Kind: KindIntMin},
}

func parse(t *testing.T, rawQuery string) (Query, error) {
	t.Helper()
	return ParseQuery(httputil.ParseQuery(rawQuery), testSpecs)
}

func TestParseQuery_NoParams(t *testing.T) {
	q, err := parse(t, "")
	require.NoError(t, err)

	assert.Empty(t, q.Filters)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0, q.Offset())
}

func TestParseQuery_ContainsFilter(t *testing.T) {
	q, err := parse(t, "category=groceries")
	require.NoError(t, err)

	require.Len(t, q.Filters, 1)
	assert.Equal(t, Filter{Column: "category", Op: OpContains, Value: "groceries"}, q.Filters[0])
}

func TestParseQuery_UnknownParamsIgnored(t *testing.T) {
	q, err := parse(t, "nonsense=1&category=food")
	require.NoError(t, err)
	assert.Len(t, q.Filters, 1)
}

func TestParseQuery_DateRange(t *testing.T) {
	q, err := parse(t, "date_from=2026-01-01&date_to=2026-01-31")
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)

	from := q.Filters[0].Value.(time.Time)
	to := q.Filters[1].Value.(time.Time)

	assert.Equal(t, OpGte, q.Filters[0].Op)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)

	// date-only upper bound covers the whole day
	assert.Equal(t, OpLte, q.Filters[1].Op)
	assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 999000000, time.UTC), to)
}

func TestParseQuery_RFC3339Timestamp(t *testing.T) {
	q, err := parse(t, "date_to=2026-02-01T10:30:00Z")
	require.NoError(t, err)

	to := q.Filters[0].Value.(time.Time)
	assert.Equal(t, time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC), to)
}

func TestParseQuery_AmountRange(t *testing.T) {
	q, err := parse(t, "amount_min=10.50&amount_max=99.99")
	require.NoError(t, err)
	require.Len(t, q.Filters, 2)

	assert.True(t, q.Filters[0].Value.(decimal.Decimal).Equal(decimal.RequireFromString("10.50")))
	assert.True(t, q.Filters[1].Value.(decimal.Decimal).Equal(decimal.RequireFromString("99.99")))
}

func TestParseQuery_IntBound(t *testing.T) {
	q, err := parse(t, "rating_min=4")
	require.NoError(t, err)
	assert.Equal(t, Filter{Column: "rating", Op: OpGte, Value: 4}, q.Filters[0])
}

func TestParseQuery_MalformedValuesAreInvalidInput(t *testing.T) {
	for _, rawQuery := range []string{
		"date_from=not-a-date",
		"date_to=31/01/2026",
		"amount_min=ten",
		"rating_min=4.5",
	} {
		_, err := parse(t, rawQuery)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput), "query %q", rawQuery)
	}
}

func TestParseQuery_EmptyValuesDoNotFilter(t *testing.T) {
	q, err := parse(t, "category=&amount_min=")
	require.NoError(t, err)
	assert.Empty(t, q.Filters)
}

func TestQueryOffset(t *testing.T) {
	q := Query{Page: 3, Limit: 20}
	assert.Equal(t, 40, q.Offset())
}
