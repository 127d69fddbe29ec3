package listing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	category string
	month    string
	amount   decimal.Decimal
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var entries = []entry{
	{"food", "2026-01", amt("10.00")},
	{"rent", "2026-01", amt("1200.00")},
	{"food", "2026-02", amt("35.50")},
	{"transport", "2026-02", amt("60.00")},
	{"food", "2026-02", amt("4.50")},
}

func TestAggregate_CategoricalSortsByDescendingSum(t *testing.T) {
	buckets := Aggregate(entries,
		func(e entry) string { return e.category },
		func(e entry) decimal.Decimal { return e.amount },
		false)

	require.Len(t, buckets, 3)
	assert.Equal(t, "rent", buckets[0].Key)
	assert.Equal(t, "transport", buckets[1].Key)
	assert.Equal(t, "food", buckets[2].Key)

	assert.Equal(t, 3, buckets[2].Count)
	assert.True(t, buckets[2].Sum.Equal(amt("50.00")))
	assert.True(t, buckets[2].Average.Equal(amt("16.67")), "got %s", buckets[2].Average)
}

func TestAggregate_TimeBucketsSortChronologically(t *testing.T) {
	buckets := Aggregate(entries,
		func(e entry) string { return e.month },
		func(e entry) decimal.Decimal { return e.amount },
		true)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-01", buckets[0].Key)
	assert.Equal(t, "2026-02", buckets[1].Key)
	assert.True(t, buckets[0].Sum.Equal(amt("1210.00")))
	assert.Equal(t, 3, buckets[1].Count)
}

func TestAggregate_NilAmountCountsOnly(t *testing.T) {
	buckets := Aggregate(entries,
		func(e entry) string { return e.category },
		nil,
		false)

	require.Len(t, buckets, 3)
	// count-only: sorted by descending count, key ascending for ties
	assert.Equal(t, "food", buckets[0].Key)
	assert.Equal(t, 3, buckets[0].Count)
	assert.Equal(t, "rent", buckets[1].Key)
	assert.Equal(t, "transport", buckets[2].Key)
	assert.True(t, buckets[0].Sum.IsZero())
}

func TestAggregate_Empty(t *testing.T) {
	buckets := Aggregate(nil,
		func(e entry) string { return e.category },
		nil,
		false)
	assert.Empty(t, buckets)
}

func TestAggregate_EqualSumsTieBreakOnKey(t *testing.T) {
	equal := []entry{
		{"b", "", amt("5")},
		{"a", "", amt("5")},
	}
	buckets := Aggregate(equal,
		func(e entry) string { return e.category },
		func(e entry) decimal.Decimal { return e.amount },
		false)

	assert.Equal(t, "a", buckets[0].Key)
	assert.Equal(t, "b", buckets[1].Key)
}
