package listing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bucket is one group of an aggregated result set.
type Bucket struct {
	Key     string          `json:"key"`
	Count   int             `json:"count"`
	Sum     decimal.Decimal `json:"sum"`
	Average decimal.Decimal `json:"average"`
}

// Aggregate groups an already-filtered, unpaginated record set in memory.
//
// key selects the group for a record; amount may be nil for resources
// without a monetary value, in which case only counts are produced.
// Chronological dimensions (time buckets) sort ascending by key; categorical
// dimensions sort by descending aggregate value with the key as tie-break.
func Aggregate[T any](records []T, key func(T) string, amount func(T) decimal.Decimal, chronological bool) []Bucket {
	index := make(map[string]*Bucket)
	var order []string

	for _, record := range records {
		k := key(record)
		bucket, ok := index[k]
		if !ok {
			bucket = &Bucket{Key: k}
			index[k] = bucket
			order = append(order, k)
		}
		bucket.Count++
		if amount != nil {
			bucket.Sum = bucket.Sum.Add(amount(record))
		}
	}

	buckets := make([]Bucket, 0, len(order))
	for _, k := range order {
		bucket := *index[k]
		if amount != nil && bucket.Count > 0 {
			bucket.Average = bucket.Sum.Div(decimal.NewFromInt(int64(bucket.Count))).Round(2)
		}
		buckets = append(buckets, bucket)
	}

	if chronological {
		sort.Slice(buckets, func(i, j int) bool {
			return buckets[i].Key < buckets[j].Key
		})
		return buckets
	}

	sort.Slice(buckets, func(i, j int) bool {
		if amount != nil {
			if cmp := buckets[i].Sum.Cmp(buckets[j].Sum); cmp != 0 {
				return cmp > 0
			}
		} else if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}
