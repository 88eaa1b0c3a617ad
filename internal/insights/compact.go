package insights

import (
	"sort"

	"firecost/internal/core"
)

// DefaultTopN is the compaction limit used when the caller does not ask
// for a specific one.
const DefaultTopN = 4

// Compact returns the topN buckets with the highest total cost, in
// cost-descending order. The sort is stable, so buckets with equal totals
// keep their original relative order. The input slice is never mutated;
// if topN exceeds the number of buckets, all buckets are returned.
func Compact(buckets []core.AggregateBucket, topN int) ([]core.AggregateBucket, error) {
	if topN < 1 {
		return nil, ErrInvalidTopN
	}

	sorted := make([]core.AggregateBucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalCost > sorted[j].TotalCost
	})

	if topN < len(sorted) {
		sorted = sorted[:topN]
	}
	return sorted, nil
}
