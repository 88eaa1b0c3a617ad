// Package insights implements the cost analysis pipeline: aggregation of
// raw cost records into (region, category) buckets, compaction of a bucket
// set to its highest-cost entries, and report building.
package insights

import (
	"errors"

	"firecost/internal/core"
)

var (
	// ErrNoData signals an empty bucket set where a report was expected.
	ErrNoData = errors.New("no cost data available")

	// ErrInvalidTopN signals a non-positive compaction limit.
	ErrInvalidTopN = errors.New("top_n must be at least 1")
)

// Aggregate groups records by (region, category), summing cost and hours.
// Buckets come out in first-seen key order and keys are unique. The sum of
// bucket totals always equals the sum of record costs. Empty input yields
// an empty result.
func Aggregate(records []core.CostRecord) []core.AggregateBucket {
	index := make(map[core.AggregateKey]int, len(records))
	buckets := make([]core.AggregateBucket, 0, len(records))

	for _, r := range records {
		key := r.Key()
		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, core.AggregateBucket{
				Region:   r.Region,
				Category: r.Category,
			})
		}
		buckets[i].TotalCost += r.Cost
		buckets[i].TotalHours += r.Hours
	}

	return buckets
}
