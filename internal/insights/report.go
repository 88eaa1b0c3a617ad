package insights

import (
	"fmt"
	"strconv"
	"strings"

	"firecost/internal/core"
)

// NoDataMessage is the user-facing fallback when there is nothing to report.
const NoDataMessage = "No cost data available."

type (
	// CategoryTotal is the summed cost of one category across all buckets.
	CategoryTotal struct {
		Category  string
		TotalCost float64
	}

	// Report is the tabular rendering of a bucket set plus derived insights.
	Report struct {
		Table          string
		Insights       string
		Max            core.AggregateBucket
		Min            core.AggregateBucket
		CategoryTotals []CategoryTotal
	}
)

// BuildReport renders buckets as a markdown table and derives the key
// insights: the largest and smallest bucket by total cost (ties go to the
// first bucket in input order) and per-category totals. Rows keep the
// input order. Empty input returns ErrNoData.
func BuildReport(buckets []core.AggregateBucket) (Report, error) {
	if len(buckets) == 0 {
		return Report{}, ErrNoData
	}

	lines := []string{
		"Region | Category | Total Cost ($) | Hours",
		"---|---|---|---",
	}
	for _, b := range buckets {
		lines = append(lines, fmt.Sprintf("%s | %s | %s | %.1f",
			b.Region, b.Category, FormatAmount(b.TotalCost), b.TotalHours))
	}

	max, min := buckets[0], buckets[0]
	for _, b := range buckets[1:] {
		if b.TotalCost > max.TotalCost {
			max = b
		}
		if b.TotalCost < min.TotalCost {
			min = b
		}
	}

	totals := categoryTotals(buckets)

	var parts []string
	for _, ct := range totals {
		parts = append(parts, fmt.Sprintf("%s ($%s)", ct.Category, FormatAmount(ct.TotalCost)))
	}

	insights := strings.Join([]string{
		"Key Insights:",
		fmt.Sprintf("- Largest bucket: %s / %s at $%s.", max.Region, max.Category, FormatAmount(max.TotalCost)),
		fmt.Sprintf("- Smallest bucket: %s / %s at $%s.", min.Region, min.Category, FormatAmount(min.TotalCost)),
		fmt.Sprintf("- By category: %s.", strings.Join(parts, ", ")),
	}, "\n")

	return Report{
		Table:          strings.Join(lines, "\n"),
		Insights:       insights,
		Max:            max,
		Min:            min,
		CategoryTotals: totals,
	}, nil
}

// categoryTotals sums bucket costs per category, in first-seen order.
func categoryTotals(buckets []core.AggregateBucket) []CategoryTotal {
	index := make(map[string]int, len(buckets))
	totals := make([]CategoryTotal, 0, len(buckets))
	for _, b := range buckets {
		i, seen := index[b.Category]
		if !seen {
			i = len(totals)
			index[b.Category] = i
			totals = append(totals, CategoryTotal{Category: b.Category})
		}
		totals[i].TotalCost += b.TotalCost
	}
	return totals
}

// FormatAmount renders a dollar amount with thousands separators and two
// decimals (e.g. "176,870.51").
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}
