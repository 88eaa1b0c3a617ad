package agent

import (
	"fmt"
	"strings"

	"firecost/internal/insights"
)

// Summarizer turns a cost report into a short narrative for a general
// audience. It is the delegate the Analyst hands finished reports to.
type Summarizer struct {
	name string
}

// NewSummarizer creates the summary delegate.
func NewSummarizer() *Summarizer {
	return &Summarizer{name: "summary-agent"}
}

// Name returns the agent name used in logs.
func (s *Summarizer) Name() string {
	return s.name
}

// Summarize produces a 2-4 sentence narrative from a report.
func (s *Summarizer) Summarize(year int, report insights.Report) string {
	var total float64
	for _, ct := range report.CategoryTotals {
		total += ct.TotalCost
	}

	sentences := []string{
		fmt.Sprintf("Suppression costs for %d total $%s across %d region and category buckets.",
			year, insights.FormatAmount(total), bucketCount(report)),
		fmt.Sprintf("The largest single bucket is %s %s at $%s, while %s %s is the smallest at $%s.",
			report.Max.Region, report.Max.Category, insights.FormatAmount(report.Max.TotalCost),
			report.Min.Region, report.Min.Category, insights.FormatAmount(report.Min.TotalCost)),
	}

	if dominant, ok := dominantCategory(report); ok {
		sentences = append(sentences,
			fmt.Sprintf("%s is the dominant cost driver at $%s overall.",
				titleCase(dominant.Category), insights.FormatAmount(dominant.TotalCost)))
	}

	return strings.Join(sentences, " ")
}

// bucketCount recovers the row count from the table: total lines minus
// header and separator.
func bucketCount(report insights.Report) int {
	return strings.Count(report.Table, "\n") - 1
}

func dominantCategory(report insights.Report) (insights.CategoryTotal, bool) {
	if len(report.CategoryTotals) < 2 {
		return insights.CategoryTotal{}, false
	}
	top := report.CategoryTotals[0]
	for _, ct := range report.CategoryTotals[1:] {
		if ct.TotalCost > top.TotalCost {
			top = ct
		}
	}
	return top, true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
