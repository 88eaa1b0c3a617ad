// Package agent implements the analysis orchestration: an Analyst that
// sequences the cost pipeline for a session and a Summarizer it delegates
// narrative writing to.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"firecost/internal/core"
	"firecost/internal/dataset"
	"firecost/internal/insights"
	"firecost/internal/session"
)

type (
	// AnalyzeRequest describes one analysis run.
	AnalyzeRequest struct {
		Year    int
		TopN    int
		Compact bool
	}

	// Analysis is the result of a pipeline run.
	Analysis struct {
		SessionID string
		Year      int
		Buckets   []core.AggregateBucket
		Report    insights.Report
		Narrative string
		Compacted bool
	}
)

// Analyst sequences load, aggregate, optional compaction and report
// building for a session, then stores the combined summary in the
// session's summary memory.
type Analyst struct {
	source     dataset.Source
	summarizer *Summarizer

	defaultYear int
	defaultTopN int
}

// Option configures an Analyst.
type Option func(*Analyst)

// WithDefaultYear sets the year used when a request does not name one.
// Non-positive years are ignored.
func WithDefaultYear(year int) Option {
	return func(a *Analyst) {
		if year > 0 {
			a.defaultYear = year
		}
	}
}

// WithDefaultTopN sets the compaction limit used when a request does not
// name one. Non-positive limits are ignored.
func WithDefaultTopN(topN int) Option {
	return func(a *Analyst) {
		if topN > 0 {
			a.defaultTopN = topN
		}
	}
}

// NewAnalyst creates an Analyst reading from the given source and
// delegating narratives to the given summarizer.
func NewAnalyst(source dataset.Source, summarizer *Summarizer, opts ...Option) *Analyst {
	a := &Analyst{
		source:      source,
		summarizer:  summarizer,
		defaultYear: dataset.DefaultYear,
		defaultTopN: insights.DefaultTopN,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline for one session. Zero-valued request
// fields fall back to the Analyst's configured defaults. When the session
// already holds an aggregation for the requested year, it is reused
// instead of recomputed.
func (a *Analyst) Analyze(ctx context.Context, s *session.Session, req AnalyzeRequest) (Analysis, error) {
	year := req.Year
	if year == 0 {
		year = a.defaultYear
	}
	topN := req.TopN
	if topN == 0 {
		topN = a.defaultTopN
	}

	var buckets []core.AggregateBucket
	if prevYear, prev, ok := s.LastAnalysis(); ok && prevYear == year {
		buckets = prev
		slog.InfoContext(ctx, "Reusing aggregation from session memory",
			"buckets", len(buckets), "year", year, "session_id", s.ID())
	} else {
		records := a.source.Load(year)
		slog.InfoContext(ctx, "Loaded cost records",
			"records", len(records), "year", year, "session_id", s.ID())

		buckets = insights.Aggregate(records)
		slog.InfoContext(ctx, "Aggregated cost records",
			"buckets", len(buckets), "session_id", s.ID())
		s.RememberAnalysis(year, buckets)
	}

	reported := buckets
	if req.Compact {
		compacted, err := insights.Compact(buckets, topN)
		if err != nil {
			return Analysis{}, fmt.Errorf("compact buckets: %w", err)
		}
		slog.InfoContext(ctx, "Compacted aggregation",
			"input_rows", len(buckets), "output_rows", len(compacted),
			"top_n", topN, "session_id", s.ID())
		reported = compacted
	}

	report, err := insights.BuildReport(reported)
	if err != nil {
		return Analysis{}, fmt.Errorf("build report: %w", err)
	}

	narrative := a.summarizer.Summarize(year, report)
	slog.InfoContext(ctx, "Summarizer produced narrative",
		"agent", a.summarizer.Name(), "chars", len(narrative), "session_id", s.ID())

	summary := strings.Join([]string{report.Table, report.Insights, narrative}, "\n\n")
	s.StoreSummary(summary)

	return Analysis{
		SessionID: s.ID(),
		Year:      year,
		Buckets:   reported,
		Report:    report,
		Narrative: narrative,
		Compacted: req.Compact,
	}, nil
}

// LastSummary reads the session's summary memory. The boolean is false
// when the session never stored a summary.
func (a *Analyst) LastSummary(ctx context.Context, s *session.Session) (string, bool) {
	summary, ok := s.LastSummary()
	if !ok {
		slog.InfoContext(ctx, "No summary stored yet", "session_id", s.ID())
		return "", false
	}
	slog.InfoContext(ctx, "Retrieved last summary",
		"chars", len(summary), "session_id", s.ID())
	return summary, true
}
