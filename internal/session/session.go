// Package session holds per-session analysis state. A Session is the
// explicit, caller-owned replacement for process-global summary memory:
// the orchestrating caller passes it through the pipeline and reads the
// last summary back from it.
package session

import (
	"sync"

	"firecost/internal/core"
)

// NoSummaryMessage is the user-facing fallback when a session has no
// stored summary yet.
const NoSummaryMessage = "I don't have a previous summary stored yet in this session."

// Session is the mutable state shared by one logical conversation:
// the last stored summary plus the last analysis inputs, so a caller can
// continue from a previous run without recomputing.
type Session struct {
	id string

	mu          sync.RWMutex
	summary     string
	hasSummary  bool
	lastYear    int
	lastBuckets []core.AggregateBucket
}

func newSession(id string) *Session {
	return &Session{id: id}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// StoreSummary overwrites the single summary slot. Last write wins.
func (s *Session) StoreSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	s.hasSummary = true
}

// LastSummary returns the stored summary, or false if none was ever stored.
func (s *Session) LastSummary() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary, s.hasSummary
}

// RememberAnalysis records the inputs of the most recent analysis.
func (s *Session) RememberAnalysis(year int, buckets []core.AggregateBucket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastYear = year
	s.lastBuckets = append([]core.AggregateBucket(nil), buckets...)
}

// LastAnalysis returns the year and buckets of the most recent analysis,
// or false if the session has not run one yet.
func (s *Session) LastAnalysis() (int, []core.AggregateBucket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastYear == 0 {
		return 0, nil, false
	}
	return s.lastYear, append([]core.AggregateBucket(nil), s.lastBuckets...), true
}
