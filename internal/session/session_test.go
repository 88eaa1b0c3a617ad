package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firecost/internal/core"
)

func TestSessionSummaryLastWriteWins(t *testing.T) {
	s := newSession("s1")

	_, ok := s.LastSummary()
	assert.False(t, ok, "fresh session must have no summary")

	s.StoreSummary("X")
	got, ok := s.LastSummary()
	require.True(t, ok)
	assert.Equal(t, "X", got)

	s.StoreSummary("Y")
	got, ok = s.LastSummary()
	require.True(t, ok)
	assert.Equal(t, "Y", got)
}

func TestSessionStoreEmptySummary(t *testing.T) {
	s := newSession("s1")
	s.StoreSummary("")

	got, ok := s.LastSummary()
	assert.True(t, ok, "an empty summary still counts as stored")
	assert.Equal(t, "", got)
}

func TestSessionLastAnalysis(t *testing.T) {
	s := newSession("s1")

	_, _, ok := s.LastAnalysis()
	assert.False(t, ok)

	buckets := []core.AggregateBucket{
		{Region: "South", Category: "aircraft", TotalCost: 100},
	}
	s.RememberAnalysis(2024, buckets)

	year, got, ok := s.LastAnalysis()
	require.True(t, ok)
	assert.Equal(t, 2024, year)
	require.Len(t, got, 1)
	assert.Equal(t, buckets[0], got[0])

	// Returned slice is a copy; mutating it must not affect the session.
	got[0].TotalCost = -1
	_, again, _ := s.LastAnalysis()
	assert.Equal(t, 100.0, again[0].TotalCost)
}
