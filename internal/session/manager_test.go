package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCreateAssignsID(t *testing.T) {
	m := NewManager(8, time.Minute)

	a := m.Create()
	b := m.Create()
	require.NotEmpty(t, a.ID())
	require.NotEmpty(t, b.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, m.Len())
}

func TestManagerGetOrCreate(t *testing.T) {
	m := NewManager(8, time.Minute)

	s := m.GetOrCreate("conversation-1")
	assert.Equal(t, "conversation-1", s.ID())

	same := m.GetOrCreate("conversation-1")
	assert.Same(t, s, same)

	fresh := m.GetOrCreate("")
	assert.NotEmpty(t, fresh.ID())
	assert.NotEqual(t, "conversation-1", fresh.ID())
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(8, time.Minute)
	_, ok := m.Get("nope")
	assert.False(t, ok)
}

func TestManagerEvictsOldest(t *testing.T) {
	m := NewManager(2, time.Minute)

	m.GetOrCreate("a")
	m.GetOrCreate("b")
	m.GetOrCreate("c")

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get("a")
	assert.False(t, ok, "oldest session should be evicted")
	_, ok = m.Get("c")
	assert.True(t, ok)
}

func TestManagerAccessRefreshesLRUOrder(t *testing.T) {
	m := NewManager(2, time.Minute)

	m.GetOrCreate("a")
	m.GetOrCreate("b")
	_, ok := m.Get("a") // touch a so b becomes oldest
	require.True(t, ok)
	m.GetOrCreate("c")

	_, ok = m.Get("a")
	assert.True(t, ok)
	_, ok = m.Get("b")
	assert.False(t, ok)
}

func TestManagerTTLExpiry(t *testing.T) {
	m := NewManager(8, 10*time.Millisecond)

	s := m.GetOrCreate("a")
	s.StoreSummary("stale")
	time.Sleep(25 * time.Millisecond)

	_, ok := m.Get("a")
	assert.False(t, ok, "expired session must not be returned")

	assert.Equal(t, 0, m.Len())
}

func TestManagerCleanExpired(t *testing.T) {
	m := NewManager(8, 10*time.Millisecond)

	m.GetOrCreate("a")
	m.GetOrCreate("b")
	time.Sleep(25 * time.Millisecond)
	m.GetOrCreate("c")

	removed := m.CleanExpired()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, m.Len())
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(8, time.Minute)
	m.GetOrCreate("a")
	m.Delete("a")
	m.Delete("a") // deleting twice is fine

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}
