package session

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager keeps the live session population bounded: sessions sit in an
// LRU list with a TTL, so abandoned sessions age out and the map cannot
// grow without limit. Expiry extends on access, keeping active
// conversations alive.
type Manager struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type managerItem struct {
	session   *Session
	expiresAt time.Time
}

// NewManager creates a session manager holding at most maxSize sessions,
// each expiring ttl after its last access.
func NewManager(maxSize int, ttl time.Duration) *Manager {
	return &Manager{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Create starts a fresh session with a generated id.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString())
	m.insert(s)
	return s
}

// Get returns the session with the given id, refreshing its expiry.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, exists := m.items[id]
	if !exists {
		return nil, false
	}

	item := elem.Value.(*managerItem)
	if time.Now().After(item.expiresAt) {
		m.removeElement(elem)
		return nil, false
	}

	item.expiresAt = time.Now().Add(m.ttl)
	m.lru.MoveToFront(elem)
	return item.session, true
}

// GetOrCreate returns the session with the given id, creating it when the
// id is unknown or empty. An empty id always yields a new session with a
// generated id.
func (m *Manager) GetOrCreate(id string) *Session {
	if id == "" {
		return m.Create()
	}
	if s, ok := m.Get(id); ok {
		return s
	}
	s := newSession(id)
	m.insert(s)
	return s
}

// Delete removes a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, exists := m.items[id]; exists {
		m.removeElement(elem)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *Manager) insert(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := &managerItem{
		session:   s,
		expiresAt: time.Now().Add(m.ttl),
	}

	if elem, exists := m.items[s.ID()]; exists {
		elem.Value = item
		m.lru.MoveToFront(elem)
		return
	}

	elem := m.lru.PushFront(item)
	m.items[s.ID()] = elem

	if m.lru.Len() > m.maxSize {
		oldest := m.lru.Back()
		if oldest != nil {
			m.removeElement(oldest)
		}
	}
}

func (m *Manager) removeElement(elem *list.Element) {
	item := elem.Value.(*managerItem)
	delete(m.items, item.session.ID())
	m.lru.Remove(elem)
}

// CleanExpired removes all expired sessions and returns how many were
// dropped.
func (m *Manager) CleanExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	var toRemove []*list.Element
	for elem := m.lru.Front(); elem != nil; elem = elem.Next() {
		item := elem.Value.(*managerItem)
		if now.After(item.expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		m.removeElement(elem)
	}
	return len(toRemove)
}

// Janitor periodically drops expired sessions until stop is closed.
func (m *Manager) Janitor(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanExpired()
		case <-stop:
			return
		}
	}
}
