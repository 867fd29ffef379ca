// apps/solver/internal/store/memory.go
//
// In-memory implementations.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Sessions expire after a fixed TTL; expired entries read as ErrNotFound
//     and are dropped by Sweep.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// memory is a map-based Store.
type memory struct {
	mu       sync.RWMutex
	counts   map[string]int
	sources  map[string]int
	rejected map[string]struct{}
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		counts:   make(map[string]int),
		sources:  make(map[string]int),
		rejected: make(map[string]struct{}),
	}
}

func (m *memory) AddCounts(ctx context.Context, counts map[string]int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for w, n := range counts {
		m.counts[w] += n
	}
	return nil
}

func (m *memory) AllCounts(ctx context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int, len(m.counts))
	for w, n := range m.counts {
		out[w] = n
	}
	return out, nil
}

func (m *memory) WordCount(ctx context.Context, word string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counts[word], nil
}

func (m *memory) SourceSeen(ctx context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sources[name]
	return ok, nil
}

func (m *memory) RecordSource(ctx context.Context, name string, words int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[name] = words
	return nil
}

func (m *memory) RecordInvalid(ctx context.Context, word string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[word] = struct{}{}
	return nil
}

func (m *memory) LoadInvalid(ctx context.Context) (map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]struct{}, len(m.rejected))
	for w := range m.rejected {
		out[w] = struct{}{}
	}
	return out, nil
}

func (m *memory) Close() error { return nil }

// SessionEntry is one live solving session.
// Mu serialises guesses against the same session.
type SessionEntry struct {
	ID      string
	Session *solver.Session
	Expires time.Time

	Mu sync.Mutex
}

// SessionStore holds sessions by ID.
type SessionStore interface {
	Save(ctx context.Context, e *SessionEntry) error
	// Get returns ErrNotFound for unknown or expired IDs.
	Get(ctx context.Context, id string) (*SessionEntry, error)
	// Sweep drops expired sessions and reports how many were removed.
	Sweep(now time.Time) int
}

type sessions struct {
	mu      sync.RWMutex
	entries map[string]*SessionEntry
	now     func() time.Time
}

// NewSessionStore constructs an in-memory SessionStore.
func NewSessionStore() SessionStore {
	return newSessionStore(time.Now)
}

func newSessionStore(now func() time.Time) *sessions {
	return &sessions{entries: make(map[string]*SessionEntry), now: now}
}

func (s *sessions) Save(ctx context.Context, e *SessionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
	return nil
}

func (s *sessions) Get(ctx context.Context, id string) (*SessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.Expires) {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if !now.Before(e.Expires) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}
