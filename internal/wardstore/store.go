// Package wardstore holds the latest reading for every known ward.
package wardstore

import (
	"sync"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
)

// Store is an in-memory ward repository. Wards keep the position of their
// first arrival so neighbor ranking breaks distance ties the same way on
// every snapshot. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	wards []domain.Ward
	index map[string]int
}

// New creates a Store seeded with wards. Later duplicates replace earlier ones.
func New(wards ...domain.Ward) *Store {
	s := &Store{index: make(map[string]int, len(wards))}
	for _, w := range wards {
		s.upsertLocked(w)
	}
	return s
}

// Upsert records w, replacing any previous reading with the same ID.
// It reports whether the ward was new.
func (s *Store) Upsert(w domain.Ward) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertLocked(w)
}

func (s *Store) upsertLocked(w domain.Ward) bool {
	if i, ok := s.index[w.ID]; ok {
		s.wards[i] = w
		return false
	}
	s.index[w.ID] = len(s.wards)
	s.wards = append(s.wards, w)
	return true
}

// Get returns the latest reading for id.
func (s *Store) Get(id string) (domain.Ward, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Ward{}, false
	}
	return s.wards[i], true
}

// Snapshot returns a copy of all wards in arrival order.
func (s *Store) Snapshot() []domain.Ward {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ward, len(s.wards))
	copy(out, s.wards)
	return out
}

// Len returns the number of wards held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wards)
}
