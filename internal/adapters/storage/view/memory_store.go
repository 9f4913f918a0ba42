package view

import (
	"context"
	"sync"

	domain "wrapped/internal/domain/view"
)

// MemoryStore implements Store in process memory. Volatile: the log is lost
// on restart, which is acceptable for ephemeral deployments. The mutex only
// keeps the map itself safe; the caller's Get-then-Save sequence can still
// lose an increment under concurrent views (see Store).
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
}

// NewMemoryStore creates an empty in-memory view store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]domain.Entry)}
}

// Get retrieves the entry for a code.
func (s *MemoryStore) Get(_ context.Context, code string) (domain.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[code]
	return entry, ok, nil
}

// Save inserts or replaces the entry for its code.
func (s *MemoryStore) Save(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Code] = entry
	return nil
}

// List returns all entries, unordered.
func (s *MemoryStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]domain.Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		results = append(results, entry)
	}
	return results, nil
}
