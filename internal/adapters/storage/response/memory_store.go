package response

import (
	"context"
	"sync"

	domain "wrapped/internal/domain/response"
)

// MemoryStore implements Store in process memory. Volatile: responses are
// lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int]domain.Entry
}

// NewMemoryStore creates an empty in-memory response store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int]domain.Entry)}
}

// Get retrieves the response for a member.
func (s *MemoryStore) Get(_ context.Context, memberID int) (domain.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[memberID]
	return entry, ok, nil
}

// Save inserts or replaces the response for its member.
func (s *MemoryStore) Save(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.MemberID] = entry
	return nil
}

// List returns all responses, unordered.
func (s *MemoryStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]domain.Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		results = append(results, entry)
	}
	return results, nil
}
