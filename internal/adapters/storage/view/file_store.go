package view

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "wrapped/internal/domain/view"
)

// FileStore implements Store as a single JSON array file, rewritten
// wholesale on every save. Durable across restarts on one machine; not safe
// under concurrent multi-process access (last full write wins).
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed view store at path. The file is created
// lazily on first save; a missing file reads as an empty collection.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get retrieves the entry for a code.
func (s *FileStore) Get(_ context.Context, code string) (domain.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return domain.Entry{}, false, err
	}
	for _, entry := range entries {
		if entry.Code == code {
			return entry, true, nil
		}
	}
	return domain.Entry{}, false, nil
}

// Save inserts or replaces the entry for its code, then rewrites the whole
// file.
func (s *FileStore) Save(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range entries {
		if entries[i].Code == entry.Code {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	return s.write(entries)
}

// List returns all entries, unordered.
func (s *FileStore) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]domain.Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read view file: %w", err)
	}
	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode view file: %w", err)
	}
	return entries, nil
}

func (s *FileStore) write(entries []domain.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode view file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write view file: %w", err)
	}
	return nil
}
