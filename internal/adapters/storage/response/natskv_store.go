package response

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	domain "wrapped/internal/domain/response"
)

const kvKey = "responses"

// NATSKVStore implements Store on a JetStream key-value bucket. The whole
// collection lives as one JSON array under a single key; every save puts a
// fresh copy of the array.
type NATSKVStore struct {
	kv nats.KeyValue
}

// NewNATSKVStore creates a response store backed by the given bucket.
func NewNATSKVStore(kv nats.KeyValue) *NATSKVStore {
	return &NATSKVStore{kv: kv}
}

// Get retrieves the response for a member.
func (s *NATSKVStore) Get(_ context.Context, memberID int) (domain.Entry, bool, error) {
	entries, err := s.load()
	if err != nil {
		return domain.Entry{}, false, err
	}
	for _, entry := range entries {
		if entry.MemberID == memberID {
			return entry, true, nil
		}
	}
	return domain.Entry{}, false, nil
}

// Save inserts or replaces the response for its member and puts the full
// collection back.
func (s *NATSKVStore) Save(_ context.Context, entry domain.Entry) error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range entries {
		if entries[i].MemberID == entry.MemberID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode response collection: %w", err)
	}
	if _, err := s.kv.Put(kvKey, data); err != nil {
		return fmt.Errorf("put response collection: %w", err)
	}
	return nil
}

// List returns all responses, unordered.
func (s *NATSKVStore) List(_ context.Context) ([]domain.Entry, error) {
	return s.load()
}

func (s *NATSKVStore) load() ([]domain.Entry, error) {
	kve, err := s.kv.Get(kvKey)
	if err == nats.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get response collection: %w", err)
	}
	var entries []domain.Entry
	if err := json.Unmarshal(kve.Value(), &entries); err != nil {
		return nil, fmt.Errorf("decode response collection: %w", err)
	}
	return entries, nil
}
