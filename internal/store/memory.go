package store

import (
	"context"
	"sync"

	"github.com/i474232898/city-explorer/internal/explorer"
)

// MemoryStore is a concurrency-safe in-memory implementation of explorer.LocationStore.
// It is used when no database is configured; contents are lost on exit.
type MemoryStore struct {
	mu sync.RWMutex

	// key: search query, value: records in insertion order
	data   map[string][]explorer.LocationRecord
	nextID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]explorer.LocationRecord),
	}
}

// FindBySearchQuery returns the first record stored for query, or nil.
func (s *MemoryStore) FindBySearchQuery(_ context.Context, query string) (*explorer.LocationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.data[query]
	if !ok || len(records) == 0 {
		return nil, nil
	}
	rec := records[0]
	return &rec, nil
}

// Insert appends rec and returns its generated id. Like the SQL table without
// a unique index, inserting the same query twice keeps both rows.
func (s *MemoryStore) Insert(_ context.Context, rec explorer.LocationRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec.ID = s.nextID
	s.data[rec.SearchQuery] = append(s.data[rec.SearchQuery], rec)
	return rec.ID, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, records := range s.data {
		n += len(records)
	}
	return n
}
