package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory recognition store with the same contract
// as the SQLite repository. It backs tests and runs without a database
// path; recognitions do not survive the process.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]Recognition
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Recognition)}
}

func (s *MemoryStore) Lookup(_ context.Context, fingerprint string) (*Recognition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.items[fingerprint]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

// Record keeps the first classification for a fingerprint; later calls
// for the same fingerprint are no-ops.
func (s *MemoryStore) Record(_ context.Context, rec Recognition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[rec.Fingerprint]; ok {
		return nil
	}
	s.items[rec.Fingerprint] = rec
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}

func (s *MemoryStore) Close() error { return nil }
