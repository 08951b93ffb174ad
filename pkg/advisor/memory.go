package advisor

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps duration history in process memory.
type MemoryStore struct {
	mu        sync.Mutex
	summaries map[string]Summary
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{summaries: make(map[string]Summary)}
}

// Record adds one observed duration for work.
func (s *MemoryStore) Record(_ context.Context, work string, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := s.summaries[work]
	summary.Count++
	summary.Total += d
	if d > summary.Max {
		summary.Max = d
	}
	s.summaries[work] = summary
	return nil
}

// Summary returns the aggregate history for work.
func (s *MemoryStore) Summary(_ context.Context, work string) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaries[work], nil
}

// Reset clears the history for work.
func (s *MemoryStore) Reset(_ context.Context, work string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.summaries, work)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
