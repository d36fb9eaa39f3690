package usage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps usage records in process memory. It backs deployments
// without Redis and anonymous owners; records reset on restart, which only
// ever errs in the user's favor.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// creates an in-memory usage store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
	}
}

// returns the owner's record for today, replacing any record from a previous
// day with a fresh one
func (s *MemoryStore) Read(ctx context.Context, ownerID string, now time.Time) (*Record, error) {
	s.mu.RLock()
	record, ok := s.records[ownerID]
	s.mu.RUnlock()

	if ok && record.SameDay(now) {
		copied := *record
		return &copied, nil
	}

	fresh := &Record{
		DayKey:       DayKey(now),
		FirstUsageAt: now,
	}

	s.mu.Lock()
	s.records[ownerID] = fresh
	s.mu.Unlock()

	copied := *fresh
	return &copied, nil
}

// increments the daily count and stamps the last transformation time
func (s *MemoryStore) RecordSuccess(ctx context.Context, ownerID string, now time.Time) error {
	record, err := s.Read(ctx, ownerID, now)
	if err != nil {
		return err
	}

	record.DailyCount++
	record.LastTransformationAt = now

	s.mu.Lock()
	s.records[ownerID] = record
	s.mu.Unlock()

	return nil
}
