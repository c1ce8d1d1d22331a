package memory

import (
	"context"
	"sync"

	"github.com/sig-0/policyrates/storage/types"
)

type Storage struct {
	records []*types.Record

	mu sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) SaveDataset(_ context.Context, records []*types.Record) error {
	cp := cloneRecords(records)

	s.mu.Lock()
	s.records = cp // full replacement
	s.mu.Unlock()

	return nil
}

func (s *Storage) LatestDataset(_ context.Context) ([]*types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.records == nil {
		return nil, nil //nolint:nilnil // valid case, no run yet
	}

	return cloneRecords(s.records), nil
}

func cloneRecords(records []*types.Record) []*types.Record {
	out := make([]*types.Record, len(records))

	for i, r := range records {
		elem := *r
		out[i] = &elem
	}

	return out
}
