package mock

import (
	"context"

	"github.com/sig-0/policyrates/storage/types"
)

type (
	SaveDatasetDelegate   func(context.Context, []*types.Record) error
	LatestDatasetDelegate func(context.Context) ([]*types.Record, error)
)

type Storage struct {
	SaveDatasetFn   SaveDatasetDelegate
	LatestDatasetFn LatestDatasetDelegate
}

func (m *Storage) SaveDataset(ctx context.Context, records []*types.Record) error {
	if m.SaveDatasetFn != nil {
		return m.SaveDatasetFn(ctx, records)
	}

	return nil
}

func (m *Storage) LatestDataset(ctx context.Context) ([]*types.Record, error) {
	if m.LatestDatasetFn != nil {
		return m.LatestDatasetFn(ctx)
	}

	return nil, nil
}
