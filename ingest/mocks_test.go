package ingest

import (
	"context"

	"github.com/sig-0/policyrates/storage/types"
)

type (
	nameDelegate  func() string
	fetchDelegate func(context.Context) (*types.Observation, error)
)

type mockStrategy struct {
	nameFn  nameDelegate
	fetchFn fetchDelegate
}

func (m *mockStrategy) Name() string {
	if m.nameFn != nil {
		return m.nameFn()
	}

	return "mock strategy"
}

func (m *mockStrategy) Fetch(ctx context.Context) (*types.Observation, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}

	return nil, nil
}
