package storage

import (
	"context"

	"github.com/sig-0/policyrates/storage/types"
)

// Storage is an abstraction over the reconciled rate dataset
type Storage interface {
	// SaveDataset persists the given dataset, fully replacing the
	// previously saved one
	SaveDataset(context.Context, []*types.Record) error

	// LatestDataset fetches the most recently saved dataset, or nil
	// if nothing has been saved yet
	LatestDataset(context.Context) ([]*types.Record, error)
}
