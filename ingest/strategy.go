package ingest

import (
	"context"

	"github.com/sig-0/policyrates/storage/types"
)

// Strategy is a single country's live rate acquisition method
type Strategy interface {
	// Name returns the human-readable name of the strategy
	Name() string

	// Fetch attempts to acquire the country's current policy rate.
	// A nil observation or an error both mean "no result"; the caller
	// degrades to fallback data and never aborts on either
	Fetch(context.Context) (*types.Observation, error)
}
