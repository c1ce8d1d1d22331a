package ingest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sig-0/policyrates/storage/types"
)

// Resolver reconciles a single country's policy rate from the
// available sources, in strict precedence order
type Resolver struct {
	logger     *slog.Logger
	strategies map[types.Country]Strategy
	fallbacks  map[types.Country]types.Observation
}

// NewResolver creates a resolver over the given live strategy registry
// and fallback table. The logger may be nil
func NewResolver(
	strategies map[types.Country]Strategy,
	fallbacks map[types.Country]types.Observation,
	logger *slog.Logger,
) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Resolver{
		logger:     logger,
		strategies: strategies,
		fallbacks:  fallbacks,
	}
}

// Resolve determines the country's current rate. A live strategy
// result is used verbatim; without one the fallback table entry is
// used; without either, a zero rate effective today. Resolve never
// fails, so a single unreachable source cannot sink a collection run
func (r *Resolver) Resolve(ctx context.Context, country types.Country) types.Observation {
	if strategy, ok := r.strategies[country]; ok {
		observation, err := strategy.Fetch(ctx)

		switch {
		case err != nil:
			r.logger.Warn(
				"live fetch failed, using fallback",
				"country", country.String(),
				"strategy", strategy.Name(),
				"err", err,
			)
		case observation == nil:
			r.logger.Warn(
				"live fetch returned no data, using fallback",
				"country", country.String(),
				"strategy", strategy.Name(),
			)
		default:
			r.logger.Info(
				"live rate resolved",
				"country", country.String(),
				"strategy", strategy.Name(),
				"rate", observation.Rate,
			)

			return *observation
		}
	}

	if fallback, ok := r.fallbacks[country]; ok {
		return fallback
	}

	// Last resort, a zero rate effective today
	return types.Observation{
		Rate:   0,
		Date:   time.Now().UTC().Format(time.DateOnly),
		Change: 0,
	}
}
