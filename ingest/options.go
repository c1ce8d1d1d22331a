package ingest

import (
	"log/slog"
	"time"

	"github.com/sig-0/policyrates/storage/types"
)

type Option func(c *Collector)

// WithLogger sets the collector logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// WithCountries sets the countries to collect, in output order
func WithCountries(list []types.Country) Option {
	return func(c *Collector) {
		c.countries = list
	}
}

// WithStrategies sets the live acquisition strategy registry.
// Countries without a registered strategy resolve from the
// fallback table
func WithStrategies(strategies map[types.Country]Strategy) Option {
	return func(c *Collector) {
		c.strategies = strategies
	}
}

// WithFallbacks sets the fallback observation table
func WithFallbacks(fallbacks map[types.Country]types.Observation) Option {
	return func(c *Collector) {
		c.fallbacks = fallbacks
	}
}

// WithReference sets the flag and currency reference tables used to
// enrich the collected records
func WithReference(flags, currencies map[types.Country]string) Option {
	return func(c *Collector) {
		c.flags = flags
		c.currencies = currencies
	}
}

// WithDelay sets the courtesy delay that follows each country's
// resolution
func WithDelay(delay time.Duration) Option {
	return func(c *Collector) {
		c.delay = delay
	}
}
