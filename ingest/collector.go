package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rs/xid"
	"github.com/sig-0/iq"
	"github.com/sig-0/policyrates/provider/countries"
	"github.com/sig-0/policyrates/storage"
	"github.com/sig-0/policyrates/storage/types"
)

var (
	errMissingStorage   = errors.New("missing storage")
	errNoCountries      = errors.New("no countries configured")
	errDuplicateCountry = errors.New("duplicate country configured")
	errInvalidStrategy  = errors.New("invalid strategy")
)

// scheduledFetch is a single queued country resolution job
type scheduledFetch struct {
	country  types.Country
	position int
}

// Less keeps the job queue in publication order
func (a scheduledFetch) Less(b scheduledFetch) bool {
	return a.position < b.position
}

// Collector runs the rate acquisition pipeline: it resolves every
// configured country exactly once, in publication order, and persists
// the reconciled dataset
type Collector struct {
	logger  *slog.Logger
	storage storage.Storage

	resolver *Resolver

	countries  []types.Country
	strategies map[types.Country]Strategy
	fallbacks  map[types.Country]types.Observation

	flags      map[types.Country]string
	currencies map[types.Country]string

	delay time.Duration
}

// New creates the rate collector, backed by the given dataset storage
func New(recordStorage storage.Storage, opts ...Option) (*Collector, error) {
	c := &Collector{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		storage:    recordStorage,
		countries:  countries.DefaultList(),
		fallbacks:  countries.Fallbacks(),
		flags:      countries.Flags(),
		currencies: countries.Currencies(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.storage == nil {
		return nil, errMissingStorage
	}

	if len(c.countries) == 0 {
		return nil, errNoCountries
	}

	seen := make(map[types.Country]struct{}, len(c.countries))
	for _, country := range c.countries {
		if _, ok := seen[country]; ok {
			return nil, fmt.Errorf("%w: %s", errDuplicateCountry, country)
		}

		seen[country] = struct{}{}
	}

	for country, strategy := range c.strategies {
		if strategy == nil || strategy.Name() == "" {
			return nil, fmt.Errorf("%w: %s", errInvalidStrategy, country)
		}
	}

	c.resolver = NewResolver(c.strategies, c.fallbacks, c.logger)

	return c, nil
}

// Run executes a single collection pass. Every configured country is
// resolved strictly sequentially, the courtesy delay (if any) follows
// each resolution, and the assembled dataset is persisted before the
// records are returned
func (c *Collector) Run(ctx context.Context) ([]*types.Record, error) {
	logger := c.logger.With("run_id", xid.New().String())

	logger.Info(
		"collection run started",
		"countries", len(c.countries),
		"strategies", len(c.strategies),
	)

	// Queue up the resolution jobs, in publication order
	q := iq.NewQueue[scheduledFetch]()
	for position, country := range c.countries {
		q.Push(scheduledFetch{
			country:  country,
			position: position,
		})
	}

	records := make([]*types.Record, 0, len(c.countries))

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collection run interrupted: %w", err)
		}

		job := q.PopFront()

		observation := c.resolver.Resolve(ctx, job.country)

		flag, ok := c.flags[job.country]
		if !ok {
			flag = countries.DefaultFlag
		}

		records = append(records, &types.Record{
			Country:  job.country,
			Flag:     flag,
			Rate:     observation.Rate,
			Date:     observation.Date,
			Change:   observation.Change,
			Currency: c.currencies[job.country],
			Source:   observation.Source,
		})

		// Pause between countries to stay polite to the upstream APIs
		if c.delay > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("collection run interrupted: %w", ctx.Err())
			case <-time.After(c.delay):
			}
		}
	}

	if err := c.storage.SaveDataset(ctx, records); err != nil {
		return nil, fmt.Errorf("unable to save dataset: %w", err)
	}

	live := 0

	for _, record := range records {
		if record.Source != "" {
			live++
		}
	}

	logger.Info(
		"collection run complete",
		"countries", len(records),
		"live", live,
		"fallback", len(records)-live,
	)

	return records, nil
}
