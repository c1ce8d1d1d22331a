package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sig-0/policyrates/storage/types"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	var (
		country types.Country = "미국"

		fallbacks = map[types.Country]types.Observation{
			country: {
				Rate:   5.25,
				Date:   "2024-12-18",
				Change: 0,
			},
		}
	)

	t.Run("live result used verbatim", func(t *testing.T) {
		t.Parallel()

		var (
			live = types.Observation{
				Rate:   4.5,
				Date:   "2025-01-29",
				Change: -0.25,
				Source: "FRED API",
			}

			strategy = &mockStrategy{
				fetchFn: func(_ context.Context) (*types.Observation, error) {
					return &live, nil
				},
			}
		)

		r := NewResolver(
			map[types.Country]Strategy{
				country: strategy,
			},
			fallbacks,
			nil,
		)

		assert.Equal(t, live, r.Resolve(context.Background(), country))
	})

	t.Run("fetch error degrades to fallback", func(t *testing.T) {
		t.Parallel()

		strategy := &mockStrategy{
			fetchFn: func(_ context.Context) (*types.Observation, error) {
				return nil, errors.New("upstream unreachable")
			},
		}

		r := NewResolver(
			map[types.Country]Strategy{
				country: strategy,
			},
			fallbacks,
			nil,
		)

		assert.Equal(t, fallbacks[country], r.Resolve(context.Background(), country))
	})

	t.Run("empty fetch degrades to fallback", func(t *testing.T) {
		t.Parallel()

		strategy := &mockStrategy{
			fetchFn: func(_ context.Context) (*types.Observation, error) {
				return nil, nil //nolint:nilnil // no live data available
			},
		}

		r := NewResolver(
			map[types.Country]Strategy{
				country: strategy,
			},
			fallbacks,
			nil,
		)

		assert.Equal(t, fallbacks[country], r.Resolve(context.Background(), country))
	})

	t.Run("unregistered country uses fallback", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil, fallbacks, nil)

		assert.Equal(t, fallbacks[country], r.Resolve(context.Background(), country))
	})

	t.Run("unknown country gets zero placeholder", func(t *testing.T) {
		t.Parallel()

		r := NewResolver(nil, nil, nil)

		observation := r.Resolve(context.Background(), "아틀란티스")

		assert.Zero(t, observation.Rate)
		assert.Zero(t, observation.Change)
		assert.Empty(t, observation.Source)
		assert.Equal(t, time.Now().UTC().Format(time.DateOnly), observation.Date)
	})
}
