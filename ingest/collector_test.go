package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sig-0/policyrates/provider/countries"
	"github.com/sig-0/policyrates/storage/mock"
	"github.com/sig-0/policyrates/storage/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_New(t *testing.T) {
	t.Parallel()

	t.Run("missing storage", func(t *testing.T) {
		t.Parallel()

		c, err := New(nil)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, errMissingStorage)
	})

	t.Run("no countries", func(t *testing.T) {
		t.Parallel()

		c, err := New(
			&mock.Storage{},
			WithCountries([]types.Country{}),
		)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, errNoCountries)
	})

	t.Run("duplicate country", func(t *testing.T) {
		t.Parallel()

		c, err := New(
			&mock.Storage{},
			WithCountries([]types.Country{"미국", "한국", "미국"}),
		)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, errDuplicateCountry)
	})

	t.Run("nil strategy", func(t *testing.T) {
		t.Parallel()

		c, err := New(
			&mock.Storage{},
			WithStrategies(map[types.Country]Strategy{
				"미국": nil,
			}),
		)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, errInvalidStrategy)
	})

	t.Run("unnamed strategy", func(t *testing.T) {
		t.Parallel()

		c, err := New(
			&mock.Storage{},
			WithStrategies(map[types.Country]Strategy{
				"미국": &mockStrategy{
					nameFn: func() string {
						return ""
					},
				},
			}),
		)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, errInvalidStrategy)
	})

	t.Run("valid collector", func(t *testing.T) {
		t.Parallel()

		c, err := New(&mock.Storage{})

		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestCollector_Run(t *testing.T) {
	t.Parallel()

	t.Run("defaults resolve the full fallback set", func(t *testing.T) {
		t.Parallel()

		var captured []*types.Record

		capturingStorage := &mock.Storage{
			SaveDatasetFn: func(_ context.Context, records []*types.Record) error {
				captured = records

				return nil
			},
		}

		c, err := New(capturingStorage)
		require.NoError(t, err)

		records, err := c.Run(context.Background())
		require.NoError(t, err)

		// Without live strategies, the entire default list resolves
		// from the fallback table
		require.Len(t, records, len(countries.DefaultList()))
		assert.Equal(t, captured, records)

		for index, country := range countries.DefaultList() {
			record := records[index]

			assert.Equal(t, country, record.Country)
			assert.NotEmpty(t, record.Flag)
			assert.NotEmpty(t, record.Currency)
			assert.Empty(t, record.Source)
		}

		first := records[0]

		assert.Equal(t, countries.US, first.Country)
		assert.InDelta(t, 5.25, first.Rate, 0.0001)
		assert.Equal(t, "2024-12-18", first.Date)
		assert.Equal(t, "USD", first.Currency)
	})

	t.Run("records follow configured order", func(t *testing.T) {
		t.Parallel()

		var (
			live = types.Observation{
				Rate:   4.5,
				Date:   "2025-01-29",
				Change: -0.25,
				Source: "FRED API",
			}

			list = []types.Country{"미국", "한국", "아틀란티스"}

			strategies = map[types.Country]Strategy{
				"미국": &mockStrategy{
					fetchFn: func(_ context.Context) (*types.Observation, error) {
						return &live, nil
					},
				},
			}

			fallbacks = map[types.Country]types.Observation{
				"한국": {
					Rate:   3,
					Date:   "2024-11-28",
					Change: -0.25,
				},
			}

			flags = map[types.Country]string{
				"미국": "🇺🇸",
				"한국": "🇰🇷",
			}

			currencies = map[types.Country]string{
				"미국": "USD",
				"한국": "KRW",
			}
		)

		c, err := New(
			&mock.Storage{},
			WithCountries(list),
			WithStrategies(strategies),
			WithFallbacks(fallbacks),
			WithReference(flags, currencies),
		)
		require.NoError(t, err)

		records, err := c.Run(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t,
			&types.Record{
				Country:  "미국",
				Flag:     "🇺🇸",
				Rate:     4.5,
				Date:     "2025-01-29",
				Change:   -0.25,
				Currency: "USD",
				Source:   "FRED API",
			},
			records[0],
		)

		assert.Equal(t,
			&types.Record{
				Country:  "한국",
				Flag:     "🇰🇷",
				Rate:     3,
				Date:     "2024-11-28",
				Change:   -0.25,
				Currency: "KRW",
			},
			records[1],
		)

		// No strategy, no fallback, no reference data -- the record
		// degrades to a flagged placeholder
		placeholder := records[2]

		assert.Equal(t, types.Country("아틀란티스"), placeholder.Country)
		assert.Equal(t, countries.DefaultFlag, placeholder.Flag)
		assert.Zero(t, placeholder.Rate)
		assert.Empty(t, placeholder.Currency)
		assert.Empty(t, placeholder.Source)
	})

	t.Run("save failure is propagated", func(t *testing.T) {
		t.Parallel()

		saveErr := errors.New("disk full")

		failingStorage := &mock.Storage{
			SaveDatasetFn: func(_ context.Context, _ []*types.Record) error {
				return saveErr
			},
		}

		c, err := New(
			failingStorage,
			WithCountries([]types.Country{"미국"}),
		)
		require.NoError(t, err)

		records, err := c.Run(context.Background())

		assert.Nil(t, records)
		assert.ErrorIs(t, err, saveErr)
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		t.Parallel()

		saveCalled := false

		trackingStorage := &mock.Storage{
			SaveDatasetFn: func(_ context.Context, _ []*types.Record) error {
				saveCalled = true

				return nil
			},
		}

		c, err := New(trackingStorage)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		records, err := c.Run(ctx)

		assert.Nil(t, records)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, saveCalled)
	})

	t.Run("courtesy delay paces the run", func(t *testing.T) {
		t.Parallel()

		var (
			delay = 20 * time.Millisecond
			list  = []types.Country{"미국", "한국", "일본"}
		)

		c, err := New(
			&mock.Storage{},
			WithCountries(list),
			WithDelay(delay),
		)
		require.NoError(t, err)

		start := time.Now()

		_, err = c.Run(context.Background())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, time.Since(start), time.Duration(len(list))*delay)
	})
}
