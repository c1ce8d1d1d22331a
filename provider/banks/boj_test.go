package banks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sig-0/policyrates/storage/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBOJProvider_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(
				"Series,IR01\n2024/11,0.25\n2024/12,0.25\n2025/01,0.5\n",
			))
		},
	))
	defer srv.Close()

	p := NewBOJProvider(srv.URL, time.Second)

	observation, err := p.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t,
		&types.Observation{
			Rate:   0.5,
			Date:   "2025/01",
			Change: 0,
			Source: BOJSource,
		},
		observation,
	)
}

func TestBOJProvider_ParseCSV(t *testing.T) {
	t.Parallel()

	t.Run("last line wins", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("header,rate\n2024/11,0.25\n2024/12,0.5")
		require.NoError(t, err)

		assert.InDelta(t, 0.5, observation.Rate, 0.0001)
		assert.Equal(t, "2024/12", observation.Date)
		assert.Equal(t, BOJSource, observation.Source)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("header,rate\r\n2024/12,0.5\r\n")
		require.NoError(t, err)

		assert.InDelta(t, 0.5, observation.Rate, 0.0001)
		assert.Equal(t, "2024/12", observation.Date)
	})

	t.Run("extra columns ignored", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("h1,h2,h3\n2024/12,0.5,0.4")
		require.NoError(t, err)

		assert.InDelta(t, 0.5, observation.Rate, 0.0001)
	})

	t.Run("header only", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("Series,IR01\n")

		assert.Nil(t, observation)
		assert.ErrorIs(t, err, errInvalidCSV)
	})

	t.Run("missing rate column", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("header,rate\n2024/12")

		assert.Nil(t, observation)
		assert.ErrorIs(t, err, errInvalidCSV)
	})

	t.Run("empty rate value", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("header,rate\n2024/12, ")

		assert.Nil(t, observation)
		assert.ErrorIs(t, err, errInvalidRate)
	})

	t.Run("unparseable rate value", func(t *testing.T) {
		t.Parallel()

		observation, err := parseRateCSV("header,rate\n2024/12,n.a.")

		assert.Nil(t, observation)
		assert.Error(t, err)
	})
}
