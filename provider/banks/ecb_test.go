package banks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestECBProvider_Fetch(t *testing.T) {
	t.Parallel()

	var query map[string]string

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			query = map[string]string{
				"detail": r.URL.Query().Get("detail"),
				"format": r.URL.Query().Get("format"),
			}

			_, _ = w.Write([]byte(`{"dataSets": []}`))
		},
	))
	defer srv.Close()

	p := NewECBProvider(srv.URL, time.Second)

	observation, err := p.Fetch(context.Background())

	// The endpoint is reached, the SDMX mapping is the open part
	assert.Nil(t, observation)
	assert.ErrorIs(t, err, errNotImplemented)

	assert.Equal(t,
		map[string]string{
			"detail": "dataonly",
			"format": "jsondata",
		},
		query,
	)
}
