package banks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPageProvider_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("extraction not implemented", func(t *testing.T) {
		t.Parallel()

		var userAgent string

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				userAgent = r.Header.Get("User-Agent")

				_, _ = w.Write([]byte(`<html><body><p>Bank Rate: 4.75%</p></body></html>`))
			},
		))
		defer srv.Close()

		p := NewPageProvider("Bank of England", srv.URL, time.Second)

		observation, err := p.Fetch(context.Background())

		assert.Nil(t, observation)
		assert.ErrorIs(t, err, errNotImplemented)
		assert.Equal(t, browserUserAgent, userAgent)
		assert.Equal(t, "Bank of England", p.Name())
	})

	t.Run("bad status degrades", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		))
		defer srv.Close()

		p := NewPageProvider("Bank of England", srv.URL, time.Second)

		observation, err := p.Fetch(context.Background())

		assert.Nil(t, observation)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errNotImplemented)
	})
}
