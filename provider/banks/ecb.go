package banks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sig-0/policyrates/storage/types"
)

// ECBProvider fetches the euro area policy rate from the ECB
// statistical data warehouse
type ECBProvider struct {
	client *http.Client
	url    string
}

// NewECBProvider creates a new instance of the ECB data provider
func NewECBProvider(url string, timeout time.Duration) *ECBProvider {
	return &ECBProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *ECBProvider) Name() string {
	return "ECB"
}

func (p *ECBProvider) Fetch(ctx context.Context) (*types.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("detail", "dataonly")
	q.Set("format", "jsondata")
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	// TODO map the SDMX data message to an observation
	return nil, errNotImplemented
}
