package banks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sig-0/policyrates/storage/types"
)

// ecosStatCode is the Bank of Korea base rate statistic
const ecosStatCode = "010Y002"

// ECOSProvider fetches the Korean policy rate from the Bank of Korea
// ECOS statistics API
type ECOSProvider struct {
	client *http.Client
	url    string
	apiKey string
}

// NewECOSProvider creates a new instance of the ECOS API provider
func NewECOSProvider(url, apiKey string, timeout time.Duration) *ECOSProvider {
	return &ECOSProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url:    url,
		apiKey: apiKey,
	}
}

func (p *ECOSProvider) Name() string {
	return "ECOS"
}

func (p *ECOSProvider) Fetch(ctx context.Context) (*types.Observation, error) {
	if p.apiKey == "" {
		return nil, errMissingAPIKey
	}

	// The key and the whole query are embedded in the request path
	endpoint := fmt.Sprintf(
		"%s/StatisticSearch/%s/json/kr/1/1/%s/DD/20240101/20241231",
		p.url,
		p.apiKey,
		ecosStatCode,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

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

	// TODO map the StatisticSearch response schema to an observation
	return nil, errNotImplemented
}
