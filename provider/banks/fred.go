package banks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sig-0/policyrates/storage/types"
)

var FREDSource types.Source = "FRED API"

// fredSeriesID is the Federal Funds Effective Rate series
const fredSeriesID = "DFF"

// fredResponse is the response from the FRED observations API
type fredResponse struct {
	Observations []fredObservation `json:"observations"`
}

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// FREDProvider fetches the US policy rate from the St. Louis Fed
// FRED API
type FREDProvider struct {
	client *http.Client
	url    string
	apiKey string
}

// NewFREDProvider creates a new instance of the FRED API provider
func NewFREDProvider(url, apiKey string, timeout time.Duration) *FREDProvider {
	return &FREDProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url:    url,
		apiKey: apiKey,
	}
}

func (p *FREDProvider) Name() string {
	return "FRED"
}

func (p *FREDProvider) Fetch(ctx context.Context) (*types.Observation, error) {
	// An unset key is a known no-result, skip the round trip
	if p.apiKey == "" {
		return nil, errMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create new GET request: %w", err)
	}

	q := req.URL.Query()
	q.Set("series_id", fredSeriesID)
	q.Set("api_key", p.apiKey)
	q.Set("file_type", "json")
	q.Set("limit", "1")
	q.Set("sort_order", "desc")
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	var apiResp fredResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	if len(apiResp.Observations) == 0 {
		return nil, fmt.Errorf("no observations in response")
	}

	latest := apiResp.Observations[0]

	// FRED publishes values as strings, missing days as "."
	rate, err := strconv.ParseFloat(strings.TrimSpace(latest.Value), 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse rate %q: %w", latest.Value, err)
	}

	return &types.Observation{
		Rate:   rate,
		Date:   latest.Date,
		Change: 0, // no preceding observation to diff against
		Source: FREDSource,
	}, nil
}
