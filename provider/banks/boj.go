package banks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sig-0/policyrates/storage/types"
)

var (
	errInvalidCSV  = errors.New("invalid CSV payload")
	errInvalidRate = errors.New("invalid rate")
)

var BOJSource types.Source = "BOJ CSV"

// BOJProvider fetches the Japanese policy rate from the Bank of Japan
// statistics CSV
type BOJProvider struct {
	client *http.Client
	url    string
}

// NewBOJProvider creates a new instance of the BOJ statistics provider
func NewBOJProvider(url string, timeout time.Duration) *BOJProvider {
	return &BOJProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *BOJProvider) Name() string {
	return "BOJ"
}

func (p *BOJProvider) Fetch(ctx context.Context) (*types.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch CSV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response: %w", err)
	}

	return parseRateCSV(string(body))
}

// parseRateCSV extracts the most recent observation from the
// statistics CSV, where the last line holds the latest month
func parseRateCSV(payload string) (*types.Observation, error) {
	lines := strings.Split(strings.TrimSpace(payload), "\n")
	if len(lines) < 2 {
		return nil, errInvalidCSV
	}

	// Date first, rate second; trailing columns are ignored
	fields := strings.Split(lines[len(lines)-1], ",")
	if len(fields) < 2 {
		return nil, errInvalidCSV
	}

	var (
		date    = strings.TrimSpace(fields[0])
		rateTxt = strings.TrimSpace(fields[1])
	)

	if rateTxt == "" {
		return nil, errInvalidRate
	}

	rate, err := strconv.ParseFloat(rateTxt, 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse rate %q: %w", rateTxt, err)
	}

	return &types.Observation{
		Rate:   rate,
		Date:   date,
		Change: 0,
		Source: BOJSource,
	}, nil
}
