package banks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sig-0/policyrates/storage/types"
)

// browserUserAgent keeps scrape targets from rejecting the default
// Go client
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// PageProvider scrapes a central bank web page for the published
// policy rate
type PageProvider struct {
	client *http.Client
	name   string
	url    string
}

// NewPageProvider creates a new instance of the web page provider
func NewPageProvider(name, url string, timeout time.Duration) *PageProvider {
	return &PageProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		name: name,
		url:  url,
	}
}

func (p *PageProvider) Name() string {
	return p.name
}

func (p *PageProvider) Fetch(ctx context.Context) (*types.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	if _, err := goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, fmt.Errorf("unable to parse html: %w", err)
	}

	// TODO per-site extraction of the published rate
	return nil, errNotImplemented
}
