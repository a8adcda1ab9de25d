package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tripbudget/backend/internal/currency"
)

// DefaultURL is the public provider used when no other URL is configured.
const DefaultURL = "https://api.exchangerate-api.com/v4/latest"

// Provider retrieves a fresh rate table for a base currency.
type Provider interface {
	Fetch(ctx context.Context, base string) (Table, error)
}

// Fetcher retrieves rate tables from an exchangerate-api compatible HTTP endpoint.
type Fetcher struct {
	url    string
	client *http.Client
}

// providerResponse is the subset of the provider response that is used.
type providerResponse struct {
	Base  string         `json:"base"`
	Rates currency.Rates `json:"rates"`
}

// NewFetcher creates a Fetcher. Requests that take longer than timeout are aborted.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	if url == "" {
		url = DefaultURL
	}

	return &Fetcher{
		url: strings.TrimRight(url, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch requests the table for base from the provider.
func (f *Fetcher) Fetch(ctx context.Context, base string) (Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", f.url, base), nil)
	if err != nil {
		return Table{}, fmt.Errorf("creating exchange rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return Table{}, fmt.Errorf("requesting exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Table{}, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Table{}, fmt.Errorf("decoding exchange rates: %w", err)
	}

	if len(body.Rates) == 0 {
		return Table{}, ErrEmptyTable
	}

	return Table{
		Base:      base,
		Rates:     body.Rates,
		UpdatedAt: time.Now().UTC(),
	}, nil
}
