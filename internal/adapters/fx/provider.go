package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/petitpas/storefront/internal/domain"
)

// Provider fetches exchange rates from an unauthenticated JSON endpoint.
// The response is keyed by the lowercase base currency:
//
//	{"date": "...", "mur": {"usd": 0.0215, "aud": 0.0327, ...}}
//
// The endpoint URL must contain a %s placeholder for the base code.
type Provider struct {
	urlTemplate string
	httpClient  *http.Client
}

func NewProvider(urlTemplate string, httpClient *http.Client) *Provider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	return &Provider{urlTemplate: urlTemplate, httpClient: httpClient}
}

func (p *Provider) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	base = strings.ToLower(base)
	url := fmt.Sprintf(p.urlTemplate, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch rates: unexpected status %d", resp.StatusCode)
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rate response: %w", err)
	}
	raw, ok := payload[base]
	if !ok {
		return nil, fmt.Errorf("rate response missing base %q", base)
	}

	var all map[string]float64
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode rate table: %w", err)
	}

	// Keep only displayable currencies; missing entries fall back to the
	// static table so the result is always complete.
	table := domain.FallbackRates.Clone()
	for code := range table {
		if rate, ok := all[strings.ToLower(code)]; ok && rate > 0 {
			table[code] = rate
		}
	}
	table[strings.ToUpper(base)] = 1
	return table, nil
}
