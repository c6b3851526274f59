// Package rates resolves the effective rates table for a request:
// either the document behind the configured rates URL or the built-in
// default table when none is configured.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"outlay/internal/core"
	"outlay/internal/fx"
)

// ErrFetch reports a failed attempt to fetch or decode a configured
// rates document. The request is never retried; callers decide whether
// to re-invoke the operation.
var ErrFetch = errors.New("rates fetch failed")

var errNonPositiveRate = errors.New("rate must be positive")

// SettingsReader is the slice of the store the provider needs.
type SettingsReader interface {
	RatesURL(ctx context.Context) (url string, ok bool, err error)
}

// Provider resolves rates tables. It holds no cache: every Resolve call
// that finds a configured URL issues exactly one GET.
type Provider struct {
	settings   SettingsReader
	httpClient *http.Client
}

func NewProvider(settings SettingsReader, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Provider{
		settings: settings,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Resolve returns the rates table for one logical request. With no URL
// configured it returns the default table; with one configured it
// fetches and parses the document, surfacing any failure to the caller
// rather than falling back.
func (p *Provider) Resolve(ctx context.Context) (fx.Table, error) {
	url, ok, err := p.settings.RatesURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("read rates url: %w", err)
	}
	if !ok {
		return fx.DefaultTable(), nil
	}
	return p.fetch(ctx, url)
}

func (p *Provider) fetch(ctx context.Context, url string) (fx.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", ErrFetch, resp.StatusCode, url)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var doc map[string]json.Number
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode document: %v", ErrFetch, err)
	}

	table := make(fx.Table, len(doc))
	for code, raw := range doc {
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("%w: parse rate for %s: %v", ErrFetch, code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: %s: %v", ErrFetch, code, errNonPositiveRate)
		}
		table[core.Currency(code)] = rate
	}
	return table, nil
}
