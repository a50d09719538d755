// Package provider contains outbound adapters for external services.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hardline/storefront/pkg/config"
	"github.com/hardline/storefront/pkg/domain"
	"github.com/hardline/storefront/pkg/provider/exchange"
)

// QuoteAPIProvider fetches the market sell rate from a public quote endpoint.
type QuoteAPIProvider struct {
	baseURL    string
	httpClient *http.Client
	cfg        *config.ExchangeRate
	logger     *slog.Logger
}

// quoteResponse is the expected payload from the quote endpoint. Any other
// shape is treated as a failed fetch.
type quoteResponse struct {
	Sell      float64 `json:"sell"`
	Buy       float64 `json:"buy"`
	UpdatedAt int64   `json:"updated_at"`
}

// NewQuoteAPIProvider creates a provider backed by the configured quote URL.
func NewQuoteAPIProvider(cfg *config.ExchangeRate, logger *slog.Logger) *QuoteAPIProvider {
	return &QuoteAPIProvider{
		baseURL: cfg.ApiUrl,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// FetchRate performs a single GET against the quote endpoint and maps the
// sell rate into a domain ExchangeRate.
func (p *QuoteAPIProvider) FetchRate(ctx context.Context) (*domain.ExchangeRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("quote API returned status %d: %s", resp.StatusCode, string(body))
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if quote.Sell <= 0 {
		return nil, fmt.Errorf("quote response carries no usable sell rate: %+v", quote)
	}

	lastUpdated := time.Now()
	if quote.UpdatedAt > 0 {
		lastUpdated = time.Unix(quote.UpdatedAt, 0)
	}

	p.logger.Debug("quote fetched", "sell", quote.Sell, "updated_at", lastUpdated)
	return &domain.ExchangeRate{
		FromCurrency: p.cfg.ReferenceCode,
		ToCurrency:   p.cfg.SecondaryCode,
		Rate:         quote.Sell,
		LastUpdated:  lastUpdated,
		Source:       p.Name(),
	}, nil
}

// Name identifies the provider in logs.
func (p *QuoteAPIProvider) Name() string {
	return "quote-api"
}

var _ exchange.Provider = (*QuoteAPIProvider)(nil)
