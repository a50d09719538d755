// Package exchange resolves the current exchange rate for the storefront's
// currency pair, layering a TTL cache and an ordered fallback chain over the
// live quote provider.
package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/hardline/storefront/pkg/cache"
	"github.com/hardline/storefront/pkg/config"
	"github.com/hardline/storefront/pkg/domain"
	"github.com/hardline/storefront/pkg/provider/exchange"
)

// Service answers rate lookups without ever failing. Resolution order:
//
//  1. fresh cached rate
//  2. live fetch from the provider (cached on success)
//  3. stale last-known-good rate from the cache
//  4. the configured default constant
//
// Each branch is logged distinctly so operators can tell a healthy cache hit
// from a degraded fallback.
type Service struct {
	provider exchange.Provider
	cache    cache.RateCache
	cfg      *config.ExchangeRate
	logger   *slog.Logger
}

// New creates an exchange rate service.
func New(
	provider exchange.Provider,
	cache cache.RateCache,
	cfg *config.ExchangeRate,
	logger *slog.Logger,
) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
	}
}

// GetRate returns a usable exchange rate. It never returns an error: upstream
// failures degrade to the last known-good rate, then to the configured
// default.
func (s *Service) GetRate(ctx context.Context) *domain.ExchangeRate {
	key := s.cacheKey()

	if cached, fresh := s.cache.Get(key); fresh {
		s.logger.Debug("exchange rate served from cache",
			"rate", cached.Rate, "last_updated", cached.LastUpdated)
		return cached
	}

	rate, err := s.provider.FetchRate(ctx)
	if err == nil && validRate(rate) {
		s.cache.Set(key, rate)
		s.logger.Info("exchange rate refreshed from provider",
			"provider", s.provider.Name(), "rate", rate.Rate)
		return rate
	}
	if err != nil {
		s.logger.Warn("exchange rate fetch failed",
			"provider", s.provider.Name(), "error", err)
	} else {
		// rate may be nil here if the provider violates its contract.
		s.logger.Warn("exchange rate provider returned invalid rate",
			"provider", s.provider.Name(), "rate", rate)
	}

	if stale, _ := s.cache.Get(key); stale != nil {
		s.logger.Warn("serving stale exchange rate after fetch failure",
			"rate", stale.Rate, "last_updated", stale.LastUpdated)
		return stale
	}

	s.logger.Warn("no cached exchange rate available, using default",
		"rate", s.cfg.DefaultRate)
	return &domain.ExchangeRate{
		FromCurrency: s.cfg.ReferenceCode,
		ToCurrency:   s.cfg.SecondaryCode,
		Rate:         s.cfg.DefaultRate,
		Source:       "default",
	}
}

func (s *Service) cacheKey() string {
	return fmt.Sprintf("%s:%s", s.cfg.ReferenceCode, s.cfg.SecondaryCode)
}

func validRate(rate *domain.ExchangeRate) bool {
	return rate != nil &&
		rate.Rate > 0 &&
		!math.IsNaN(rate.Rate) &&
		!math.IsInf(rate.Rate, 0)
}
