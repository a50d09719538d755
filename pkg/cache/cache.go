// Package cache defines the exchange-rate cache contract.
package cache

import "github.com/hardline/storefront/pkg/domain"

// RateCache stores the last known-good exchange rate per currency pair.
//
// Unlike a plain expiring cache, entries outlive their TTL: an expired entry
// is still returned with fresh=false so callers can fall back to the stale
// value when the upstream source is unreachable.
type RateCache interface {
	// Get returns the cached rate for key, if any, and whether it is still
	// inside its TTL window.
	Get(key string) (rate *domain.ExchangeRate, fresh bool)

	// Set stores rate under key and restarts its TTL window.
	Set(key string, rate *domain.ExchangeRate)
}
