// Package exchange defines the outbound contract for exchange-rate quote
// sources.
package exchange

import (
	"context"

	"github.com/hardline/storefront/pkg/domain"
)

// Provider fetches a live exchange rate from an external quote source.
type Provider interface {
	// FetchRate returns the current rate for the configured currency pair.
	// Implementations return an error on network failure, non-success
	// responses and malformed payloads; they never fabricate a rate.
	FetchRate(ctx context.Context) (*domain.ExchangeRate, error)

	// Name identifies the provider in logs.
	Name() string
}
