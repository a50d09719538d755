package exchange_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	infra_cache "github.com/hardline/storefront/infra/cache"
	"github.com/hardline/storefront/pkg/config"
	"github.com/hardline/storefront/pkg/domain"
	exchangesvc "github.com/hardline/storefront/pkg/service/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider is a testify mock for the quote provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) FetchRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockProvider) Name() string {
	return "mock-provider"
}

func testConfig() *config.ExchangeRate {
	return &config.ExchangeRate{
		CacheTTL:      time.Hour,
		DefaultRate:   1500,
		ReferenceCode: "USD",
		SecondaryCode: "LBP",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetRate_FetchesAndCaches(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	updated := time.Now()
	provider := &MockProvider{}
	provider.On("FetchRate", mock.Anything).Return(&domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "LBP",
		Rate:         89500,
		LastUpdated:  updated,
		Source:       "quote-api",
	}, nil).Once()

	svc := exchangesvc.New(provider, infra_cache.NewMemoryCache(cfg.CacheTTL), cfg, discardLogger())

	first := svc.GetRate(context.Background())
	require.NotNil(t, first)
	assert.InDelta(t, 89500.0, first.Rate, 1e-9)

	// Second call inside the TTL window must not hit the provider again and
	// must return the identical cached value.
	second := svc.GetRate(context.Background())
	require.NotNil(t, second)
	assert.InDelta(t, first.Rate, second.Rate, 1e-9)
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
	provider.AssertNumberOfCalls(t, "FetchRate", 1)
}

func TestGetRate_FallsBackToStaleValue(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.CacheTTL = 0 // every cached entry is immediately stale

	provider := &MockProvider{}
	provider.On("FetchRate", mock.Anything).Return(&domain.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "LBP",
		Rate:         89500,
		LastUpdated:  time.Now(),
		Source:       "quote-api",
	}, nil).Once()
	provider.On("FetchRate", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := exchangesvc.New(provider, infra_cache.NewMemoryCache(cfg.CacheTTL), cfg, discardLogger())

	first := svc.GetRate(context.Background())
	require.NotNil(t, first)
	assert.InDelta(t, 89500.0, first.Rate, 1e-9)

	stale := svc.GetRate(context.Background())
	require.NotNil(t, stale)
	assert.InDelta(t, 89500.0, stale.Rate, 1e-9)
	assert.Equal(t, "quote-api", stale.Source)
}

func TestGetRate_FallsBackToDefaultWhenNothingCached(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	provider := &MockProvider{}
	provider.On("FetchRate", mock.Anything).Return(nil, errors.New("timeout"))

	svc := exchangesvc.New(provider, infra_cache.NewMemoryCache(cfg.CacheTTL), cfg, discardLogger())

	rate := svc.GetRate(context.Background())
	require.NotNil(t, rate)
	assert.InDelta(t, 1500.0, rate.Rate, 1e-9)
	assert.Equal(t, "default", rate.Source)
	assert.Equal(t, "USD", rate.FromCurrency)
	assert.Equal(t, "LBP", rate.ToCurrency)
}

func TestGetRate_NilRateWithoutErrorFallsBackToDefault(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	provider := &MockProvider{}
	provider.On("FetchRate", mock.Anything).Return(nil, nil)

	svc := exchangesvc.New(provider, infra_cache.NewMemoryCache(cfg.CacheTTL), cfg, discardLogger())

	var rate *domain.ExchangeRate
	require.NotPanics(t, func() { rate = svc.GetRate(context.Background()) })
	require.NotNil(t, rate)
	assert.Equal(t, "default", rate.Source)
	assert.InDelta(t, 1500.0, rate.Rate, 1e-9)
}

func TestGetRate_RejectsInvalidProviderRate(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	provider := &MockProvider{}
	provider.On("FetchRate", mock.Anything).Return(&domain.ExchangeRate{
		Rate: -3,
	}, nil)

	svc := exchangesvc.New(provider, infra_cache.NewMemoryCache(cfg.CacheTTL), cfg, discardLogger())

	rate := svc.GetRate(context.Background())
	require.NotNil(t, rate)
	assert.Equal(t, "default", rate.Source)
	assert.InDelta(t, 1500.0, rate.Rate, 1e-9)
}
