package pricing_test

import (
	"math"
	"testing"

	"github.com/hardline/storefront/pkg/pricing"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		baseCost      float64
		markupPct     float64
		rate          float64
		wantReference float64
		wantSecondary float64
	}{
		{
			name:          "zero cost yields zero regardless of markup and rate",
			baseCost:      0,
			markupPct:     35,
			rate:          1000,
			wantReference: 0,
			wantSecondary: 0,
		},
		{
			name:          "no markup",
			baseCost:      100,
			markupPct:     0,
			rate:          1000,
			wantReference: 100.00,
			wantSecondary: 100000.00,
		},
		{
			name:          "standard markup",
			baseCost:      100,
			markupPct:     35,
			rate:          1000,
			wantReference: 135.00,
			wantSecondary: 135000.00,
		},
		{
			name:          "fractional cost rounds half-up at the cent",
			baseCost:      9.99,
			markupPct:     35,
			rate:          1,
			wantReference: 13.49, // 13.4865 -> 13.49
			wantSecondary: 13.49,
		},
		{
			name:          "half-cent rounds up",
			baseCost:      10.01,
			markupPct:     50,
			rate:          1,
			wantReference: 15.02, // 15.015 -> 15.02
			wantSecondary: 15.02,
		},
		{
			name:          "secondary derived from rounded reference",
			baseCost:      9.99,
			markupPct:     35,
			rate:          1000,
			wantReference: 13.49,
			wantSecondary: 13490.00, // 13.49 * 1000, not 13.4865 * 1000
		},
		{
			name:          "negative cost passes through",
			baseCost:      -10,
			markupPct:     10,
			rate:          2,
			wantReference: -11.00,
			wantSecondary: -22.00,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := pricing.Compute(tt.baseCost, tt.markupPct, tt.rate)
			assert.InDelta(t, tt.wantReference, got.PriceReference, 1e-9)
			assert.InDelta(t, tt.wantSecondary, got.PriceSecondary, 1e-9)
			assert.InDelta(t, tt.markupPct, got.MarkupApplied, 1e-9)
			assert.InDelta(t, tt.rate, got.RateApplied, 1e-9)
		})
	}
}

func TestComputeEchoesInputs(t *testing.T) {
	t.Parallel()
	got := pricing.Compute(50, 35, 89500)
	assert.InDelta(t, 35.0, got.MarkupApplied, 1e-9)
	assert.InDelta(t, 89500.0, got.RateApplied, 1e-9)
}

func TestComputeNonFiniteInputs(t *testing.T) {
	t.Parallel()
	nan := math.NaN()
	inf := math.Inf(1)

	t.Run("NaN cost does not panic and propagates", func(t *testing.T) {
		t.Parallel()
		var got pricing.DisplayPrice
		assert.NotPanics(t, func() { got = pricing.Compute(nan, 35, 1000) })
		assert.True(t, math.IsNaN(got.PriceReference))
		assert.True(t, math.IsNaN(got.PriceSecondary))
	})

	t.Run("NaN markup does not panic and propagates", func(t *testing.T) {
		t.Parallel()
		var got pricing.DisplayPrice
		assert.NotPanics(t, func() { got = pricing.Compute(100, nan, 1000) })
		assert.True(t, math.IsNaN(got.PriceReference))
		assert.True(t, math.IsNaN(got.MarkupApplied))
	})

	t.Run("infinite rate does not panic and propagates", func(t *testing.T) {
		t.Parallel()
		var got pricing.DisplayPrice
		assert.NotPanics(t, func() { got = pricing.Compute(100, 0, inf) })
		assert.InDelta(t, 100.0, got.PriceReference, 1e-9)
		assert.True(t, math.IsInf(got.PriceSecondary, 1))
	})
}
