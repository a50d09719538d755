// Package pricing derives display prices from stored base costs.
//
// A display price is computed in two steps: the base cost is uplifted by the
// global markup percentage and rounded to the cent, then the rounded
// reference price is converted to the secondary currency and rounded again.
// The reference price is rounded before the conversion on purpose: the
// secondary price must be derivable from the price the customer actually
// sees, not from an unrounded intermediate.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// DisplayPrice is the request-scoped pricing result for one product. It is
// never persisted. MarkupApplied and RateApplied echo the inputs so the
// presentation layer can show how a price was derived.
type DisplayPrice struct {
	PriceReference float64 `json:"priceReference"`
	PriceSecondary float64 `json:"priceSecondary"`
	MarkupApplied  float64 `json:"markupApplied"`
	RateApplied    float64 `json:"rateApplied"`
}

// Compute applies markup and currency conversion to a raw base cost.
//
//	priceReference = round2(baseCost * (1 + markupPct/100))
//	priceSecondary = round2(priceReference * rate)
//
// Rounding is half-up at the cent boundary. A zero base cost yields zero for
// both outputs. Negative base costs are not validated here; they propagate
// through the formula and are an upstream data-quality problem. The same
// holds for NaN and infinite inputs: decimal.NewFromFloat panics on
// non-finite values, so those flow through plain float arithmetic instead,
// producing non-finite outputs rather than failing the listing.
func Compute(baseCost, markupPct, rate float64) DisplayPrice {
	if !finite(baseCost) || !finite(markupPct) || !finite(rate) {
		ref := baseCost * (1 + markupPct/100)
		return DisplayPrice{
			PriceReference: ref,
			PriceSecondary: ref * rate,
			MarkupApplied:  markupPct,
			RateApplied:    rate,
		}
	}

	cost := decimal.NewFromFloat(baseCost)
	markup := decimal.NewFromFloat(markupPct)

	factor := one.Add(markup.Div(oneHundred))
	reference := cost.Mul(factor).Round(2)
	secondary := reference.Mul(decimal.NewFromFloat(rate)).Round(2)

	ref, _ := reference.Float64()
	sec, _ := secondary.Float64()
	return DisplayPrice{
		PriceReference: ref,
		PriceSecondary: sec,
		MarkupApplied:  markupPct,
		RateApplied:    rate,
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
