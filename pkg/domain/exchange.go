package domain

import "time"

// ExchangeRate is the number of secondary-currency units per one
// reference-currency unit, together with where and when it came from.
//
// Invariant: Rate > 0.
type ExchangeRate struct {
	FromCurrency string    `json:"from"`
	ToCurrency   string    `json:"to"`
	Rate         float64   `json:"rate"`
	LastUpdated  time.Time `json:"lastUpdated"`
	Source       string    `json:"source"`
}
