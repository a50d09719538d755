package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product lookup finds no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidBaseCost is returned when a write carries a negative base cost.
	ErrInvalidBaseCost = errors.New("base cost must not be negative")

	// ErrInvalidMarkup is returned when an admin submits a negative markup.
	ErrInvalidMarkup = errors.New("markup percentage must not be negative")

	// ErrInvalidListQuery is returned for malformed listing parameters.
	ErrInvalidListQuery = errors.New("invalid list query")
)
