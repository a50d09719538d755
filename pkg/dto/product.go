// Package dto holds data transfer objects exchanged between the service and
// repository layers.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProductCreate carries the fields needed to create a product.
type ProductCreate struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	BaseCost    float64
	Stock       int
}

// ProductUpdate carries optional field updates; nil means "leave unchanged".
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	BaseCost    *float64
	Stock       *int
}

// ProductRead is a read-optimized projection of a product row. BaseCost is
// already resolved through the legacy dual-column scheme (base_cost
// preferred, legacy cost as fallback).
type ProductRead struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	BaseCost    float64   `json:"baseCost"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}
