// Package product defines the product store contract consumed by the
// catalog service.
package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/hardline/storefront/pkg/dto"
)

// Repository is the persistence contract for products. The pricing pipeline
// only reads; writes exist for catalog management.
type Repository interface {
	Create(ctx context.Context, create dto.ProductCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.ProductUpdate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductRead, error)

	// List returns one page of rows matching the query plus the total match
	// count before pagination.
	List(ctx context.Context, query dto.ListQuery) ([]*dto.ProductRead, int64, error)
}
