package product

import (
	"context"

	"facturier/internal/core/types"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	// GetByID retrieves a product by ID. Returns NOT_FOUND if absent.
	GetByID(ctx context.Context, id int64) (*Product, error)

	// ResolvePrice returns the current list price of a product.
	// Returns NOT_FOUND if the product does not exist.
	ResolvePrice(ctx context.Context, id int64) (types.Money, error)
}

// PriceResolver is the part of the catalog the invoicing workflow needs:
// the price of a product at the moment a line is written.
type PriceResolver interface {
	ResolvePrice(ctx context.Context, id int64) (types.Money, error)
}
