package customer

import (
	"context"
)

// Repository defines the interface for Customer persistence.
// All accessors are read-only: customers are managed outside the
// invoicing workflow.
type Repository interface {
	// GetByID retrieves a customer by ID. Returns NOT_FOUND if absent.
	GetByID(ctx context.Context, id int64) (*Customer, error)

	// FindByCity retrieves all customers in a city, ordered by last name then id.
	FindByCity(ctx context.Context, city string) ([]*Customer, error)

	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)
}
