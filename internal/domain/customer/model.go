// Package customer provides the Customer catalog: the parties invoices
// are issued to. Read-only from the invoicing workflow's point of view.
package customer

import (
	"context"

	"facturier/internal/core/apperror"
)

// Customer represents a customer record.
// The identifier is assigned by storage (BIGSERIAL).
type Customer struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Street    string `db:"street" json:"street,omitempty"`
	City      string `db:"city" json:"city,omitempty"`
}

// Validate checks entity invariants.
func (c *Customer) Validate(ctx context.Context) error {
	if c.LastName == "" {
		return apperror.NewValidation("last name is required").
			WithDetail("field", "lastName")
	}
	return nil
}

// FullName returns the display name.
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
