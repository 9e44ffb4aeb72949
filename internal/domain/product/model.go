// Package product provides the Product catalog and price resolution
// for invoicing.
package product

import (
	"facturier/internal/core/types"
)

// Product represents a sellable item with its current list price.
type Product struct {
	ID    int64       `db:"id" json:"id"`
	Name  string      `db:"name" json:"name"`
	Price types.Money `db:"price" json:"price"`
}
