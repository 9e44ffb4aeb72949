// Package catalog_repo provides PostgreSQL implementations for the
// catalog repositories (customers, products).
package catalog_repo

import (
	"github.com/Masterminds/squirrel"

	"facturier/internal/infrastructure/storage/postgres"
)

// baseRepo holds what every catalog repository needs: the transaction
// manager that resolves the querier for the current context.
type baseRepo struct {
	txm *postgres.TxManager
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r baseRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
