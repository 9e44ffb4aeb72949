package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"facturier/internal/core/apperror"
	"facturier/internal/core/types"
	"facturier/internal/domain/product"
	"facturier/internal/infrastructure/storage/postgres"
)

const productsTable = "products"

var productCols = []string{"id", "name", "price"}

// ProductRepo implements product.Repository.
type ProductRepo struct {
	baseRepo
}

// Compile-time check.
var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{baseRepo{txm: txm}}
}

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	q := r.Builder().
		Select(productCols...).
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p product.Product
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	return &p, nil
}

// ResolvePrice returns the current list price of a product.
// Runs on the transaction in ctx when one is active, so the snapshot
// is consistent with the lines being written.
func (r *ProductRepo) ResolvePrice(ctx context.Context, id int64) (types.Money, error) {
	q := r.Builder().
		Select("price").
		From(productsTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return types.Zero, fmt.Errorf("build query: %w", err)
	}

	var price types.Money
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Zero, apperror.NewNotFound("product", id)
		}
		return types.Zero, fmt.Errorf("resolve price: %w", err)
	}

	return price, nil
}
