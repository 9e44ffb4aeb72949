package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"facturier/internal/core/apperror"
	"facturier/internal/domain/customer"
	"facturier/internal/infrastructure/storage/postgres"
)

const customersTable = "customers"

var customerCols = []string{"id", "first_name", "last_name", "street", "city"}

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	baseRepo
}

// Compile-time check.
var _ customer.Repository = (*CustomerRepo)(nil)

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{baseRepo{txm: txm}}
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	q := r.Builder().
		Select(customerCols...).
		From(customersTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c customer.Customer
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("customer", id)
		}
		return nil, fmt.Errorf("get customer by id: %w", err)
	}

	return &c, nil
}

// FindByCity retrieves all customers in a city, ordered by last name.
func (r *CustomerRepo) FindByCity(ctx context.Context, city string) ([]*customer.Customer, error) {
	q := r.Builder().
		Select(customerCols...).
		From(customersTable).
		Where(squirrel.Eq{"city": city}).
		OrderBy("last_name", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var customers []*customer.Customer
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &customers, sql, args...); err != nil {
		return nil, fmt.Errorf("find customers by city: %w", err)
	}

	return customers, nil
}

// Count returns the total number of customers.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	q := r.Builder().
		Select("COUNT(*)").
		From(customersTable)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int64
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}

	return count, nil
}
