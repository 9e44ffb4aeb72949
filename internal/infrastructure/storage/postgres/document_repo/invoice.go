// Package document_repo provides PostgreSQL implementations for the
// document repositories (invoices).
package document_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"facturier/internal/core/apperror"
	"facturier/internal/core/types"
	"facturier/internal/domain/invoice"
	"facturier/internal/infrastructure/storage/postgres"
)

const (
	invoicesTable     = "invoices"
	invoiceLinesTable = "invoice_lines"
)

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	txm *postgres.TxManager
}

// Compile-time check.
var _ invoice.Repository = (*InvoiceRepo)(nil)

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{txm: txm}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *InvoiceRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// CreateHeader inserts the invoice header and reads back the generated ID.
// Must run inside the transaction carried by ctx: the ID is needed to
// write lines before anything is committed.
func (r *InvoiceRepo) CreateHeader(ctx context.Context, customerID int64) (int64, error) {
	q := r.Builder().
		Insert(invoicesTable).
		Columns("customer_id").
		Values(customerID).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert header: %w", err)
	}

	var id int64
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewPersistence(invoicesTable, 0)
		}
		return 0, fmt.Errorf("insert invoice header: %w", err)
	}

	return id, nil
}

// InsertLine inserts one invoice line.
func (r *InvoiceRepo) InsertLine(ctx context.Context, line invoice.Line) error {
	q := r.Builder().
		Insert(invoiceLinesTable).
		Columns("invoice_id", "line_no", "product_id", "quantity", "price").
		Values(line.InvoiceID, line.LineNo, line.ProductID, line.Quantity, line.Price)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert line: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return apperror.NewPersistence(invoiceLinesTable, tag.RowsAffected())
	}

	return nil
}

// GetByID retrieves an invoice header.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*invoice.Invoice, error) {
	q := r.Builder().
		Select("id", "customer_id", "created_at").
		From(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoice.Invoice
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", id)
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	return &inv, nil
}

// GetLines retrieves the lines of an invoice ordered by line number.
func (r *InvoiceRepo) GetLines(ctx context.Context, invoiceID int64) ([]invoice.Line, error) {
	q := r.Builder().
		Select("invoice_id", "line_no", "product_id", "quantity", "price").
		From(invoiceLinesTable).
		Where(squirrel.Eq{"invoice_id": invoiceID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []invoice.Line
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get invoice lines: %w", err)
	}

	return lines, nil
}

// CountForCustomer returns the number of invoices issued to a customer.
func (r *InvoiceRepo) CountForCustomer(ctx context.Context, customerID int64) (int64, error) {
	q := r.Builder().
		Select("COUNT(*)").
		From(invoicesTable).
		Where(squirrel.Eq{"customer_id": customerID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int64
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}

	return count, nil
}

// TotalForCustomer sums quantity*price over all lines of all invoices
// of a customer. COALESCE keeps the result zero instead of NULL when
// the customer has no invoices.
func (r *InvoiceRepo) TotalForCustomer(ctx context.Context, customerID int64) (types.Money, error) {
	q := r.Builder().
		Select("COALESCE(SUM(l.quantity * l.price), 0)").
		From(invoiceLinesTable + " l").
		Join(invoicesTable + " i ON i.id = l.invoice_id").
		Where(squirrel.Eq{"i.customer_id": customerID})

	sql, args, err := q.ToSql()
	if err != nil {
		return types.Zero, fmt.Errorf("build total: %w", err)
	}

	var total types.Money
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return types.Zero, fmt.Errorf("total for customer: %w", err)
	}

	return total, nil
}
