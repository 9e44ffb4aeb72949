package invoice

import (
	"context"

	"facturier/internal/core/types"
)

// Repository defines the interface for Invoice persistence.
// CreateHeader and InsertLine participate in the transaction carried
// by the context; the query methods run on whatever querier the
// context resolves to.
type Repository interface {
	// CreateHeader inserts the invoice header and returns the
	// storage-generated invoice ID.
	CreateHeader(ctx context.Context, customerID int64) (int64, error)

	// InsertLine inserts one invoice line. Returns PERSISTENCE_ERROR
	// if the insert does not affect exactly one row.
	InsertLine(ctx context.Context, line Line) error

	// GetByID retrieves an invoice header. Returns NOT_FOUND if absent.
	GetByID(ctx context.Context, id int64) (*Invoice, error)

	// GetLines retrieves the lines of an invoice ordered by line number.
	GetLines(ctx context.Context, invoiceID int64) ([]Line, error)

	// CountForCustomer returns the number of invoices issued to a customer.
	CountForCustomer(ctx context.Context, customerID int64) (int64, error)

	// TotalForCustomer returns the sum of quantity*price over all lines
	// of all invoices of a customer. Zero when the customer has none.
	TotalForCustomer(ctx context.Context, customerID int64) (types.Money, error)
}
