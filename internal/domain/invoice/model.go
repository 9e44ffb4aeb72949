// Package invoice implements invoice creation and the related
// aggregate queries. An invoice is a header row plus an ordered set of
// lines; the two are always written together in one transaction.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"facturier/internal/core/types"
)

// Invoice is the document header. Lines are loaded on demand.
type Invoice struct {
	ID         int64     `db:"id" json:"id"`
	CustomerID int64     `db:"customer_id" json:"customerId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`

	Lines []Line `db:"-" json:"lines,omitempty"`
}

// Line is one invoice position. LineNo starts at 1 and follows the
// order the products were submitted in. Price is the unit price
// snapshot taken at creation time; later catalog changes do not
// affect it.
type Line struct {
	InvoiceID int64       `db:"invoice_id" json:"-"`
	LineNo    int         `db:"line_no" json:"lineNo"`
	ProductID int64       `db:"product_id" json:"productId"`
	Quantity  int64       `db:"quantity" json:"quantity"`
	Price     types.Money `db:"price" json:"price"`
}

// Amount returns quantity times unit price for this line.
func (l Line) Amount() types.Money {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// AddLine appends a line with the next sequential number.
func (inv *Invoice) AddLine(productID, quantity int64, price types.Money) {
	inv.Lines = append(inv.Lines, Line{
		InvoiceID: inv.ID,
		LineNo:    len(inv.Lines) + 1,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	})
}

// Total sums the line amounts.
func (inv *Invoice) Total() types.Money {
	total := types.Zero
	for _, l := range inv.Lines {
		total = total.Add(l.Amount())
	}
	return total
}
