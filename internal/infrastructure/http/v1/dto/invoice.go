package dto

import (
	"time"

	"facturier/internal/core/types"
	"facturier/internal/domain/invoice"
)

// CreateInvoiceLineRequest is one position of an invoice being created.
type CreateInvoiceLineRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

// CreateInvoiceRequest for creating invoices. Line order is preserved:
// the first line becomes line number 1.
type CreateInvoiceRequest struct {
	CustomerID int64                      `json:"customerId" binding:"required"`
	Lines      []CreateInvoiceLineRequest `json:"lines"`
}

// CreateInvoiceResponse reports the created invoice.
type CreateInvoiceResponse struct {
	InvoiceID int64       `json:"invoiceId"`
	Total     types.Money `json:"total"`
	Lines     int         `json:"lines"`
}

// InvoiceLineResponse is one invoice line.
type InvoiceLineResponse struct {
	LineNo    int         `json:"lineNo"`
	ProductID int64       `json:"productId"`
	Quantity  int64       `json:"quantity"`
	Price     types.Money `json:"price"`
	Amount    types.Money `json:"amount"`
}

// InvoiceResponse is a full invoice with lines.
type InvoiceResponse struct {
	ID         int64                 `json:"id"`
	CustomerID int64                 `json:"customerId"`
	CreatedAt  time.Time             `json:"createdAt"`
	Lines      []InvoiceLineResponse `json:"lines"`
	Total      types.Money           `json:"total"`
}

// FromInvoice creates InvoiceResponse from the domain entity.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			LineNo:    l.LineNo,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Amount:    l.Amount(),
		})
	}
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		CreatedAt:  inv.CreatedAt,
		Lines:      lines,
		Total:      inv.Total(),
	}
}
