package invoice

import (
	"context"

	"github.com/shopspring/decimal"

	"facturier/internal/core/apperror"
	"facturier/internal/core/tx"
	"facturier/internal/core/types"
	"facturier/internal/domain/product"
	"facturier/pkg/logger"
)

// Auditor records document events after commit. Optional; nil disables it.
type Auditor interface {
	Record(ctx context.Context, entityType string, entityID int64, action string, payload any) error
}

// Service implements the invoicing workflow.
type Service struct {
	repo      Repository
	prices    product.PriceResolver
	txManager tx.Manager
	auditor   Auditor
}

// NewService creates a new Invoice service.
func NewService(repo Repository, prices product.PriceResolver, txManager tx.Manager, auditor Auditor) *Service {
	return &Service{
		repo:      repo,
		prices:    prices,
		txManager: txManager,
		auditor:   auditor,
	}
}

// CreateResult is what a successful creation hands back to the caller.
type CreateResult struct {
	InvoiceID int64       `json:"invoiceId"`
	Total     types.Money `json:"total"`
	Lines     int         `json:"lines"`
}

// Create writes one invoice for the customer: a header row plus one
// line per product, numbered from 1 in submission order, each line
// priced from the catalog at this moment. Everything happens in a
// single transaction; any failure rolls the whole invoice back and no
// partial state survives.
//
// productIDs and quantities are parallel slices. Both may be empty,
// which produces an invoice with no lines.
func (s *Service) Create(ctx context.Context, customerID int64, productIDs []int64, quantities []int64) (*CreateResult, error) {
	if err := validateCreate(customerID, productIDs, quantities); err != nil {
		return nil, err
	}

	var result CreateResult
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		invoiceID, err := s.repo.CreateHeader(ctx, customerID)
		if err != nil {
			return err
		}

		total := types.Zero
		for i, productID := range productIDs {
			price, err := s.prices.ResolvePrice(ctx, productID)
			if err != nil {
				return err
			}

			line := Line{
				InvoiceID: invoiceID,
				LineNo:    i + 1,
				ProductID: productID,
				Quantity:  quantities[i],
				Price:     price,
			}
			if err := s.repo.InsertLine(ctx, line); err != nil {
				return err
			}
			total = total.Add(price.Mul(decimal.NewFromInt(quantities[i])))
		}

		result = CreateResult{
			InvoiceID: invoiceID,
			Total:     total,
			Lines:     len(productIDs),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.auditor != nil {
		if err := s.auditor.Record(ctx, "invoice", result.InvoiceID, "create", result); err != nil {
			logger.Warn(ctx, "audit record failed",
				"invoice_id", result.InvoiceID,
				"error", err)
		}
	}

	logger.Info(ctx, "invoice created",
		"invoice_id", result.InvoiceID,
		"customer_id", customerID,
		"lines", result.Lines,
		"total", result.Total)

	return &result, nil
}

func validateCreate(customerID int64, productIDs []int64, quantities []int64) error {
	if customerID <= 0 {
		return apperror.NewValidation("customer id is required").
			WithDetail("customerId", customerID)
	}
	if len(productIDs) != len(quantities) {
		return apperror.NewValidation("product and quantity counts differ").
			WithDetail("products", len(productIDs)).
			WithDetail("quantities", len(quantities))
	}
	for i, q := range quantities {
		if q <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("lineNo", i+1).
				WithDetail("quantity", q)
		}
	}
	return nil
}

// GetByID retrieves an invoice with its lines.
func (s *Service) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.GetLines(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return inv, nil
}

// CountForCustomer returns the number of invoices issued to a customer.
func (s *Service) CountForCustomer(ctx context.Context, customerID int64) (int64, error) {
	return s.repo.CountForCustomer(ctx, customerID)
}

// TotalForCustomer returns the invoiced total of a customer.
func (s *Service) TotalForCustomer(ctx context.Context, customerID int64) (types.Money, error) {
	return s.repo.TotalForCustomer(ctx, customerID)
}
