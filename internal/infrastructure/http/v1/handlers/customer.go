package handlers

import (
	"github.com/gin-gonic/gin"

	"facturier/internal/core/apperror"
	"facturier/internal/domain/customer"
	"facturier/internal/domain/invoice"
	"facturier/internal/infrastructure/http/v1/dto"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	*BaseHandler
	customers *customer.Service
	invoices  *invoice.Service
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, customers *customer.Service, invoices *invoice.Service) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, customers: customers, invoices: invoices}
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	cust, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomer(cust))
}

// ListByCity handles GET /customers?city=....
func (h *CustomerHandler) ListByCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		h.Error(c, apperror.NewValidation("city query parameter is required"))
		return
	}

	customers, err := h.customers.InCity(c.Request.Context(), city)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		items = append(items, dto.FromCustomer(cust))
	}

	h.OK(c, dto.CustomerListResponse{Items: items, Count: len(items)})
}

// Stats handles GET /customers/:id/stats.
func (h *CustomerHandler) Stats(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	name, err := h.customers.NameOf(ctx, id)
	if err != nil {
		h.Error(c, err)
		return
	}

	count, err := h.invoices.CountForCustomer(ctx, id)
	if err != nil {
		h.Error(c, err)
		return
	}

	total, err := h.invoices.TotalForCustomer(ctx, id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.CustomerStatsResponse{
		CustomerID: id,
		LastName:   name,
		Invoices:   count,
		Total:      total,
	})
}

// GlobalStats handles GET /stats.
func (h *CustomerHandler) GlobalStats(c *gin.Context) {
	count, err := h.customers.Count(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.StatsResponse{Customers: count})
}
