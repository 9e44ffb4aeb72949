package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"facturier/internal/domain/invoice"
	"facturier/internal/infrastructure/http/v1/dto"
	"facturier/internal/infrastructure/storage/postgres"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
	audit   *postgres.AuditService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service, audit *postgres.AuditService) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service, audit: audit}
}

// Create handles POST /invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	productIDs := make([]int64, 0, len(req.Lines))
	quantities := make([]int64, 0, len(req.Lines))
	for _, line := range req.Lines {
		productIDs = append(productIDs, line.ProductID)
		quantities = append(quantities, line.Quantity)
	}

	result, err := h.service.Create(c.Request.Context(), req.CustomerID, productIDs, quantities)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateInvoiceResponse{
		InvoiceID: result.InvoiceID,
		Total:     result.Total,
		Lines:     result.Lines,
	})
}

// GetByID handles GET /invoices/:id.
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromInvoice(inv))
}

// History handles GET /invoices/:id/history (admin only).
func (h *InvoiceHandler) History(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)
	entries, err := h.audit.GetEntityHistory(c.Request.Context(), "invoice", id, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"items": entries, "count": len(entries)})
}
