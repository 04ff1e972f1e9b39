package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// InvoiceHandler serves invoice CRUD.
type InvoiceHandler struct {
	invoiceSvc service.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoiceSvc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

// List returns all invoices, optionally narrowed by ?contractId=.
// GET /api/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceSvc.List(c.Request.Context(), c.Query("contractId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, invoices)
}

// Get returns one invoice.
// GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.NotFound(c, 19001, "invoice not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, invoice)
}

// Create creates an invoice. Retention and net amounts are derived from
// the contract when not supplied.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	invoice, err := h.invoiceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.BadRequest(c, 16001, "contract not found")
		case errors.Is(err, service.ErrInvalidInvoiceType):
			response.BadRequest(c, 19002, "invalid invoice type")
		case errors.Is(err, service.ErrInvalidInvoiceStatus):
			response.BadRequest(c, 19003, "invalid invoice status")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrInvoiceNumberExists):
			response.BadRequest(c, 19004, "invoice number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, invoice)
}

// Update patches an invoice.
// PATCH /api/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	invoice, err := h.invoiceSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			response.NotFound(c, 19001, "invoice not found")
		case errors.Is(err, service.ErrInvalidInvoiceType):
			response.BadRequest(c, 19002, "invalid invoice type")
		case errors.Is(err, service.ErrInvalidInvoiceStatus):
			response.BadRequest(c, 19003, "invalid invoice status")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrInvoiceNumberExists):
			response.BadRequest(c, 19004, "invoice number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, invoice)
}

// Delete removes an invoice.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.NotFound(c, 19001, "invoice not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
