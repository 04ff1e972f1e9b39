package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// SupplierHandler serves supplier CRUD.
type SupplierHandler struct {
	supplierSvc service.SupplierService
}

// NewSupplierHandler creates a SupplierHandler.
func NewSupplierHandler(supplierSvc service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierSvc: supplierSvc}
}

// List returns all suppliers, newest first.
// GET /api/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, suppliers)
}

// Get returns one supplier.
// GET /api/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	supplier, err := h.supplierSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.NotFound(c, 13001, "supplier not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, supplier)
}

// Create creates a supplier.
// POST /api/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	supplier, err := h.supplierSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSupplierStatus) {
			response.BadRequest(c, 13002, "invalid supplier status")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, supplier)
}

// Update patches a supplier.
// PATCH /api/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	supplier, err := h.supplierSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupplierNotFound):
			response.NotFound(c, 13001, "supplier not found")
		case errors.Is(err, service.ErrInvalidSupplierStatus):
			response.BadRequest(c, 13002, "invalid supplier status")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, supplier)
}

// Delete removes a supplier.
// DELETE /api/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	if err := h.supplierSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.NotFound(c, 13001, "supplier not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
