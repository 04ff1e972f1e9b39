package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// AmendmentHandler serves amendment CRUD.
type AmendmentHandler struct {
	amendmentSvc service.AmendmentService
}

// NewAmendmentHandler creates an AmendmentHandler.
func NewAmendmentHandler(amendmentSvc service.AmendmentService) *AmendmentHandler {
	return &AmendmentHandler{amendmentSvc: amendmentSvc}
}

// List returns all amendments, optionally narrowed by ?contractId=.
// GET /api/amendments
func (h *AmendmentHandler) List(c *gin.Context) {
	amendments, err := h.amendmentSvc.List(c.Request.Context(), c.Query("contractId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, amendments)
}

// Get returns one amendment.
// GET /api/amendments/:id
func (h *AmendmentHandler) Get(c *gin.Context) {
	amendment, err := h.amendmentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAmendmentNotFound) {
			response.NotFound(c, 18001, "amendment not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, amendment)
}

// Create creates an amendment, recording the caller as its approver.
// POST /api/amendments
func (h *AmendmentHandler) Create(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	var req dto.CreateAmendmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	amendment, err := h.amendmentSvc.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.BadRequest(c, 16001, "contract not found")
		case errors.Is(err, service.ErrInvalidAmendmentType):
			response.BadRequest(c, 18002, "invalid amendment type")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrAmendmentNumberExists):
			response.BadRequest(c, 18003, "amendment number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, amendment)
}

// Update patches an amendment.
// PATCH /api/amendments/:id
func (h *AmendmentHandler) Update(c *gin.Context) {
	var req dto.UpdateAmendmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	amendment, err := h.amendmentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAmendmentNotFound):
			response.NotFound(c, 18001, "amendment not found")
		case errors.Is(err, service.ErrInvalidAmendmentType):
			response.BadRequest(c, 18002, "invalid amendment type")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrAmendmentNumberExists):
			response.BadRequest(c, 18003, "amendment number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, amendment)
}

// Delete removes an amendment.
// DELETE /api/amendments/:id
func (h *AmendmentHandler) Delete(c *gin.Context) {
	if err := h.amendmentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAmendmentNotFound) {
			response.NotFound(c, 18001, "amendment not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
