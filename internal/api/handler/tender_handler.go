package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// TenderHandler serves tender CRUD.
type TenderHandler struct {
	tenderSvc service.TenderService
}

// NewTenderHandler creates a TenderHandler.
func NewTenderHandler(tenderSvc service.TenderService) *TenderHandler {
	return &TenderHandler{tenderSvc: tenderSvc}
}

// List returns all tenders, optionally narrowed by ?status=. The status
// value is matched verbatim against the stored French vocabulary.
// GET /api/tenders
func (h *TenderHandler) List(c *gin.Context) {
	tenders, err := h.tenderSvc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, tenders)
}

// Get returns one tender.
// GET /api/tenders/:id
func (h *TenderHandler) Get(c *gin.Context) {
	tender, err := h.tenderSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTenderNotFound) {
			response.NotFound(c, 14001, "tender not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, tender)
}

// Create creates a tender, recording the caller as its author.
// POST /api/tenders
func (h *TenderHandler) Create(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	var req dto.CreateTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	tender, err := h.tenderSvc.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrInvalidTenderStatus):
			response.BadRequest(c, 14002, "invalid tender status")
		case errors.Is(err, service.ErrReferenceExists):
			response.BadRequest(c, 14003, "tender reference already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, tender)
}

// Update patches a tender.
// PATCH /api/tenders/:id
func (h *TenderHandler) Update(c *gin.Context) {
	var req dto.UpdateTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	tender, err := h.tenderSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTenderNotFound):
			response.NotFound(c, 14001, "tender not found")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrInvalidTenderStatus):
			response.BadRequest(c, 14002, "invalid tender status")
		case errors.Is(err, service.ErrReferenceExists):
			response.BadRequest(c, 14003, "tender reference already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, tender)
}

// Delete removes a tender and, through the store cascade, its bids.
// DELETE /api/tenders/:id
func (h *TenderHandler) Delete(c *gin.Context) {
	if err := h.tenderSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTenderNotFound) {
			response.NotFound(c, 14001, "tender not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
