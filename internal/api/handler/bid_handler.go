package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// BidHandler serves bid CRUD.
type BidHandler struct {
	bidSvc service.BidService
}

// NewBidHandler creates a BidHandler.
func NewBidHandler(bidSvc service.BidService) *BidHandler {
	return &BidHandler{bidSvc: bidSvc}
}

// List returns all bids, optionally narrowed by ?tenderId= and/or
// ?supplierId=.
// GET /api/bids
func (h *BidHandler) List(c *gin.Context) {
	bids, err := h.bidSvc.List(c.Request.Context(), c.Query("tenderId"), c.Query("supplierId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, bids)
}

// Get returns one bid.
// GET /api/bids/:id
func (h *BidHandler) Get(c *gin.Context) {
	bid, err := h.bidSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBidNotFound) {
			response.NotFound(c, 15001, "bid not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, bid)
}

// Create creates a bid.
// POST /api/bids
func (h *BidHandler) Create(c *gin.Context) {
	var req dto.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	bid, err := h.bidSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTenderNotFound):
			response.BadRequest(c, 14001, "tender not found")
		case errors.Is(err, service.ErrSupplierNotFound):
			response.BadRequest(c, 13001, "supplier not found")
		case errors.Is(err, service.ErrInvalidBidStatus):
			response.BadRequest(c, 15002, "invalid bid status")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, bid)
}

// Update patches a bid.
// PATCH /api/bids/:id
func (h *BidHandler) Update(c *gin.Context) {
	var req dto.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	bid, err := h.bidSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBidNotFound):
			response.NotFound(c, 15001, "bid not found")
		case errors.Is(err, service.ErrInvalidBidStatus):
			response.BadRequest(c, 15002, "invalid bid status")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, bid)
}

// Delete removes a bid.
// DELETE /api/bids/:id
func (h *BidHandler) Delete(c *gin.Context) {
	if err := h.bidSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBidNotFound) {
			response.NotFound(c, 15001, "bid not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
