package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// ContractHandler serves contract CRUD plus penalty recalculation.
type ContractHandler struct {
	contractSvc service.ContractService
}

// NewContractHandler creates a ContractHandler.
func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// List returns all contracts, optionally narrowed by ?status=.
// GET /api/contracts
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.contractSvc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, contracts)
}

// Get returns one contract.
// GET /api/contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.contractSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			response.NotFound(c, 16001, "contract not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, contract)
}

// Create creates a contract, recording the caller as its author.
// POST /api/contracts
func (h *ContractHandler) Create(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	contract, err := h.contractSvc.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTenderNotFound):
			response.BadRequest(c, 14001, "tender not found")
		case errors.Is(err, service.ErrBidNotFound):
			response.BadRequest(c, 15001, "bid not found")
		case errors.Is(err, service.ErrSupplierNotFound):
			response.BadRequest(c, 13001, "supplier not found")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrInvalidContractStatus):
			response.BadRequest(c, 16002, "invalid contract status")
		case errors.Is(err, service.ErrContractNumberExists):
			response.BadRequest(c, 16003, "contract number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, contract)
}

// Update patches a contract.
// PATCH /api/contracts/:id
func (h *ContractHandler) Update(c *gin.Context) {
	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	contract, err := h.contractSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.NotFound(c, 16001, "contract not found")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrInvalidContractStatus):
			response.BadRequest(c, 16002, "invalid contract status")
		case errors.Is(err, service.ErrContractNumberExists):
			response.BadRequest(c, 16003, "contract number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, contract)
}

// Delete removes a contract and, through the store cascade, its service
// orders, amendments and invoices.
// DELETE /api/contracts/:id
func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.contractSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			response.NotFound(c, 16001, "contract not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}

// RecalculatePenalties recomputes and persists the contract's
// accumulated delay penalties.
// POST /api/contracts/:id/penalties/recalculate
func (h *ContractHandler) RecalculatePenalties(c *gin.Context) {
	result, err := h.contractSvc.RecalculatePenalties(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.NotFound(c, 16001, "contract not found")
		case errors.Is(err, service.ErrMissingPenaltyRate):
			response.BadRequest(c, 16004, "contract has no penalty rate")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
