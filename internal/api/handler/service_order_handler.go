package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// ServiceOrderHandler serves service-order CRUD.
type ServiceOrderHandler struct {
	orderSvc service.ServiceOrderService
}

// NewServiceOrderHandler creates a ServiceOrderHandler.
func NewServiceOrderHandler(orderSvc service.ServiceOrderService) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderSvc: orderSvc}
}

// List returns all service orders, optionally narrowed by ?contractId=.
// GET /api/service-orders
func (h *ServiceOrderHandler) List(c *gin.Context) {
	orders, err := h.orderSvc.List(c.Request.Context(), c.Query("contractId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, orders)
}

// Get returns one service order.
// GET /api/service-orders/:id
func (h *ServiceOrderHandler) Get(c *gin.Context) {
	order, err := h.orderSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServiceOrderNotFound) {
			response.NotFound(c, 17001, "service order not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, order)
}

// Create creates a service order, recording the caller as its issuer.
// POST /api/service-orders
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	order, err := h.orderSvc.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContractNotFound):
			response.BadRequest(c, 16001, "contract not found")
		case errors.Is(err, service.ErrInvalidOrderType):
			response.BadRequest(c, 17002, "invalid service order type")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrOrderNumberExists):
			response.BadRequest(c, 17003, "service order number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, order)
}

// Update patches a service order.
// PATCH /api/service-orders/:id
func (h *ServiceOrderHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	order, err := h.orderSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceOrderNotFound):
			response.NotFound(c, 17001, "service order not found")
		case errors.Is(err, service.ErrInvalidOrderType):
			response.BadRequest(c, 17002, "invalid service order type")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date format")
		case errors.Is(err, service.ErrOrderNumberExists):
			response.BadRequest(c, 17003, "service order number already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, order)
}

// Delete removes a service order.
// DELETE /api/service-orders/:id
func (h *ServiceOrderHandler) Delete(c *gin.Context) {
	if err := h.orderSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrServiceOrderNotFound) {
			response.NotFound(c, 17001, "service order not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
