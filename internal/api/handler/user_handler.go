package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// UserHandler serves user management. Every route is behind the admin
// gate; the handler itself does no role checking.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List returns all users, newest first.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// Get returns one user.
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// Create creates a user.
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, 12002, "invalid role")
		case errors.Is(err, service.ErrUsernameExists):
			response.BadRequest(c, 12003, "username already exists")
		case errors.Is(err, service.ErrEmailExists):
			response.BadRequest(c, 12004, "email already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, user)
}

// Update patches a user.
// PATCH /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "user not found")
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, 12002, "invalid role")
		case errors.Is(err, service.ErrUsernameExists):
			response.BadRequest(c, 12003, "username already exists")
		case errors.Is(err, service.ErrEmailExists):
			response.BadRequest(c, 12004, "email already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Delete removes a user. Their notifications go with them.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "user not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
