package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// NotificationHandler serves notifications. Routes are authenticated but
// not permission-gated by resource kind.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListByUser returns one user's notifications, newest first.
// GET /api/notifications/:userId
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	notifications, err := h.notificationSvc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notifications)
}

// Create creates a notification.
// POST /api/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	notification, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPriority) {
			response.BadRequest(c, 20002, "invalid notification priority")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, notification)
}

// MarkRead flags a notification as read.
// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationSvc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, 20001, "notification not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Delete removes a notification.
// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notificationSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, 20001, "notification not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
