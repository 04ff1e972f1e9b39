package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// DashboardHandler serves the landing-dashboard snapshot.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Stats returns counts, the total contract budget and the near-term
// tender deadlines.
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardSvc.GetStats(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}
