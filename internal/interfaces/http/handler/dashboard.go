package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/siteops/backend/internal/application/dashboard"
)

// DashboardHandler exposes the dashboard stats endpoint
type DashboardHandler struct {
	BaseHandler
	statsService *dashboard.StatsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(statsService *dashboard.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Stats returns the aggregate counts shown on the dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.Stats)
}
