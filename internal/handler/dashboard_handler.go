package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medikit/dispenser-backend/internal/service"
)

// DashboardHandler handles the public kiosk summary endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary godoc
// GET /dashboard/summary
// Returns the aggregate counts as a bare object.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar dados do dashboard"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
