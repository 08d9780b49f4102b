package handler

import (
	"github.com/gin-gonic/gin"
	appinventory "github.com/stocktrack/backend/internal/application/inventory"
	"github.com/stocktrack/backend/internal/interfaces/http/router"
)

// DashboardHandler serves the aggregate read endpoints
type DashboardHandler struct {
	*BaseHandler
	dashboard *appinventory.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *appinventory.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(),
		dashboard:   dashboard,
	}
}

// Routes returns the route group for the dashboard
func (h *DashboardHandler) Routes() *router.DomainGroup {
	g := router.NewDomainGroup("dashboard", "/dashboard")
	g.GET("/stats", h.Stats)
	g.GET("/alerts", h.Alerts)
	return g
}

// Stats returns the inventory summary with category breakdown and
// recent activity
func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Alerts returns the low-stock alerts feed
func (h *DashboardHandler) Alerts(c *gin.Context) {
	resp, err := h.dashboard.Alerts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
