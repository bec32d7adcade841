package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarvasvaa/dairyops/internal/service/analytics"
)

// DashboardHandler serves the aggregated landing-view snapshot.
type DashboardHandler struct {
	svc    *analytics.DashboardService
	logger *zap.Logger
}

// NewDashboardHandler constructs the dashboard HTTP adapter.
func NewDashboardHandler(svc *analytics.DashboardService, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, logger: logger}
}

// Snapshot returns the dashboard aggregates. The service never fails
// outright; missing upstream data shows up as empty sections.
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot(c.Request.Context()))
}
