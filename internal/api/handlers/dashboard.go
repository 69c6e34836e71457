package handlers

import (
	"net/http"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard handles GET requests for the combined live portfolio view.
//
// Endpoint: GET /api/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		respondServiceError(w, "failed to build dashboard", err)
		return
	}

	respondJSON(w, http.StatusOK, dashboard)
}
