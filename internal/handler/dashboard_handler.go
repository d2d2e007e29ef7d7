package handler

import (
	"net/http"

	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"
)

// DashboardHandler holds the dependencies for the landing page summary.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		return serviceError(err, "Failed to retrieve dashboard stats")
	}
	return respondJSON(w, http.StatusOK, stats)
}
