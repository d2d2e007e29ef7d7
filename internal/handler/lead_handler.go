package handler

import (
	"net/http"

	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"

	"github.com/go-chi/chi/v5"
)

// LeadHandler holds the dependencies for the enquiry pipeline endpoints.
type LeadHandler struct {
	leads *service.LeadService
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

func (h *LeadHandler) list(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	leads, err := h.leads.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		return serviceError(err, "Failed to retrieve leads")
	}
	return respondJSON(w, http.StatusOK, leads)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *LeadHandler) updateStatus(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req statusRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}
	if err := h.leads.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		return serviceError(err, "Failed to update lead status")
	}
	return respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *LeadHandler) delete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return serviceError(err, "Failed to delete lead")
	}
	return respondJSON(w, http.StatusNoContent, nil)
}
