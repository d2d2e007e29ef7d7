package handler

import (
	"net/http"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"

	"github.com/go-chi/chi/v5"
)

// CaseStudyHandler holds the dependencies for the portfolio endpoints.
type CaseStudyHandler struct {
	studies *service.CaseStudyService
}

// NewCaseStudyHandler creates a new CaseStudyHandler.
func NewCaseStudyHandler(studies *service.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{studies: studies}
}

func (h *CaseStudyHandler) list(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	studies, err := h.studies.List(r.Context(), r.URL.Query().Get("service_type"))
	if err != nil {
		return serviceError(err, "Failed to retrieve case studies")
	}
	return respondJSON(w, http.StatusOK, studies)
}

func (h *CaseStudyHandler) get(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	cs, err := h.studies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return serviceError(err, "Failed to retrieve case study")
	}
	return respondJSON(w, http.StatusOK, cs)
}

func (h *CaseStudyHandler) create(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.CaseStudy
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = ""

	if _, err := h.studies.Save(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save case study")
	}
	return respondJSON(w, http.StatusCreated, &draft)
}

func (h *CaseStudyHandler) update(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.CaseStudy
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	// The path owns the identity of the record being edited.
	draft.ID = chi.URLParam(r, "id")

	if _, err := h.studies.Save(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save case study")
	}
	return respondJSON(w, http.StatusOK, &draft)
}

func (h *CaseStudyHandler) delete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.studies.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return serviceError(err, "Failed to delete case study")
	}
	return respondJSON(w, http.StatusNoContent, nil)
}
