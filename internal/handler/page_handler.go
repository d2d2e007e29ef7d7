package handler

import (
	"net/http"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"

	"github.com/go-chi/chi/v5"
)

// PageHandler holds the dependencies for the hero editor endpoints.
type PageHandler struct {
	pages *service.PageService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(pages *service.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

func (h *PageHandler) list(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	pages, err := h.pages.List(r.Context())
	if err != nil {
		return serviceError(err, "Failed to retrieve pages")
	}
	return respondJSON(w, http.StatusOK, pages)
}

// initialize seeds the default page set into an empty collection.
func (h *PageHandler) initialize(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.pages.InitializeDefaults(r.Context()); err != nil {
		return serviceError(err, "Failed to initialize pages")
	}
	pages, err := h.pages.List(r.Context())
	if err != nil {
		return serviceError(err, "Failed to retrieve pages")
	}
	return respondJSON(w, http.StatusCreated, pages)
}

func (h *PageHandler) updateHero(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var page data.Page
	if appErr := decodeJSON(r, &page); appErr != nil {
		return appErr
	}
	page.ID = chi.URLParam(r, "id")

	updated, err := h.pages.UpdateHero(r.Context(), &page)
	if err != nil {
		return serviceError(err, "Failed to update hero section")
	}
	return respondJSON(w, http.StatusOK, updated)
}
