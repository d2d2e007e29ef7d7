package handler

import (
	"net/http"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/render"
	"stravigo-admin/internal/service"

	"github.com/go-chi/chi/v5"
)

// InsightHandler holds the dependencies for the editorial endpoints.
type InsightHandler struct {
	insights *service.InsightService
	renderer *render.Renderer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insights *service.InsightService, renderer *render.Renderer) *InsightHandler {
	return &InsightHandler{insights: insights, renderer: renderer}
}

func (h *InsightHandler) list(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	insights, err := h.insights.List(r.Context())
	if err != nil {
		return serviceError(err, "Failed to retrieve insights")
	}
	return respondJSON(w, http.StatusOK, insights)
}

func (h *InsightHandler) get(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	ins, err := h.insights.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return serviceError(err, "Failed to retrieve insight")
	}
	return respondJSON(w, http.StatusOK, ins)
}

func (h *InsightHandler) create(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.Insight
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = ""

	if _, err := h.insights.Save(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save insight")
	}
	return respondJSON(w, http.StatusCreated, &draft)
}

func (h *InsightHandler) update(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.Insight
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = chi.URLParam(r, "id")

	if _, err := h.insights.Save(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save insight")
	}
	return respondJSON(w, http.StatusOK, &draft)
}

func (h *InsightHandler) delete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.insights.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return serviceError(err, "Failed to delete insight")
	}
	return respondJSON(w, http.StatusNoContent, nil)
}

type previewRequest struct {
	Source string `json:"source"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

// preview renders a markdown draft body into the sanitized HTML the composer
// shows alongside the editor.
func (h *InsightHandler) preview(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req previewRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	html, err := h.renderer.HTML(req.Source)
	if err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to render preview", Code: http.StatusUnprocessableEntity}
	}
	return respondJSON(w, http.StatusOK, previewResponse{HTML: html})
}
