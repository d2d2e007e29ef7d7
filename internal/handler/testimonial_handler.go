package handler

import (
	"net/http"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"

	"github.com/go-chi/chi/v5"
)

// TestimonialHandler holds the dependencies for the testimonial endpoints.
type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(testimonials *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

func (h *TestimonialHandler) list(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	testimonials, err := h.testimonials.List(r.Context())
	if err != nil {
		return serviceError(err, "Failed to retrieve testimonials")
	}
	return respondJSON(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) get(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	tm, err := h.testimonials.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return serviceError(err, "Failed to retrieve testimonial")
	}
	return respondJSON(w, http.StatusOK, tm)
}

func (h *TestimonialHandler) create(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.Testimonial
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = ""

	if _, err := h.testimonials.Save(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save testimonial")
	}
	return respondJSON(w, http.StatusCreated, &draft)
}

func (h *TestimonialHandler) update(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.Testimonial
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = chi.URLParam(r, "id")

	if _, err := h.testimonials.Save(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save testimonial")
	}
	return respondJSON(w, http.StatusOK, &draft)
}

type flagRequest struct {
	Flag  string `json:"flag"`
	Value bool   `json:"value"`
}

// toggleFlag flips the approved or featured marker without a full edit.
func (h *TestimonialHandler) toggleFlag(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req flagRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}
	if err := h.testimonials.ToggleFlag(r.Context(), chi.URLParam(r, "id"), req.Flag, req.Value); err != nil {
		return serviceError(err, "Failed to update testimonial flag")
	}
	return respondJSON(w, http.StatusOK, req)
}

func (h *TestimonialHandler) delete(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.testimonials.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return serviceError(err, "Failed to delete testimonial")
	}
	return respondJSON(w, http.StatusNoContent, nil)
}
