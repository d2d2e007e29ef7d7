package handler

import (
	"net/http"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"

	"github.com/go-chi/chi/v5"
)

// CareersHandler holds the dependencies for the recruitment endpoints.
type CareersHandler struct {
	careers *service.CareersService
}

// NewCareersHandler creates a new CareersHandler.
func NewCareersHandler(careers *service.CareersService) *CareersHandler {
	return &CareersHandler{careers: careers}
}

func (h *CareersHandler) listJobs(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	jobs, err := h.careers.ListJobs(r.Context())
	if err != nil {
		return serviceError(err, "Failed to retrieve job openings")
	}
	return respondJSON(w, http.StatusOK, jobs)
}

func (h *CareersHandler) getJob(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	job, err := h.careers.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return serviceError(err, "Failed to retrieve job opening")
	}
	return respondJSON(w, http.StatusOK, job)
}

func (h *CareersHandler) createJob(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.JobOpening
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = ""

	if _, err := h.careers.SaveJob(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save job opening")
	}
	return respondJSON(w, http.StatusCreated, &draft)
}

func (h *CareersHandler) updateJob(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var draft data.JobOpening
	if appErr := decodeJSON(r, &draft); appErr != nil {
		return appErr
	}
	draft.ID = chi.URLParam(r, "id")

	if _, err := h.careers.SaveJob(r.Context(), &draft); err != nil {
		return serviceError(err, "Failed to save job opening")
	}
	return respondJSON(w, http.StatusOK, &draft)
}

type activeRequest struct {
	Active bool `json:"active"`
}

// setJobActive flips public visibility for one opening.
func (h *CareersHandler) setJobActive(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req activeRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}
	if err := h.careers.SetJobActive(r.Context(), chi.URLParam(r, "id"), req.Active); err != nil {
		return serviceError(err, "Failed to update job visibility")
	}
	return respondJSON(w, http.StatusOK, req)
}

func (h *CareersHandler) deleteJob(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.careers.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		return serviceError(err, "Failed to delete job opening")
	}
	return respondJSON(w, http.StatusNoContent, nil)
}

func (h *CareersHandler) listApplicants(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	applicants, err := h.careers.ListApplicants(r.Context(), r.URL.Query().Get("job_id"))
	if err != nil {
		return serviceError(err, "Failed to retrieve applicants")
	}
	return respondJSON(w, http.StatusOK, applicants)
}

func (h *CareersHandler) updateApplicantStatus(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req statusRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}
	if err := h.careers.UpdateApplicantStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		return serviceError(err, "Failed to update applicant status")
	}
	return respondJSON(w, http.StatusOK, req)
}

func (h *CareersHandler) deleteApplicant(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.careers.DeleteApplicant(r.Context(), chi.URLParam(r, "id")); err != nil {
		return serviceError(err, "Failed to delete applicant")
	}
	return respondJSON(w, http.StatusNoContent, nil)
}
