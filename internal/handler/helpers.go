package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/service"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, code int, payload interface{}) *middleware.AppError {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return nil
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to encode response", Code: http.StatusInternalServerError}
	}
	return nil
}

// decodeJSON reads the request body into dest, rejecting unknown fields so
// typos in the editor payload surface instead of silently dropping data.
func decodeJSON(r *http.Request, dest interface{}) *middleware.AppError {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return &middleware.AppError{Err: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	return nil
}

// serviceError maps the layered errors onto HTTP statuses: unknown records
// are 404, rejected input is 400, everything else is opaque to the client.
func serviceError(err error, fallback string) *middleware.AppError {
	switch {
	case errors.Is(err, data.ErrNotFound):
		return &middleware.AppError{Err: err, Message: "Record not found", Code: http.StatusNotFound}
	case errors.Is(err, service.ErrInvalid):
		return &middleware.AppError{Err: err, Message: err.Error(), Code: http.StatusBadRequest}
	default:
		return &middleware.AppError{Err: err, Message: fallback, Code: http.StatusInternalServerError}
	}
}
