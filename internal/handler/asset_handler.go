package handler

import (
	"errors"
	"io"
	"net/http"

	"stravigo-admin/internal/assets"
	"stravigo-admin/internal/middleware"
)

// AssetHandler accepts image uploads from the editors and forwards them to
// the storage bucket. The bucket token never leaves the server.
type AssetHandler struct {
	uploader *assets.Uploader
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(uploader *assets.Uploader) *AssetHandler {
	return &AssetHandler{uploader: uploader}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// upload reads one multipart file field and stores it. The body reader is
// capped slightly above the asset limit so oversized files are rejected with
// a clear message instead of a truncated read.
func (h *AssetHandler) upload(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	r.Body = http.MaxBytesReader(w, r.Body, assets.MaxUploadSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		return &middleware.AppError{Err: err, Message: "A file field named 'file' is required", Code: http.StatusBadRequest}
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, assets.MaxUploadSize+1))
	if err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to read upload", Code: http.StatusBadRequest}
	}

	url, err := h.uploader.Upload(r.Context(), payload, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		if errors.Is(err, assets.ErrTooLarge) {
			return &middleware.AppError{Err: err, Message: err.Error(), Code: http.StatusRequestEntityTooLarge}
		}
		return &middleware.AppError{Err: err, Message: err.Error(), Code: http.StatusBadGateway}
	}

	return respondJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
