// Package httpx provides the JSON API handlers for the chorebank service.
package httpx

import (
	"errors"
	"io"
	"net/http"

	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/service"
)

// JobHandlers provides HTTP handlers for job template operations.
type JobHandlers struct {
	Svc            *service.JobService
	MaxUploadBytes int64
}

// CreateJob handles POST /api/jobs.
func (h *JobHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// GetJob handles GET /api/jobs/{id}.
func (h *JobHandlers) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// ListJobs handles GET /api/jobs.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// UpdateJob handles PATCH /api/jobs/{id}.
func (h *JobHandlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// DeleteJob handles DELETE /api/jobs/{id}.
func (h *JobHandlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("job not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadJobImage handles PUT /api/jobs/{id}/image. The raw image is the
// request body; the Content-Type header names its format.
func (h *JobHandlers) UploadJobImage(w http.ResponseWriter, r *http.Request) {
	contentType, ok := requireImageContentType(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.UploadImage(r.Context(), service.UploadImageInput{
		JobID:       r.PathValue("id"),
		ContentType: contentType,
		Body:        http.MaxBytesReader(w, r.Body, h.MaxUploadBytes),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// FetchJobImage handles GET /api/jobs/{id}/image. Streams the stored image
// so clients never need bucket access.
func (h *JobHandlers) FetchJobImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.Svc.FetchImage(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	defer func() { _ = img.Body.Close() }()

	w.Header().Set("Content-Type", img.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, img.Body); err != nil {
		// Mid-stream failures cannot be reported; the truncated body is the signal.
		return
	}
}

// requireImageContentType validates the upload Content-Type, writing the
// error response itself when the type is unsupported.
func requireImageContentType(w http.ResponseWriter, r *http.Request) (string, bool) {
	contentType := r.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return contentType, true
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusUnsupportedMediaType,
		ErrCode: "unsupported_media_type",
		Err:     errors.New("image must be jpeg, png, webp or gif"),
	})
	return "", false
}
