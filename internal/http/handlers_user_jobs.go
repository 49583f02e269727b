package httpx

import (
	"errors"
	"net/http"

	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/service"
)

// UserJobHandlers provides HTTP handlers for assignment operations.
type UserJobHandlers struct {
	Svc            *service.UserJobService
	MaxUploadBytes int64
}

// AssignJob handles POST /api/user-jobs. Admin only.
func (h *UserJobHandlers) AssignJob(w http.ResponseWriter, r *http.Request) {
	var req model.AssignJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	uj, err := h.Svc.Assign(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, uj)
}

// ListMine handles GET /api/user-jobs. Returns the caller's open assignments.
func (h *UserJobHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	jobs, err := h.Svc.ListByUser(r.Context(), session.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// ListByUser handles GET /api/users/{id}/user-jobs. Admin only.
func (h *UserJobHandlers) ListByUser(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.ListByUser(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// ListSolved handles GET /api/user-jobs/solved. Admin review queue.
func (h *UserJobHandlers) ListSolved(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.ListSolved(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// ListApproved handles GET /api/user-jobs/approved. Settled history.
func (h *UserJobHandlers) ListApproved(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.ListApproved(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// SolveJob handles POST /api/user-jobs/{id}/solve. Owners mark their own
// work done; admins may mark anyone's.
func (h *UserJobHandlers) SolveJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.authorizeOwner(w, r, id) {
		return
	}

	var req model.SolveJobRequest
	if r.ContentLength > 0 && !DecodeJSON(w, r, &req) {
		return
	}

	uj, err := h.Svc.Solve(r.Context(), id, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, uj)
}

// SolveJobWithImage handles PUT /api/user-jobs/{id}/solve-image. Uploads the
// proof image and marks the assignment solved in one request.
func (h *UserJobHandlers) SolveJobWithImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.authorizeOwner(w, r, id) {
		return
	}

	contentType, ok := requireImageContentType(w, r)
	if !ok {
		return
	}

	uj, err := h.Svc.SolveWithImage(r.Context(), service.SolveWithImageInput{
		UserJobID:   id,
		ContentType: contentType,
		Body:        http.MaxBytesReader(w, r.Body, h.MaxUploadBytes),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, uj)
}

// ApproveJob handles POST /api/user-jobs/{id}/approve. Admin only. The body
// carries the quality grade; a failed grade sends the work back unsolved.
func (h *UserJobHandlers) ApproveJob(w http.ResponseWriter, r *http.Request) {
	var req model.ApproveJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Approve(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// DeleteUserJob handles DELETE /api/user-jobs/{id}. Owners may remove their
// own open assignments; admins may remove anyone's.
func (h *UserJobHandlers) DeleteUserJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.authorizeOwner(w, r, id) {
		return
	}

	ok, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("assigned job not found or already settled")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeOwner lets the assignment owner or an admin through, writing a
// 403 otherwise.
func (h *UserJobHandlers) authorizeOwner(w http.ResponseWriter, r *http.Request, userJobID string) bool {
	session := GetSessionFromContext(r.Context())
	if session.IsAdmin() {
		return true
	}

	uj, err := h.Svc.GetByID(r.Context(), userJobID)
	if err != nil {
		WriteAppError(w, err)
		return false
	}
	if uj.UserID != session.UserID {
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("assignment belongs to another user"),
		})
		return false
	}
	return true
}
