package httpx

import (
	"errors"
	"net/http"

	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/service"
)

// ProfileHandlers provides HTTP handlers for profile operations.
type ProfileHandlers struct {
	Svc *service.ProfileService
}

// ListProfiles handles GET /api/profiles. All members of the household see
// each other; this is what the assignment and dashboard views are built on.
func (h *ProfileHandlers) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profiles)
}

// GetProfile handles GET /api/profiles/{id}.
func (h *ProfileHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// Me handles GET /api/profiles/me. Returns the caller's own profile with the
// live balance.
func (h *ProfileHandlers) Me(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	profile, err := h.Svc.GetByID(r.Context(), session.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

type setRoleRequest struct {
	Role model.Role `json:"role"`
}

// SetRole handles PUT /api/profiles/{id}/role. Admin only.
func (h *ProfileHandlers) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Svc.SetRole(r.Context(), r.PathValue("id"), req.Role)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/profiles/{id}. Admin only.
func (h *ProfileHandlers) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	id := r.PathValue("id")
	if id == session.UserID {
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: errors.New("cannot delete your own profile")})
		return
	}

	ok, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("profile not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
