package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/service"
)

// PunishmentHandlers provides HTTP handlers for punishment operations.
type PunishmentHandlers struct {
	Svc *service.PunishmentService
}

// CreatePunishment handles POST /api/punishments. Admin only.
func (h *PunishmentHandlers) CreatePunishment(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePunishmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, result)
}

// ListPunishments handles GET /api/punishments?user_id=<optional>&limit=<optional>.
// Members see their own history; admins see everyone's.
func (h *PunishmentHandlers) ListPunishments(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	opts := core.PunishmentListOptions{
		UserID: r.URL.Query().Get("user_id"),
		Limit:  parseIntQuery(r, "limit", 0),
	}
	if !session.IsAdmin() {
		opts.UserID = session.UserID
	}

	punishments, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, punishments)
}

// DeletePunishment handles DELETE /api/punishments/{id}. Admin only. The
// debit the record settled stays on the balance.
func (h *PunishmentHandlers) DeletePunishment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("punishment id must be an integer")})
		return
	}

	ok, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("punishment not found")})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
