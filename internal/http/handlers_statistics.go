package httpx

import (
	"net/http"

	"github.com/chorebank/chorebank/internal/service"
)

// StatisticsHandlers provides the earnings dashboard endpoint.
type StatisticsHandlers struct {
	Svc *service.StatisticsService
}

// Dashboard handles GET /api/statistics. Returns the per-user summary and
// the cumulative earnings series.
func (h *StatisticsHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}
