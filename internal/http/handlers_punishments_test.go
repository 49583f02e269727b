package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/mocks"
	"github.com/chorebank/chorebank/internal/service"
)

func newPunishmentHandlers(t *testing.T) (*mocks.MockPunishmentRepository, *mocks.MockProfileRepository, *PunishmentHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	punishmentRepo := mocks.NewMockPunishmentRepository(ctrl)
	profileRepo := mocks.NewMockProfileRepository(ctrl)
	svc := service.NewPunishmentService(service.PunishmentServiceOptions{
		PunishmentRepo: punishmentRepo,
		ProfileRepo:    profileRepo,
	})
	return punishmentRepo, profileRepo, &PunishmentHandlers{Svc: svc}
}

func TestCreatePunishment_InsufficientBalance(t *testing.T) {
	_, profileRepo, h := newPunishmentHandlers(t)

	profileRepo.EXPECT().
		GetByID(gomock.Any(), "user-1").
		Return(&model.Profile{ID: "user-1", Money: 20}, nil).
		Times(1)

	body := `{"user_id":"user-1","amount":100,"reason":"Left the lights on"}`
	req := httptest.NewRequest(http.MethodPost, "/api/punishments", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.CreatePunishment(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_balance")
}

func TestCreatePunishment_Success(t *testing.T) {
	punishmentRepo, profileRepo, h := newPunishmentHandlers(t)

	profileRepo.EXPECT().
		GetByID(gomock.Any(), "user-1").
		Return(&model.Profile{ID: "user-1", Money: 200}, nil).
		Times(1)
	punishmentRepo.EXPECT().
		CreateAndDebit(gomock.Any(), gomock.Any()).
		Return(&model.Punishment{ID: 1, UserID: "user-1", Amount: 100, Reason: "Left the lights on"}, int64(100), nil).
		Times(1)

	body := `{"user_id":"user-1","amount":100,"reason":"Left the lights on"}`
	req := httptest.NewRequest(http.MethodPost, "/api/punishments", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.CreatePunishment(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"new_balance":100`)
}

func TestListPunishments_MemberScopedToSelf(t *testing.T) {
	punishmentRepo, _, h := newPunishmentHandlers(t)

	// A member asking for someone else's history still gets their own.
	punishmentRepo.EXPECT().
		List(gomock.Any(), core.PunishmentListOptions{UserID: "user-1"}).
		Return(nil, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/punishments?user_id=someone-else", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), memberSession()))
	w := httptest.NewRecorder()

	h.ListPunishments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPunishments_AdminMayFilter(t *testing.T) {
	punishmentRepo, _, h := newPunishmentHandlers(t)

	punishmentRepo.EXPECT().
		List(gomock.Any(), core.PunishmentListOptions{UserID: "someone-else", Limit: 10}).
		Return(nil, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/punishments?user_id=someone-else&limit=10", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), adminSession()))
	w := httptest.NewRecorder()

	h.ListPunishments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletePunishment_BadID(t *testing.T) {
	_, _, h := newPunishmentHandlers(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/punishments/not-a-number", nil)
	req.SetPathValue("id", "not-a-number")
	w := httptest.NewRecorder()

	h.DeletePunishment(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
