package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/mocks"
	"github.com/chorebank/chorebank/internal/service"
)

func newUserJobHandlers(t *testing.T) (*mocks.MockUserJobRepository, *UserJobHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userJobRepo := mocks.NewMockUserJobRepository(ctrl)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	svc := service.NewUserJobService(service.UserJobServiceOptions{
		UserJobRepo: userJobRepo,
		JobRepo:     jobRepo,
	})
	return userJobRepo, &UserJobHandlers{Svc: svc}
}

func TestApproveJob_SettlesAndReportsPayout(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "user-1", Money: 150, Solved: true}
	settled := *uj
	settled.Approved = true
	settled.Payout = 100

	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)
	userJobRepo.EXPECT().
		Approve(gomock.Any(), core.SettleApprovalParams{UserJobID: "uj-1", Payout: 100}).
		Return(&settled, int64(100), nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/approve", strings.NewReader(`{"rating":"good"}`))
	req.SetPathValue("id", "uj-1")
	w := httptest.NewRecorder()

	h.ApproveJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payout":100`)
	assert.Contains(t, w.Body.String(), `"new_balance":100`)
	assert.Contains(t, w.Body.String(), `"rejected":false`)
}

func TestApproveJob_FailedRatingRejects(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "user-1", Money: 150, Solved: true}
	rejected := *uj
	rejected.Solved = false

	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)
	userJobRepo.EXPECT().MarkUnsolved(gomock.Any(), "uj-1").Return(&rejected, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/approve", strings.NewReader(`{"rating":"failed"}`))
	req.SetPathValue("id", "uj-1")
	w := httptest.NewRecorder()

	h.ApproveJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rejected":true`)
	assert.Contains(t, w.Body.String(), `"payout":0`)
}

func TestApproveJob_AlreadyApprovedConflict(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "user-1", Money: 150, Solved: true, Approved: true}
	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/approve", strings.NewReader(`{"rating":"excellent"}`))
	req.SetPathValue("id", "uj-1")
	w := httptest.NewRecorder()

	h.ApproveJob(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveJob_BadRating(t *testing.T) {
	_, h := newUserJobHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/approve", strings.NewReader(`{"rating":"amazing"}`))
	req.SetPathValue("id", "uj-1")
	w := httptest.NewRecorder()

	h.ApproveJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveJob_OwnerAllowed(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "user-1"}
	solved := *uj
	solved.Solved = true

	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)
	userJobRepo.EXPECT().MarkSolved(gomock.Any(), "uj-1", nil).Return(&solved, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/solve", nil)
	req.SetPathValue("id", "uj-1")
	req = req.WithContext(SetSessionInContext(req.Context(), memberSession()))
	w := httptest.NewRecorder()

	h.SolveJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"solved":true`)
}

func TestSolveJob_OtherUserForbidden(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "someone-else"}
	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/solve", nil)
	req.SetPathValue("id", "uj-1")
	req = req.WithContext(SetSessionInContext(req.Context(), memberSession()))
	w := httptest.NewRecorder()

	h.SolveJob(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_permissions")
}

func TestSolveJob_AdminMaySolveForOthers(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	solved := &model.UserJob{ID: "uj-1", UserID: "someone-else", Solved: true}
	userJobRepo.EXPECT().MarkSolved(gomock.Any(), "uj-1", nil).Return(solved, nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs/uj-1/solve", nil)
	req.SetPathValue("id", "uj-1")
	req = req.WithContext(SetSessionInContext(req.Context(), adminSession()))
	w := httptest.NewRecorder()

	h.SolveJob(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignJob_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userJobRepo := mocks.NewMockUserJobRepository(ctrl)
	jobRepo := mocks.NewMockJobRepository(ctrl)
	h := &UserJobHandlers{Svc: service.NewUserJobService(service.UserJobServiceOptions{
		UserJobRepo: userJobRepo,
		JobRepo:     jobRepo,
	})}

	tmpl := &model.Job{ID: "job-1", Title: "Dishes", Money: 150, Delivery: "18:00:00", Duration: 15}
	jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(tmpl, nil).Times(1)
	userJobRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, uj *model.UserJob) (*model.UserJob, error) {
			out := *uj
			out.ID = "uj-1"
			return &out, nil
		}).
		Times(1)

	body := `{"job_id":"job-1","user_id":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user-jobs", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.AssignJob(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Dishes"`)
	assert.Contains(t, w.Body.String(), `"money":150`)
}

func TestDeleteUserJob_SettledAnswersNotFound(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	userJobRepo.EXPECT().Delete(gomock.Any(), "uj-1").Return(false, nil).Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/user-jobs/uj-1", nil)
	req.SetPathValue("id", "uj-1")
	req = req.WithContext(SetSessionInContext(req.Context(), adminSession()))
	w := httptest.NewRecorder()

	h.DeleteUserJob(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserJob_OwnerMayRemoveOwnAssignment(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "user-1"}
	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)
	userJobRepo.EXPECT().Delete(gomock.Any(), "uj-1").Return(true, nil).Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/user-jobs/uj-1", nil)
	req.SetPathValue("id", "uj-1")
	req = req.WithContext(SetSessionInContext(req.Context(), memberSession()))
	w := httptest.NewRecorder()

	h.DeleteUserJob(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteUserJob_OtherUserForbidden(t *testing.T) {
	userJobRepo, h := newUserJobHandlers(t)

	uj := &model.UserJob{ID: "uj-1", UserID: "someone-else"}
	userJobRepo.EXPECT().GetByID(gomock.Any(), "uj-1").Return(uj, nil).Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/user-jobs/uj-1", nil)
	req.SetPathValue("id", "uj-1")
	req = req.WithContext(SetSessionInContext(req.Context(), memberSession()))
	w := httptest.NewRecorder()

	h.DeleteUserJob(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_permissions")
}

func TestSolveJobWithImage_RejectsNonImage(t *testing.T) {
	_, h := newUserJobHandlers(t)

	req := httptest.NewRequest(http.MethodPut, "/api/user-jobs/uj-1/solve-image", strings.NewReader("plain text"))
	req.SetPathValue("id", "uj-1")
	req.Header.Set("Content-Type", "text/plain")
	req = req.WithContext(SetSessionInContext(req.Context(), adminSession()))
	w := httptest.NewRecorder()

	h.SolveJobWithImage(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
