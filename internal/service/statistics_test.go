package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/mocks"
)

func clockTime(t *testing.T, hhmm string) time.Time {
	t.Helper()
	ts, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return ts
}

func newStatisticsService(t *testing.T) (*mocks.MockUserJobRepository, *mocks.MockPunishmentRepository, *mocks.MockProfileRepository, *StatisticsService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userJobRepo := mocks.NewMockUserJobRepository(ctrl)
	punishmentRepo := mocks.NewMockPunishmentRepository(ctrl)
	profileRepo := mocks.NewMockProfileRepository(ctrl)

	service := NewStatisticsService(StatisticsServiceOptions{
		UserJobRepo:    userJobRepo,
		PunishmentRepo: punishmentRepo,
		ProfileRepo:    profileRepo,
	})

	return userJobRepo, punishmentRepo, profileRepo, service
}

func TestStatisticsService_Dashboard(t *testing.T) {
	t.Parallel()
	userJobRepo, punishmentRepo, profileRepo, service := newStatisticsService(t)

	ctx := context.Background()
	userJobRepo.EXPECT().
		ListApproved(gomock.Any()).
		Return([]*model.UserJob{
			{UserID: "u1", Money: 150, Payout: 100, Delivery: "14:00:00", Solved: true, Approved: true},
		}, nil).
		Times(1)
	punishmentRepo.EXPECT().
		List(gomock.Any(), core.PunishmentListOptions{}).
		Return([]*model.PunishmentWithName{
			{Punishment: model.Punishment{UserID: "u1", Amount: 40, CreatedAt: clockTime(t, "16:00")}, UserName: "Anna"},
		}, nil).
		Times(1)
	profileRepo.EXPECT().
		List(gomock.Any()).
		Return([]*model.Profile{{ID: "u1", Name: "Anna"}}, nil).
		Times(1)

	result, err := service.Dashboard(ctx)

	require.NoError(t, err)
	require.Len(t, result.Summary, 1)
	assert.Equal(t, 1, result.Summary[0].JobsCompleted)
	assert.Equal(t, int64(100), result.Summary[0].GrossEarned)
	assert.Equal(t, int64(40), result.Summary[0].TotalPunished)
	assert.Equal(t, int64(60), result.Summary[0].NetEarnings)
	require.Len(t, result.Series, 2)
	assert.Equal(t, int64(60), result.Series[1].Totals["u1"])
}

func TestStatisticsService_Dashboard_PropagatesFetchError(t *testing.T) {
	t.Parallel()
	userJobRepo, punishmentRepo, profileRepo, service := newStatisticsService(t)

	userJobRepo.EXPECT().
		ListApproved(gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)
	// The other two fetches run concurrently and may or may not be reached
	// before the group cancels.
	punishmentRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	profileRepo.EXPECT().
		List(gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	_, err := service.Dashboard(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch dashboard inputs")
}

func TestStatisticsService_Dashboard_EmptyHousehold(t *testing.T) {
	t.Parallel()
	userJobRepo, punishmentRepo, profileRepo, service := newStatisticsService(t)

	userJobRepo.EXPECT().ListApproved(gomock.Any()).Return(nil, nil).Times(1)
	punishmentRepo.EXPECT().List(gomock.Any(), core.PunishmentListOptions{}).Return(nil, nil).Times(1)
	profileRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

	result, err := service.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Users)
	assert.Empty(t, result.Summary)
	assert.Empty(t, result.Series)
}
