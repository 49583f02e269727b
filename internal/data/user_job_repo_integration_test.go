package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/testutil"
)

func createTestProfile(t *testing.T, db *sql.DB, name string) *model.Profile {
	t.Helper()
	pr := NewProfileRepo(db)
	p, err := pr.Create(context.Background(), &model.CreateProfileRequest{
		Name:  name,
		Email: fmt.Sprintf("%s-%d@example.com", name, time.Now().UnixNano()),
		Role:  model.RoleMember,
	})
	require.NoError(t, err)
	return p
}

func createTestJob(t *testing.T, db *sql.DB, money int64) *model.Job {
	t.Helper()
	jr := NewJobRepo(db)
	j, err := jr.Create(context.Background(), testutil.NewJobRequest().
		WithTitle(fmt.Sprintf("job-%d", time.Now().UnixNano())).
		WithMoney(money).
		Build())
	require.NoError(t, err)
	return j
}

func assignTestJob(t *testing.T, db *sql.DB, user *model.Profile, job *model.Job) *model.UserJob {
	t.Helper()
	repo := NewUserJobRepo(db)
	uj, err := repo.Insert(context.Background(), &model.UserJob{
		UserID:      user.ID,
		JobID:       job.ID,
		Title:       job.Title,
		Description: job.Description,
		Address:     job.Address,
		Duration:    job.Duration,
		Delivery:    job.Delivery,
		Money:       job.Money,
	})
	require.NoError(t, err)
	return uj
}

func profileBalance(t *testing.T, db *sql.DB, id string) int64 {
	t.Helper()
	var money int64
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT money FROM profiles WHERE id = $1`, id).Scan(&money))
	return money
}

func TestUserJobRepo_InsertCopiesTemplateSnapshot(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		assert.Equal(t, job.Title, uj.Title)
		assert.Equal(t, int64(150), uj.Money)
		assert.False(t, uj.Solved)
		assert.False(t, uj.Approved)
		assert.Zero(t, uj.Payout)

		// Editing the template does not touch the assignment.
		jr := NewJobRepo(db)
		_, err := jr.Update(ctx, job.ID, model.UpdateJobRequest{Money: testutil.Int64Ptr(999)})
		require.NoError(t, err)

		repo := NewUserJobRepo(db)
		got, err := repo.GetByID(ctx, uj.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(150), got.Money)

		// Deleting the template leaves the assignment intact too.
		_, err = jr.Delete(ctx, job.ID)
		require.NoError(t, err)
		_, err = repo.GetByID(ctx, uj.ID)
		require.NoError(t, err)
	})
}

func TestUserJobRepo_ApproveSettlesPayoutAndBalance(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		_, err := repo.MarkSolved(ctx, uj.ID, nil)
		require.NoError(t, err)

		settled, newBalance, err := repo.Approve(ctx, core.SettleApprovalParams{
			UserJobID: uj.ID,
			Payout:    100,
		})
		require.NoError(t, err)
		assert.True(t, settled.Approved)
		assert.Equal(t, int64(100), settled.Payout)
		require.NotNil(t, settled.ApprovedTime)
		assert.Equal(t, int64(100), newBalance)
		assert.Equal(t, int64(100), profileBalance(t, db, user.ID))
	})
}

func TestUserJobRepo_ApproveTwiceCreditsOnce(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		_, err := repo.MarkSolved(ctx, uj.ID, nil)
		require.NoError(t, err)

		_, _, err = repo.Approve(ctx, core.SettleApprovalParams{UserJobID: uj.ID, Payout: 150})
		require.NoError(t, err)

		_, _, err = repo.Approve(ctx, core.SettleApprovalParams{UserJobID: uj.ID, Payout: 150})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))

		assert.Equal(t, int64(150), profileBalance(t, db, user.ID))
	})
}

func TestUserJobRepo_ApproveUnsolvedConflict(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		_, _, err := repo.Approve(ctx, core.SettleApprovalParams{UserJobID: uj.ID, Payout: 150})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
		assert.Zero(t, profileBalance(t, db, user.ID))
	})
}

func TestUserJobRepo_SolveAndUnsolve(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		url := "https://images.example.com/solved/proof.jpg"
		solved, err := repo.MarkSolved(ctx, uj.ID, &url)
		require.NoError(t, err)
		assert.True(t, solved.Solved)
		require.NotNil(t, solved.ImageSolvedURL)
		assert.Equal(t, url, *solved.ImageSolvedURL)

		unsolved, err := repo.MarkUnsolved(ctx, uj.ID)
		require.NoError(t, err)
		assert.False(t, unsolved.Solved)
		assert.Nil(t, unsolved.ImageSolvedURL)
	})
}

func TestUserJobRepo_SolveSettledConflict(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		_, err := repo.MarkSolved(ctx, uj.ID, nil)
		require.NoError(t, err)
		_, _, err = repo.Approve(ctx, core.SettleApprovalParams{UserJobID: uj.ID, Payout: 150})
		require.NoError(t, err)

		_, err = repo.MarkUnsolved(ctx, uj.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestUserJobRepo_Lists(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)

		open := assignTestJob(t, db, user, job)
		pending := assignTestJob(t, db, user, job)
		done := assignTestJob(t, db, user, job)

		_, err := repo.MarkSolved(ctx, pending.ID, nil)
		require.NoError(t, err)
		_, err = repo.MarkSolved(ctx, done.ID, nil)
		require.NoError(t, err)
		_, _, err = repo.Approve(ctx, core.SettleApprovalParams{UserJobID: done.ID, Payout: 150})
		require.NoError(t, err)

		mine, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2, "approved assignments leave the open list")

		queue, err := repo.ListSolved(ctx)
		require.NoError(t, err)
		require.Len(t, queue, 1)
		assert.Equal(t, pending.ID, queue[0].ID)

		history, err := repo.ListApproved(ctx)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, done.ID, history[0].ID)

		_ = open
	})
}

func TestUserJobRepo_DeleteSparesSettledRows(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserJobRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)

		open := assignTestJob(t, db, user, job)
		done := assignTestJob(t, db, user, job)
		_, err := repo.MarkSolved(ctx, done.ID, nil)
		require.NoError(t, err)
		_, _, err = repo.Approve(ctx, core.SettleApprovalParams{UserJobID: done.ID, Payout: 150})
		require.NoError(t, err)

		ok, err := repo.Delete(ctx, open.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Delete(ctx, done.ID)
		require.NoError(t, err)
		assert.False(t, ok, "settled history is immutable")
	})
}

func TestUserJobRepo_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewUserJobRepo(db)

		_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
