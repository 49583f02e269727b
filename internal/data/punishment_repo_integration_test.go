package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/testutil"
)

func setBalance(t *testing.T, db *sql.DB, id string, money int64) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `UPDATE profiles SET money = $2 WHERE id = $1`, id, money)
	require.NoError(t, err)
}

func TestPunishmentRepo_CreateAndDebit(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewPunishmentRepo(db)
		user := createTestProfile(t, db, "anna")
		setBalance(t, db, user.ID, 200)

		p, newBalance, err := repo.CreateAndDebit(ctx, &model.CreatePunishmentRequest{
			UserID: user.ID,
			Amount: 120,
			Reason: "Skipped dish duty",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(120), p.Amount)
		assert.Equal(t, "Skipped dish duty", p.Reason)
		assert.Equal(t, int64(80), newBalance)
		assert.Equal(t, int64(80), profileBalance(t, db, user.ID))
	})
}

func TestPunishmentRepo_CreateAndDebit_InsufficientBalance(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewPunishmentRepo(db)
		user := createTestProfile(t, db, "anna")
		setBalance(t, db, user.ID, 50)

		_, _, err := repo.CreateAndDebit(ctx, &model.CreatePunishmentRequest{
			UserID: user.ID,
			Amount: 100,
			Reason: "Too expensive to punish",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsInsufficientBalance(err))

		// Nothing committed: balance untouched, no audit row.
		assert.Equal(t, int64(50), profileBalance(t, db, user.ID))
		list, err := repo.List(ctx, core.PunishmentListOptions{UserID: user.ID})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestPunishmentRepo_CreateAndDebit_UnknownProfile(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewPunishmentRepo(db)

		_, _, err := repo.CreateAndDebit(context.Background(), &model.CreatePunishmentRequest{
			UserID: "00000000-0000-0000-0000-000000000000",
			Amount: 10,
			Reason: "Ghost punishment",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestPunishmentRepo_ListJoinsUserName(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewPunishmentRepo(db)
		anna := createTestProfile(t, db, "anna")
		bo := createTestProfile(t, db, "bo")
		setBalance(t, db, anna.ID, 500)
		setBalance(t, db, bo.ID, 500)

		for _, u := range []*model.Profile{anna, bo} {
			_, _, err := repo.CreateAndDebit(ctx, &model.CreatePunishmentRequest{
				UserID: u.ID,
				Amount: 25,
				Reason: "Left the gate open",
			})
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, core.PunishmentListOptions{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.NotEmpty(t, all[0].UserName)

		onlyAnna, err := repo.List(ctx, core.PunishmentListOptions{UserID: anna.ID})
		require.NoError(t, err)
		require.Len(t, onlyAnna, 1)
		assert.Equal(t, "anna", onlyAnna[0].UserName)

		limited, err := repo.List(ctx, core.PunishmentListOptions{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

func TestPunishmentRepo_DeleteKeepsDebit(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewPunishmentRepo(db)
		user := createTestProfile(t, db, "anna")
		setBalance(t, db, user.ID, 200)

		p, _, err := repo.CreateAndDebit(ctx, &model.CreatePunishmentRequest{
			UserID: user.ID,
			Amount: 75,
			Reason: "Muddy boots in the hall",
		})
		require.NoError(t, err)

		ok, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		// The audit row is gone but the money stays debited.
		assert.Equal(t, int64(125), profileBalance(t, db, user.ID))

		ok, err = repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
