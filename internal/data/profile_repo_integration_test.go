package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/testutil"
)

func TestProfileRepo_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)

		email := fmt.Sprintf("Anna-%d@Example.com", time.Now().UnixNano())
		p, err := repo.Create(ctx, &model.CreateProfileRequest{
			Name:  "Anna",
			Email: email,
		})
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)
		assert.Equal(t, model.RoleMember, p.Role, "role defaults to member")
		assert.Zero(t, p.Money, "new profiles start with an empty balance")

		// Lookup is case-insensitive because the stored email is lowercased.
		got, err := repo.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)

		byID, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Email, byID.Email)
	})
}

func TestProfileRepo_DuplicateEmailConflict(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)

		email := fmt.Sprintf("dup-%d@example.com", time.Now().UnixNano())
		_, err := repo.Create(ctx, &model.CreateProfileRequest{Name: "First", Email: email})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &model.CreateProfileRequest{Name: "Second", Email: email})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestProfileRepo_SetRole(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		p := createTestProfile(t, db, "anna")

		promoted, err := repo.SetRole(ctx, p.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, promoted.Role)

		_, err = repo.SetRole(ctx, p.ID, model.Role("owner"))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))

		_, err = repo.SetRole(ctx, "00000000-0000-0000-0000-000000000000", model.RoleAdmin)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestProfileRepo_DeleteCascades(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		user := createTestProfile(t, db, "anna")
		job := createTestJob(t, db, 150)
		uj := assignTestJob(t, db, user, job)

		setBalance(t, db, user.ID, 100)
		punishments := NewPunishmentRepo(db)
		_, _, err := punishments.CreateAndDebit(ctx, &model.CreatePunishmentRequest{
			UserID: user.ID,
			Amount: 10,
			Reason: "Testing the cascade",
		})
		require.NoError(t, err)

		ok, err := repo.Delete(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		userJobs := NewUserJobRepo(db)
		_, err = userJobs.GetByID(ctx, uj.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))

		var punishmentCount int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM punishment WHERE user_id = $1`, user.ID).Scan(&punishmentCount))
		assert.Zero(t, punishmentCount)
	})
}

func TestProfileRepo_ListOrderedByName(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		createTestProfile(t, db, "zoe")
		createTestProfile(t, db, "anna")

		repo := NewProfileRepo(db)
		list, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "anna", list[0].Name)
		assert.Equal(t, "zoe", list[1].Name)
	})
}
