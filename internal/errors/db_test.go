package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapDBError(pgx.ErrNoRows)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	t.Parallel()

	var appErr *AppError
	require.ErrorAs(t, MapDBError(context.DeadlineExceeded), &appErr)
	assert.Equal(t, ErrCodeTimeout, appErr.Code)

	require.ErrorAs(t, MapDBError(context.Canceled), &appErr)
	assert.Equal(t, ErrCodeCanceled, appErr.Code)
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (email)=(anna@example.com) already exists.",
	}

	err := MapDBError(pgErr)
	assert.True(t, IsConflict(err))

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email", appErr.Field)
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Code:   pgerrcode.ForeignKeyViolation,
		Detail: `Key (user_id)=(u1) is not present in table "profiles".`,
	}

	err := MapDBError(pgErr)
	assert.True(t, IsForeignKey(err))
	assert.Contains(t, err.Error(), "user profile")
}

func TestMapDBError_CheckViolation(t *testing.T) {
	t.Parallel()

	err := MapDBError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
	assert.True(t, IsValidation(err))
}

func TestMapDBError_NotNullViolation(t *testing.T) {
	t.Parallel()

	err := MapDBError(&pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "reason"})
	assert.True(t, IsValidation(err))

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "reason", appErr.Field)
}

func TestMapDBError_Unrecognized(t *testing.T) {
	t.Parallel()

	plain := errors.New("some transport failure")
	assert.Equal(t, plain, MapDBError(plain))
}
