package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/data/pgxutil"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
)

const userJobColumns = `
  id,
  user_id,
  job_id,
  title,
  description,
  address,
  duration,
  delivery,
  money,
  solved,
  approved,
  payout,
  image_solved_url,
  approved_time,
  created_at
`

// UserJobRepo provides database operations for job assignments.
type UserJobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserJobRepo creates a new UserJobRepo with real time provider.
func NewUserJobRepo(db *sql.DB) *UserJobRepo {
	return &UserJobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserJobRepoWithTimeProvider creates a new UserJobRepo with a custom time provider (useful for tests).
func NewUserJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserJobRepo {
	return &UserJobRepo{DB: db, timeProvider: tp}
}

// Insert stores a new assignment. The template fields are already copied onto
// uj by the caller, so the row stays intact if the template changes later.
func (r *UserJobRepo) Insert(ctx context.Context, uj *model.UserJob) (*model.UserJob, error) {
	if uj == nil {
		return nil, errors.New("user job is required")
	}

	var out model.UserJob
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO user_jobs (
				user_id, job_id, title, description, address, duration, delivery, money, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			) RETURNING `+userJobColumns,
			uj.UserID,
			uj.JobID,
			uj.Title,
			uj.Description,
			uj.Address,
			uj.Duration,
			uj.Delivery,
			uj.Money,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserJob])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an assignment by ID.
func (r *UserJobRepo) GetByID(ctx context.Context, id string) (*model.UserJob, error) {
	var out model.UserJob
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+userJobColumns+` FROM user_jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserJob])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Assigned job not found")
		}
		return nil, fmt.Errorf("failed to get user job by ID: %w", err)
	}
	return &out, nil
}

// ListByUser retrieves the open assignments of one user, newest first.
// Approved assignments are history and excluded here.
func (r *UserJobRepo) ListByUser(ctx context.Context, userID string) ([]*model.UserJob, error) {
	return r.list(ctx, `SELECT `+userJobColumns+` FROM user_jobs WHERE user_id = $1 AND NOT approved ORDER BY created_at DESC, id`, userID)
}

// ListSolved retrieves all assignments awaiting review, oldest first.
func (r *UserJobRepo) ListSolved(ctx context.Context) ([]*model.UserJob, error) {
	return r.list(ctx, `SELECT `+userJobColumns+` FROM user_jobs WHERE solved AND NOT approved ORDER BY created_at, id`)
}

// ListApproved retrieves all settled assignments, most recently approved first.
func (r *UserJobRepo) ListApproved(ctx context.Context) ([]*model.UserJob, error) {
	return r.list(ctx, `SELECT `+userJobColumns+` FROM user_jobs WHERE approved ORDER BY approved_time DESC, id`)
}

func (r *UserJobRepo) list(ctx context.Context, query string, args ...any) ([]*model.UserJob, error) {
	var rowsOut []model.UserJob
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.UserJob])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list user jobs: %w", err)
	}

	res := make([]*model.UserJob, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// MarkSolved flags an assignment as solved and stores the optional proof
// image URL. Approved assignments are frozen and cannot be re-solved.
func (r *UserJobRepo) MarkSolved(ctx context.Context, id string, imageSolvedURL *string) (*model.UserJob, error) {
	return r.setSolved(ctx, id, true, imageSolvedURL)
}

// MarkUnsolved returns an assignment to the open state. Used when review
// fails the work and the user has to redo it.
func (r *UserJobRepo) MarkUnsolved(ctx context.Context, id string) (*model.UserJob, error) {
	return r.setSolved(ctx, id, false, nil)
}

func (r *UserJobRepo) setSolved(ctx context.Context, id string, solved bool, imageSolvedURL *string) (*model.UserJob, error) {
	var out model.UserJob
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			UPDATE user_jobs
			SET solved = $2, image_solved_url = $3
			WHERE id = $1 AND NOT approved
			RETURNING `+userJobColumns,
			id, solved, imageSolvedURL)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserJob])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.solveConflict(ctx, id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// solveConflict distinguishes a missing assignment from an already settled one.
func (r *UserJobRepo) solveConflict(ctx context.Context, id string) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Approved {
		return apperrors.Conflict("Job is already approved and can no longer change")
	}
	return apperrors.NotFound("Assigned job not found")
}

// Approve settles an assignment: it marks the row approved and credits the
// payout to the owner's balance in one transaction. The guard on solved and
// approved makes a second approval a Conflict instead of a second credit.
// Returns the settled assignment and the owner's new balance.
func (r *UserJobRepo) Approve(ctx context.Context, params core.SettleApprovalParams) (*model.UserJob, int64, error) {
	var (
		out        model.UserJob
		newBalance int64
	)
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		rows, qerr := tx.Query(ctx, `
			UPDATE user_jobs
			SET approved = TRUE, approved_time = $2, payout = $3
			WHERE id = $1 AND solved AND NOT approved
			RETURNING `+userJobColumns,
			params.UserJobID, r.timeProvider.Now().UTC(), params.Payout)
		if qerr != nil {
			return qerr
		}
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserJob])
		if e != nil {
			return e
		}

		return tx.QueryRow(ctx, `
			UPDATE profiles SET money = money + $2 WHERE id = $1 RETURNING money`,
			out.UserID, params.Payout).Scan(&newBalance)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, r.approveConflict(ctx, params.UserJobID)
		}
		return nil, 0, apperrors.MapDBError(err)
	}
	return &out, newBalance, nil
}

// approveConflict distinguishes the reasons the settlement guard rejected an approval.
func (r *UserJobRepo) approveConflict(ctx context.Context, id string) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Approved {
		return apperrors.Conflict("Job is already approved")
	}
	if !existing.Solved {
		return apperrors.Conflict("Job is not solved yet")
	}
	// The assignment is settleable, so the missing row was the owner profile.
	return apperrors.NotFound("Profile of the job owner not found")
}

// Delete removes an assignment. Settled history stays in place, so approved
// rows are not deletable.
func (r *UserJobRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM user_jobs WHERE id = $1 AND NOT approved`, id)
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}
