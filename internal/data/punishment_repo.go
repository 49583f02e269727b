package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/data/pgxutil"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
)

const punishmentColumns = `
  id,
  user_id,
  amount,
  reason,
  created_at
`

// PunishmentRepo provides database operations for punishment records.
type PunishmentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPunishmentRepo creates a new PunishmentRepo with real time provider.
func NewPunishmentRepo(db *sql.DB) *PunishmentRepo {
	return &PunishmentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPunishmentRepoWithTimeProvider creates a new PunishmentRepo with a custom time provider (useful for tests).
func NewPunishmentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PunishmentRepo {
	return &PunishmentRepo{DB: db, timeProvider: tp}
}

// CreateAndDebit settles a punishment: it debits the user's balance and
// inserts the audit row in one transaction. The debit is guarded so a racing
// settlement can never drive the balance below zero. Returns the stored
// punishment and the user's new balance.
func (r *PunishmentRepo) CreateAndDebit(ctx context.Context, req *model.CreatePunishmentRequest) (*model.Punishment, int64, error) {
	if req == nil {
		return nil, 0, errors.New("create punishment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	var (
		out        model.Punishment
		newBalance int64
	)
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		scanErr := tx.QueryRow(ctx, `
			UPDATE profiles SET money = money - $2
			WHERE id = $1 AND money >= $2
			RETURNING money`,
			req.UserID, req.Amount).Scan(&newBalance)
		if scanErr != nil {
			return scanErr
		}

		rows, qerr := tx.Query(ctx, `
			INSERT INTO punishment (
				user_id, amount, reason, created_at
			) VALUES (
				$1, $2, $3, $4
			) RETURNING `+punishmentColumns,
			req.UserID,
			req.Amount,
			strings.TrimSpace(req.Reason),
			r.timeProvider.Now().UTC(),
		)
		if qerr != nil {
			return qerr
		}
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Punishment])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, r.debitConflict(ctx, req.UserID)
		}
		return nil, 0, apperrors.MapDBError(err)
	}
	return &out, newBalance, nil
}

// debitConflict distinguishes a missing profile from an insufficient balance.
func (r *PunishmentRepo) debitConflict(ctx context.Context, userID string) error {
	var money int64
	err := r.DB.QueryRowContext(ctx, `SELECT money FROM profiles WHERE id = $1`, userID).Scan(&money)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("Profile not found")
	}
	if err != nil {
		return fmt.Errorf("failed to check profile balance: %w", err)
	}
	return apperrors.InsufficientBalance("Balance is too low for this punishment")
}

// List retrieves punishment history joined with the owner's display name,
// newest first.
func (r *PunishmentRepo) List(ctx context.Context, opts core.PunishmentListOptions) ([]*model.PunishmentWithName, error) {
	query := `
		SELECT p.id, p.user_id, p.amount, p.reason, p.created_at, pr.name AS user_name
		FROM punishment p
		JOIN profiles pr ON pr.id = p.user_id`
	args := make([]any, 0, 2)
	if opts.UserID != "" {
		args = append(args, opts.UserID)
		query += ` WHERE p.user_id = $1`
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	var rowsOut []model.PunishmentWithName
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.PunishmentWithName])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list punishments: %w", err)
	}

	res := make([]*model.PunishmentWithName, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete removes a punishment record. The debited amount stays debited, the
// record is only dropped from history.
func (r *PunishmentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM punishment WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}
