package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/chorebank/chorebank/internal/domain/changefeed"
)

// ChangeRepo blocks on Postgres LISTEN/NOTIFY channels fed by the
// per-table triggers installed in the migrations.
type ChangeRepo struct {
	DB *sql.DB
}

// NewChangeRepo creates a new ChangeRepo.
func NewChangeRepo(db *sql.DB) *ChangeRepo {
	return &ChangeRepo{DB: db}
}

// WaitForChange waits until any row in the given table is inserted, updated
// or deleted. It pins a dedicated connection for the duration of the wait.
func (r *ChangeRepo) WaitForChange(ctx context.Context, table changefeed.Table) error {
	if !table.Valid() {
		return fmt.Errorf("unknown change table %q", table)
	}

	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get conn from pool: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			_ = cerr
		}
	}()

	channel := "changed_" + string(table)
	quoted := pgx.Identifier{channel}.Sanitize()

	if _, execErr := conn.ExecContext(ctx, "LISTEN "+quoted); execErr != nil {
		return fmt.Errorf("listen %s: %w", channel, execErr)
	}
	defer func() {
		if _, execErr := conn.ExecContext(context.Background(), "UNLISTEN "+quoted); execErr != nil {
			_ = execErr
		}
	}()

	return conn.Raw(func(dc any) error {
		sc, ok := dc.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type; expected *stdlib.Conn")
		}
		_, notifyErr := sc.Conn().WaitForNotification(ctx)
		return notifyErr
	})
}
