package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

type verifyOptions struct {
	Timeout time.Duration
	All     bool
}

// balanceRow compares a profile's stored balance against the balance implied
// by its settlement history: approved payouts minus punishment debits.
type balanceRow struct {
	ID      string
	Name    string
	Email   string
	Money   int64
	Earned  int64
	Debited int64
}

func (r balanceRow) expected() int64 {
	return r.Earned - r.Debited
}

func (r balanceRow) drift() int64 {
	return r.Money - r.expected()
}

func runBalancesVerify(cmdCtx *commandContext, args []string) error {
	opts, err := parseVerifyFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		rows, fetchErr := fetchBalanceRows(ctx, db)
		if fetchErr != nil {
			return fetchErr
		}
		return reportBalanceRows(rows, opts)
	})
}

func parseVerifyFlags(args []string) (verifyOptions, error) {
	fs := flag.NewFlagSet("balances-verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := verifyOptions{
		Timeout: 2 * time.Minute,
	}
	fs.DurationVar(&opts.Timeout, "timeout", 2*time.Minute, "Maximum duration to wait for verification")
	fs.BoolVar(&opts.All, "all", false, "Print every profile, not just mismatches")

	if err := fs.Parse(args); err != nil {
		return verifyOptions{}, err
	}
	if opts.Timeout <= 0 {
		return verifyOptions{}, errors.New("--timeout must be greater than zero")
	}
	return opts, nil
}

func fetchBalanceRows(ctx context.Context, db *sql.DB) ([]balanceRow, error) {
	const q = `
		SELECT
			pr.id, pr.name, pr.email, pr.money,
			COALESCE(uj.earned, 0)  AS earned,
			COALESCE(pn.debited, 0) AS debited
		FROM profiles pr
		LEFT JOIN (
			SELECT user_id, SUM(payout) AS earned
			FROM user_jobs
			WHERE approved
			GROUP BY user_id
		) uj ON uj.user_id = pr.id
		LEFT JOIN (
			SELECT user_id, SUM(amount) AS debited
			FROM punishment
			GROUP BY user_id
		) pn ON pn.user_id = pr.id
		ORDER BY pr.name, pr.id
	`
	dbRows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query balances: %w", err)
	}
	defer func() {
		_ = dbRows.Close()
	}()

	var out []balanceRow
	for dbRows.Next() {
		var row balanceRow
		if scanErr := dbRows.Scan(&row.ID, &row.Name, &row.Email, &row.Money, &row.Earned, &row.Debited); scanErr != nil {
			return nil, fmt.Errorf("scan balance row: %w", scanErr)
		}
		out = append(out, row)
	}
	if rowsErr := dbRows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterate balance rows: %w", rowsErr)
	}
	return out, nil
}

func reportBalanceRows(rows []balanceRow, opts verifyOptions) error {
	mismatches := 0
	for _, row := range rows {
		if row.drift() != 0 {
			mismatches++
		}
	}

	if err := writef(os.Stdout, "\nBalance Verification (%d profiles, %d mismatched)\n\n", len(rows), mismatches); err != nil {
		return fmt.Errorf("print verify header: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Email\tStored\tEarned\tDebited\tExpected\tDrift"); err != nil {
		return fmt.Errorf("print verify columns: %w", err)
	}
	printed := 0
	for _, row := range rows {
		if !opts.All && row.drift() == 0 {
			continue
		}
		printed++
		if err := writef(
			w,
			"%s\t%d\t%d\t%d\t%d\t%+d\n",
			row.Email, row.Money, row.Earned, row.Debited, row.expected(), row.drift(),
		); err != nil {
			return fmt.Errorf("print verify row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush verify table: %w", err)
	}

	if printed == 0 {
		if err := writeln(os.Stdout, "(all balances consistent)"); err != nil {
			return fmt.Errorf("print verify summary: %w", err)
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d profiles have inconsistent balances", mismatches)
	}
	return nil
}
