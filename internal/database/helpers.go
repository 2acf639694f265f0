package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a repository can be bound
// either to the pool (reads) or to a unit of work (writes)
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// now is the timestamp source for created_at/updated_at
func now() time.Time {
	return time.Now().UTC()
}

// nullTimeToPtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

// ptrToNullTime converts *time.Time to sql.NullTime
func ptrToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// maxPosition runs a MAX(position) query over a scope column.
// ok is false when the scope has no rows.
func maxPosition(ctx context.Context, db DBTX, table, scopeColumn string, scopeID int) (int, bool, error) {
	var highest sql.NullInt64
	query := fmt.Sprintf("SELECT MAX(position) FROM %s WHERE %s = ?", table, scopeColumn)
	if err := db.QueryRowContext(ctx, query, scopeID).Scan(&highest); err != nil {
		return 0, false, fmt.Errorf("failed to get max position from %s for %d: %w", table, scopeID, err)
	}
	if !highest.Valid {
		return 0, false, nil
	}
	return int(highest.Int64), true, nil
}

// expectOneRow turns a zero-row UPDATE/DELETE into a not-found error
func expectOneRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
