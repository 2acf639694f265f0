package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; PRAGMA user_version records how many ran
var migrations = []string{
	`
	CREATE TABLE IF NOT EXISTS boards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lanes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		board_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_lanes_board ON lanes(board_id, position);

	CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT 'white',
		position INTEGER NOT NULL,
		due_date DATETIME,
		lane_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (lane_id) REFERENCES lanes(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_cards_lane ON cards(lane_id, position);
	`,
}

// Migrate brings the schema of db up to date. It is safe to call repeatedly.
func Migrate(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db)
}

// SchemaVersion reports how many migrations have been applied to db
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	version, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}

	for i := version; i < len(migrations); i++ {
		err := WithTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
				return fmt.Errorf("migration %d: %w", i+1, err)
			}
			// PRAGMA does not accept bound parameters
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
				return fmt.Errorf("failed to record schema version %d: %w", i+1, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
