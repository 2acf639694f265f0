package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestWithTxCommits(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		repo := NewRepository(tx)
		b := createTestBoard(t, repo, "Board")
		createTestLane(t, repo, b.ID, "Todo", 0)
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if n := countRows(t, db, "lanes"); n != 1 {
		t.Errorf("Expected committed lane, got %d rows", n)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	db := setupTestDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		repo := NewRepository(tx)
		b := createTestBoard(t, repo, "Board")
		createTestLane(t, repo, b.ID, "Todo", 0)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected callback error to be returned, got %v", err)
	}

	if n := countRows(t, db, "boards"); n != 0 {
		t.Errorf("Expected rollback to discard board, got %d rows", n)
	}
	if n := countRows(t, db, "lanes"); n != 0 {
		t.Errorf("Expected rollback to discard lane, got %d rows", n)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	version, err := SchemaVersion(ctx, db)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("Expected schema version %d, got %d", len(migrations), version)
	}

	createTestBoard(t, NewRepository(db), "Survives")

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Second Migrate failed: %v", err)
	}
	if n := countRows(t, db, "boards"); n != 1 {
		t.Errorf("Re-running migrations must not touch data, got %d boards", n)
	}
}

func TestInitDBCreatesFile(t *testing.T) {
	path := t.TempDir() + "/nested/notscrum.db"

	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("Failed to read pragma: %v", err)
	}
	if fk != 1 {
		t.Error("Expected foreign keys to be enabled")
	}

	version, err := SchemaVersion(context.Background(), db)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("Expected schema version %d, got %d", len(migrations), version)
	}
}
