package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/notscrum/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations.
// This package cannot import testutil (testutil imports database).
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ============================================================================
// DATA CREATION HELPERS
// ============================================================================

func createTestBoard(t *testing.T, repo *Repository, name string) *models.Board {
	t.Helper()
	b, err := repo.Boards.Create(context.Background(), name, "")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return b
}

func createTestLane(t *testing.T, repo *Repository, boardID int, name string, position int) *models.Lane {
	t.Helper()
	l, err := repo.Lanes.Create(context.Background(), name, boardID, position)
	if err != nil {
		t.Fatalf("Failed to create lane: %v", err)
	}
	return l
}

func createTestCard(t *testing.T, repo *Repository, laneID int, title string, position int) *models.Card {
	t.Helper()
	c, err := repo.Cards.Create(context.Background(), &models.Card{
		Title:    title,
		Color:    models.DefaultCardColor,
		Position: position,
		LaneID:   laneID,
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	return c
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
