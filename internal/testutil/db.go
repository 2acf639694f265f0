package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/notscrum/internal/database"
	"github.com/thenoetrevino/notscrum/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema.
// The pool is limited to one connection: every new connection to ":memory:"
// would otherwise see its own empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestBoard inserts a board without default lanes
func CreateTestBoard(t *testing.T, db *sql.DB, name string) *models.Board {
	t.Helper()
	b, err := database.NewRepository(db).Boards.Create(context.Background(), name, "")
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return b
}

// CreateTestLane inserts a lane at an explicit position
func CreateTestLane(t *testing.T, db *sql.DB, boardID int, name string, position int) *models.Lane {
	t.Helper()
	l, err := database.NewRepository(db).Lanes.Create(context.Background(), name, boardID, position)
	if err != nil {
		t.Fatalf("Failed to create test lane: %v", err)
	}
	return l
}

// CreateTestCard inserts a card at an explicit position
func CreateTestCard(t *testing.T, db *sql.DB, laneID int, title string, position int) *models.Card {
	t.Helper()
	c, err := database.NewRepository(db).Cards.Create(context.Background(), &models.Card{
		Title:    title,
		Color:    models.DefaultCardColor,
		Position: position,
		LaneID:   laneID,
	})
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return c
}

// IntPtr returns a pointer to i
func IntPtr(i int) *int {
	return &i
}
