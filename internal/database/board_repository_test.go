package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

func TestBoardCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Boards.Create(ctx, "Sprint 1", "first sprint")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Expected board to get an ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	found, err := repo.Boards.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to find board: %v", err)
	}
	if found.Name != "Sprint 1" || found.Description != "first sprint" {
		t.Errorf("Unexpected board %+v", found)
	}
}

func TestBoardFindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	boards, err := repo.Boards.FindAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if boards == nil || len(boards) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", boards)
	}

	first := createTestBoard(t, repo, "First")
	second := createTestBoard(t, repo, "Second")

	boards, err = repo.Boards.FindAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to list boards: %v", err)
	}
	if len(boards) != 2 || boards[0].ID != first.ID || boards[1].ID != second.ID {
		t.Errorf("Expected boards in ID order, got %v", boards)
	}
}

func TestBoardUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	b := createTestBoard(t, repo, "Old")

	b.Name = "New"
	b.Description = "changed"
	if err := repo.Boards.Update(ctx, b); err != nil {
		t.Fatalf("Failed to update board: %v", err)
	}

	found, err := repo.Boards.FindByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("Failed to find board: %v", err)
	}
	if found.Name != "New" || found.Description != "changed" {
		t.Errorf("Update not persisted: %+v", found)
	}
	if found.UpdatedAt.Before(found.CreatedAt) {
		t.Error("updated_at should not precede created_at")
	}
}

func TestBoardNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if _, err := repo.Boards.FindByID(ctx, 42); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("FindByID: expected ErrNotFound, got %v", err)
	}
	b := createTestBoard(t, repo, "Real")
	b.ID = 42
	if err := repo.Boards.Update(ctx, b); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Boards.Delete(ctx, 42); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

// TestBoardDeleteCascades verifies lanes and cards are removed with their board
func TestBoardDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	doomed := createTestBoard(t, repo, "Doomed")
	kept := createTestBoard(t, repo, "Kept")
	lane := createTestLane(t, repo, doomed.ID, "Todo", 0)
	createTestCard(t, repo, lane.ID, "A", 0)
	createTestCard(t, repo, lane.ID, "B", 1)
	keptLane := createTestLane(t, repo, kept.ID, "Todo", 0)
	createTestCard(t, repo, keptLane.ID, "C", 0)

	if err := repo.Boards.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("Failed to delete board: %v", err)
	}

	if n := countRows(t, db, "lanes"); n != 1 {
		t.Errorf("Expected 1 lane after cascade, got %d", n)
	}
	if n := countRows(t, db, "cards"); n != 1 {
		t.Errorf("Expected 1 card after cascade, got %d", n)
	}
	if _, err := repo.Lanes.FindByID(ctx, lane.ID); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("Expected lane to be gone, got %v", err)
	}
}
