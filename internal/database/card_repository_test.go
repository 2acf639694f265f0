package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
)

func TestCardCreateDefaultsAndDueDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	b := createTestBoard(t, repo, "Board")
	l := createTestLane(t, repo, b.ID, "Todo", 0)

	plain := createTestCard(t, repo, l.ID, "Plain", 0)
	if plain.DueDate != nil {
		t.Errorf("Expected nil due date, got %v", plain.DueDate)
	}
	if plain.Color != models.DefaultCardColor {
		t.Errorf("Expected color %q, got %q", models.DefaultCardColor, plain.Color)
	}

	due := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	dated, err := repo.Cards.Create(ctx, &models.Card{
		Title:       "Dated",
		Description: "has a deadline",
		Color:       "red",
		Position:    1,
		DueDate:     &due,
		LaneID:      l.ID,
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	if dated.DueDate == nil || !dated.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, dated.DueDate)
	}
	if dated.Color != "red" || dated.Description != "has a deadline" {
		t.Errorf("Unexpected card %+v", dated)
	}
}

func TestCardFindByScopeOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	b := createTestBoard(t, repo, "Board")
	l := createTestLane(t, repo, b.ID, "Todo", 0)
	other := createTestLane(t, repo, b.ID, "Other", 1)

	c := createTestCard(t, repo, l.ID, "C", 5)
	a := createTestCard(t, repo, l.ID, "A", 0)
	bb := createTestCard(t, repo, l.ID, "B", 0)
	createTestCard(t, repo, other.ID, "X", 0)

	cards, err := repo.Cards.FindByScope(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("Failed to list cards: %v", err)
	}
	want := []int{a.ID, bb.ID, c.ID}
	if len(cards) != len(want) {
		t.Fatalf("Expected %d cards, got %d", len(want), len(cards))
	}
	for i, id := range want {
		if cards[i].ID != id {
			t.Errorf("Index %d: expected card %d, got %d", i, id, cards[i].ID)
		}
	}

	all, err := repo.Cards.FindAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to list all cards: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 cards total, got %d", len(all))
	}
}

func TestCardRelocate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	b := createTestBoard(t, repo, "Board")
	from := createTestLane(t, repo, b.ID, "From", 0)
	to := createTestLane(t, repo, b.ID, "To", 1)
	card := createTestCard(t, repo, from.ID, "Card", 0)

	if err := repo.Cards.Relocate(ctx, card.ID, to.ID, 3); err != nil {
		t.Fatalf("Failed to relocate: %v", err)
	}

	found, err := repo.Cards.FindByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to find card: %v", err)
	}
	if found.LaneID != to.ID || found.Position != 3 {
		t.Errorf("Expected lane %d position 3, got lane %d position %d", to.ID, found.LaneID, found.Position)
	}

	if err := repo.Cards.Relocate(ctx, 999, to.ID, 0); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown card, got %v", err)
	}
	if err := repo.Cards.Relocate(ctx, card.ID, 999, 0); err == nil {
		t.Error("Expected foreign key violation for unknown lane")
	}
}

func TestCardUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	b := createTestBoard(t, repo, "Board")
	l := createTestLane(t, repo, b.ID, "Todo", 0)
	card := createTestCard(t, repo, l.ID, "Card", 0)

	due := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	card.Title = "Renamed"
	card.Color = "blue"
	card.DueDate = &due
	if err := repo.Cards.Update(ctx, card); err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}

	found, err := repo.Cards.FindByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to find card: %v", err)
	}
	if found.Title != "Renamed" || found.Color != "blue" {
		t.Errorf("Update not persisted: %+v", found)
	}
	if found.DueDate == nil || !found.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, found.DueDate)
	}

	// Clearing the due date stores NULL
	found.DueDate = nil
	if err := repo.Cards.Update(ctx, found); err != nil {
		t.Fatalf("Failed to clear due date: %v", err)
	}
	cleared, err := repo.Cards.FindByID(ctx, card.ID)
	if err != nil {
		t.Fatalf("Failed to find card: %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("Expected nil due date, got %v", cleared.DueDate)
	}
}

func TestCardNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	if _, err := repo.Cards.FindByID(ctx, 1); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("FindByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Cards.Update(ctx, &models.Card{ID: 1, Title: "x", Color: "white"}); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Cards.Delete(ctx, 1); !errors.Is(err, ordering.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}
