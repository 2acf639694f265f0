package fixtures

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/notscrum/internal/database"
	"github.com/thenoetrevino/notscrum/internal/ordering"
	"github.com/thenoetrevino/notscrum/internal/testutil"
)

func TestParseFile(t *testing.T) {
	seed, err := ParseFile("testdata/board.yaml")
	require.NoError(t, err)

	require.Len(t, seed.Boards, 2)
	b := seed.Boards[0]
	assert.Equal(t, "Website relaunch", b.Name)
	require.Len(t, b.Lanes, 3)
	require.Len(t, b.Lanes[0].Cards, 3)

	card := b.Lanes[0].Cards[0]
	assert.Equal(t, "red", card.Color)
	require.NotNil(t, card.DueDate)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), card.DueDate.UTC())
	assert.Contains(t, card.Description, "regression test")

	assert.Equal(t, "Review PR #42", b.Lanes[1].Cards[1].Title)
	assert.Empty(t, seed.Boards[1].Lanes)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty document", "", "seed file is empty"},
		{"no boards", "boards: []", "seed has no boards"},
		{"unknown key", "boards:\n  - name: A\n    colour: red\n", "colour"},
		{"board without name", "boards:\n  - description: x\n", "boards[0]: name cannot be empty"},
		{"lane without name", "boards:\n  - name: A\n    lanes:\n      - cards: []\n", "boards[0].lanes[0]: name cannot be empty"},
		{"card without title", "boards:\n  - name: A\n    lanes:\n      - name: L\n        cards:\n          - color: red\n", "boards[0].lanes[0].cards[0]: title cannot be empty"},
		{"long board name", "boards:\n  - name: " + strings.Repeat("b", 101) + "\n", "boards[0]: name cannot exceed 100 characters"},
		{"long description", "boards:\n  - name: A\n    description: " + strings.Repeat("d", 2001) + "\n", "boards[0]: description cannot exceed 2000 characters"},
		{"long lane name", "boards:\n  - name: A\n    lanes:\n      - name: " + strings.Repeat("l", 101) + "\n", "boards[0].lanes[0]: name cannot exceed 100 characters"},
		{"long card title", "boards:\n  - name: A\n    lanes:\n      - name: L\n        cards:\n          - title: " + strings.Repeat("t", 201) + "\n", "boards[0].lanes[0].cards[0]: title cannot exceed 200 characters"},
		{"long color", "boards:\n  - name: A\n    lanes:\n      - name: L\n        cards:\n          - title: x\n            color: " + strings.Repeat("c", 21) + "\n", "boards[0].lanes[0].cards[0]: color cannot exceed 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ordering.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	seed, err := ParseFile("testdata/board.yaml")
	require.NoError(t, err)

	sum, err := Apply(ctx, db, seed)
	require.NoError(t, err)
	assert.Equal(t, Summary{Boards: 2, Lanes: 3, Cards: 6}, sum)

	repo := database.NewRepository(db)
	boards, err := repo.Boards.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)

	lanes, err := repo.Lanes.FindByScope(ctx, boards[0].ID)
	require.NoError(t, err)
	require.Len(t, lanes, 3)
	for i, l := range lanes {
		assert.Equal(t, i, l.Position)
	}
	assert.Equal(t, "In Progress", lanes[1].Name)

	cards, err := repo.Cards.FindByScope(ctx, lanes[0].ID)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, []string{"Fix auth bug", "Refactor UI", "Update deps"},
		[]string{cards[0].Title, cards[1].Title, cards[2].Title})
	assert.Equal(t, 2, cards[2].Position)
	assert.Equal(t, "white", cards[1].Color)
	require.NotNil(t, cards[0].DueDate)
}

func TestApply_ExplicitPositions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	seed, err := Parse(strings.NewReader(`
boards:
  - name: Positions
    lanes:
      - name: Later
        position: 5
      - name: Next
        cards:
          - title: pinned
            position: 3
          - title: appended
`))
	require.NoError(t, err)

	_, err = Apply(ctx, db, seed)
	require.NoError(t, err)

	repo := database.NewRepository(db)
	lanes, err := repo.Lanes.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, lanes, 2)
	assert.Equal(t, 5, lanes[0].Position)
	assert.Equal(t, "Next", lanes[1].Name)
	assert.Equal(t, 6, lanes[1].Position, "appended after the explicit maximum")

	cards, err := repo.Cards.FindByScope(ctx, lanes[1].ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, 3, cards[0].Position)
	assert.Equal(t, 4, cards[1].Position)
}

func TestApply_NegativePositionsSortFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	seed, err := Parse(strings.NewReader(`
boards:
  - name: Negative
    lanes:
      - name: Todo
        cards:
          - title: first
          - title: urgent
            position: -1
      - name: Backlog
        position: -1
`))
	require.NoError(t, err)

	_, err = Apply(ctx, db, seed)
	require.NoError(t, err)

	repo := database.NewRepository(db)
	boards, err := repo.Boards.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)

	lanes, err := repo.Lanes.FindByScope(ctx, boards[0].ID)
	require.NoError(t, err)
	require.Len(t, lanes, 2)
	assert.Equal(t, "Backlog", lanes[0].Name)
	assert.Equal(t, -1, lanes[0].Position)

	cards, err := repo.Cards.FindByScope(ctx, lanes[1].ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "urgent", cards[0].Title)
	assert.Equal(t, -1, cards[0].Position)
}

func TestApply_RejectsOverlongFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	seed := &Seed{Boards: []Board{{
		Name:  strings.Repeat("b", 300),
		Lanes: []Lane{{Name: "L", Cards: []Card{{Title: "x", Color: strings.Repeat("c", 50)}}}},
	}}}

	_, err := Apply(ctx, db, seed)
	require.ErrorIs(t, err, ordering.ErrValidation)

	boards, err := database.NewRepository(db).Boards.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestApply_RollsBackOnFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		CREATE TRIGGER reject_card BEFORE INSERT ON cards
		WHEN NEW.title = 'boom'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	seed := &Seed{Boards: []Board{
		{Name: "First", Lanes: []Lane{{Name: "L", Cards: []Card{{Title: "fine"}}}}},
		{Name: "Second", Lanes: []Lane{{Name: "L", Cards: []Card{{Title: "boom"}}}}},
	}}

	_, err = Apply(ctx, db, seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `board "Second"`)

	repo := database.NewRepository(db)
	boards, err := repo.Boards.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, boards)

	cards, err := repo.Cards.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
