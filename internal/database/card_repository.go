package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// CardRepo handles all card-related database operations.
// Cards are scoped by lane_id.
type CardRepo struct {
	db DBTX
}

var _ ordering.CardStore = (*CardRepo)(nil)

const cardColumns = `id, title, description, color, position, due_date, lane_id, created_at, updated_at`

func scanCard(row rowScanner) (*models.Card, error) {
	c := &models.Card{}
	var dueDate sql.NullTime
	if err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Color, &c.Position,
		&dueDate, &c.LaneID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.DueDate = nullTimeToPtr(dueDate)
	return c, nil
}

func (r *CardRepo) queryCards(ctx context.Context, query string, args ...any) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	return cards, nil
}

// Create inserts a card. LaneID and Position must already be resolved.
func (r *CardRepo) Create(ctx context.Context, c *models.Card) (*models.Card, error) {
	ts := now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (title, description, color, position, due_date, lane_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, c.Description, c.Color, c.Position, ptrToNullTime(c.DueDate), c.LaneID, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, int(id))
}

// FindByID retrieves a card by its ID
func (r *CardRepo) FindByID(ctx context.Context, id int) (*models.Card, error) {
	c, err := scanCard(r.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: card %d", ordering.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}
	return c, nil
}

// FindByScope retrieves the cards of a lane in display order
func (r *CardRepo) FindByScope(ctx context.Context, laneID int) ([]*models.Card, error) {
	return r.queryCards(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE lane_id = ? ORDER BY position, id`, laneID)
}

// FindAll retrieves every card
func (r *CardRepo) FindAll(ctx context.Context) ([]*models.Card, error) {
	return r.queryCards(ctx,
		`SELECT `+cardColumns+` FROM cards ORDER BY lane_id, position, id`)
}

// MaxPosition returns the highest card position in a lane
func (r *CardRepo) MaxPosition(ctx context.Context, laneID int) (int, bool, error) {
	return maxPosition(ctx, r.db, "cards", "lane_id", laneID)
}

// SetPosition overwrites the position of a single card
func (r *CardRepo) SetPosition(ctx context.Context, id, position int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards SET position = ?, updated_at = ? WHERE id = ?`,
		position, now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update card position: %w", err)
	}
	return expectOneRow(result, fmt.Errorf("%w: card %d", ordering.ErrNotFound, id))
}

// Relocate moves a card to a lane and position in one statement
func (r *CardRepo) Relocate(ctx context.Context, cardID, laneID, position int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards SET lane_id = ?, position = ?, updated_at = ? WHERE id = ?`,
		laneID, position, now(), cardID,
	)
	if err != nil {
		return fmt.Errorf("failed to relocate card: %w", err)
	}
	return expectOneRow(result, fmt.Errorf("%w: card %d", ordering.ErrNotFound, cardID))
}

// Update saves every mutable field of an existing card
func (r *CardRepo) Update(ctx context.Context, c *models.Card) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET title = ?, description = ?, color = ?, position = ?, due_date = ?, lane_id = ?, updated_at = ?
		 WHERE id = ?`,
		c.Title, c.Description, c.Color, c.Position, ptrToNullTime(c.DueDate), c.LaneID, now(), c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", c.ID, err)
	}
	return expectOneRow(result, fmt.Errorf("%w: card %d", ordering.ErrNotFound, c.ID))
}

// Delete removes a card
func (r *CardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", id, err)
	}
	return expectOneRow(result, fmt.Errorf("%w: card %d", ordering.ErrNotFound, id))
}
