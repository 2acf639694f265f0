package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// LaneRepo handles all lane-related database operations.
// Lanes are scoped by board_id.
type LaneRepo struct {
	db DBTX
}

var _ ordering.Collection[*models.Lane] = (*LaneRepo)(nil)

const laneColumns = `id, name, board_id, position, created_at, updated_at`

func scanLane(row rowScanner) (*models.Lane, error) {
	l := &models.Lane{}
	if err := row.Scan(&l.ID, &l.Name, &l.BoardID, &l.Position, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LaneRepo) queryLanes(ctx context.Context, query string, args ...any) ([]*models.Lane, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying lanes: %w", err)
	}
	defer rows.Close()

	lanes := []*models.Lane{}
	for rows.Next() {
		l, err := scanLane(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lane row: %w", err)
		}
		lanes = append(lanes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lane rows: %w", err)
	}
	return lanes, nil
}

// Create inserts a lane at the given position and returns it as stored
func (r *LaneRepo) Create(ctx context.Context, name string, boardID, position int) (*models.Lane, error) {
	ts := now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO lanes (name, board_id, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, boardID, position, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lane: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, int(id))
}

// FindByID retrieves a lane by its ID
func (r *LaneRepo) FindByID(ctx context.Context, id int) (*models.Lane, error) {
	l, err := scanLane(r.db.QueryRowContext(ctx,
		`SELECT `+laneColumns+` FROM lanes WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: lane %d", ordering.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lane %d: %w", id, err)
	}
	return l, nil
}

// FindByScope retrieves the lanes of a board in display order
func (r *LaneRepo) FindByScope(ctx context.Context, boardID int) ([]*models.Lane, error) {
	return r.queryLanes(ctx,
		`SELECT `+laneColumns+` FROM lanes WHERE board_id = ? ORDER BY position, id`, boardID)
}

// FindAll retrieves every lane of every board
func (r *LaneRepo) FindAll(ctx context.Context) ([]*models.Lane, error) {
	return r.queryLanes(ctx,
		`SELECT `+laneColumns+` FROM lanes ORDER BY board_id, position, id`)
}

// MaxPosition returns the highest lane position on a board
func (r *LaneRepo) MaxPosition(ctx context.Context, boardID int) (int, bool, error) {
	return maxPosition(ctx, r.db, "lanes", "board_id", boardID)
}

// SetPosition overwrites the position of a single lane
func (r *LaneRepo) SetPosition(ctx context.Context, id, position int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE lanes SET position = ?, updated_at = ? WHERE id = ?`,
		position, now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update lane position: %w", err)
	}
	return expectOneRow(result, fmt.Errorf("%w: lane %d", ordering.ErrNotFound, id))
}

// Update saves name and position of an existing lane
func (r *LaneRepo) Update(ctx context.Context, l *models.Lane) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE lanes SET name = ?, position = ?, updated_at = ? WHERE id = ?`,
		l.Name, l.Position, now(), l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lane %d: %w", l.ID, err)
	}
	return expectOneRow(result, fmt.Errorf("%w: lane %d", ordering.ErrNotFound, l.ID))
}

// Delete removes a lane and, through the foreign key, its cards
func (r *LaneRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lanes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lane %d: %w", id, err)
	}
	return expectOneRow(result, fmt.Errorf("%w: lane %d", ordering.ErrNotFound, id))
}
