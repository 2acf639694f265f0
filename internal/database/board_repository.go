package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db DBTX
}

const boardColumns = `id, name, description, created_at, updated_at`

func scanBoard(row rowScanner) (*models.Board, error) {
	b := &models.Board{}
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a new board and returns it as stored
func (r *BoardRepo) Create(ctx context.Context, name, description string) (*models.Board, error) {
	ts := now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		name, description, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert board: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, int(id))
}

// FindByID retrieves a board by its ID
func (r *BoardRepo) FindByID(ctx context.Context, id int) (*models.Board, error) {
	b, err := scanBoard(r.db.QueryRowContext(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: board %d", ordering.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board %d: %w", id, err)
	}
	return b, nil
}

// FindAll retrieves every board ordered by ID
func (r *BoardRepo) FindAll(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+boardColumns+` FROM boards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// Update saves name and description of an existing board
func (r *BoardRepo) Update(ctx context.Context, b *models.Board) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE boards SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		b.Name, b.Description, now(), b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update board %d: %w", b.ID, err)
	}
	return expectOneRow(result, fmt.Errorf("%w: board %d", ordering.ErrNotFound, b.ID))
}

// Delete removes a board; its lanes and their cards go with it
func (r *BoardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board %d: %w", id, err)
	}
	return expectOneRow(result, fmt.Errorf("%w: board %d", ordering.ErrNotFound, id))
}
