package board

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/notscrum/internal/database"
	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
)

// DefaultLaneNames are the lanes every new board starts with
var DefaultLaneNames = []string{"To Do", "In Progress", "Done"}

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id int) (*models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, id int) error
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Name        string
	Description string
}

// UpdateBoardRequest encapsulates data for updating a board.
// Nil fields are left unchanged.
type UpdateBoardRequest struct {
	ID          int
	Name        *string
	Description *string
}

type service struct {
	db           *sql.DB
	defaultLanes []string
}

// NewService creates a new board service. defaultLanes are created, in order,
// with every new board; nil selects DefaultLaneNames and an empty slice disables them.
func NewService(db *sql.DB, defaultLanes []string) Service {
	if defaultLanes == nil {
		defaultLanes = DefaultLaneNames
	}
	return &service{
		db:           db,
		defaultLanes: defaultLanes,
	}
}

// ListBoards retrieves every board without its lanes
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return database.NewRepository(s.db).Boards.FindAll(ctx)
}

// GetBoard retrieves a board with its lanes in display order
func (s *service) GetBoard(ctx context.Context, id int) (*models.Board, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}

	repo := database.NewRepository(s.db)
	b, err := repo.Boards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Lanes, err = repo.Lanes.FindByScope(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to load lanes of board %d: %w", id, err)
	}
	return b, nil
}

// CreateBoard creates a board and its default lanes in one transaction
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	for _, name := range s.defaultLanes {
		if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > laneservice.MaxNameLength {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidDefaultLaneSet, name)
		}
	}

	var created *models.Board
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		b, err := repo.Boards.Create(ctx, req.Name, req.Description)
		if err != nil {
			return err
		}

		for _, name := range s.defaultLanes {
			position, err := ordering.AssignPosition(ctx, repo.Lanes, b.ID, nil)
			if err != nil {
				return err
			}
			lane, err := repo.Lanes.Create(ctx, name, b.ID, position)
			if err != nil {
				return fmt.Errorf("failed to create default lane %q: %w", name, err)
			}
			b.Lanes = append(b.Lanes, lane)
		}

		created = b
		return nil
	})
	if err != nil {
		slog.Error("failed to create board", "name", req.Name, "error", err)
		return nil, err
	}

	return created, nil
}

// UpdateBoard changes name and/or description and returns the board with its lanes
func (s *service) UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidBoardID
	}
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
	}

	var updated *models.Board
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		b, err := repo.Boards.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			b.Name = *req.Name
		}
		if req.Description != nil {
			b.Description = *req.Description
		}
		if err := repo.Boards.Update(ctx, b); err != nil {
			return err
		}

		if updated, err = repo.Boards.FindByID(ctx, req.ID); err != nil {
			return err
		}
		updated.Lanes, err = repo.Lanes.FindByScope(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBoard deletes a board together with its lanes and cards
func (s *service) DeleteBoard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}
	return database.NewRepository(s.db).Boards.Delete(ctx, id)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
