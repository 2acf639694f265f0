package lane

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
)

const MaxNameLength = 100

// Service defines all lane-related business operations
type Service interface {
	// Read operations
	ListLanes(ctx context.Context) ([]*models.Lane, error)
	ListLanesByBoard(ctx context.Context, boardID int) ([]*models.Lane, error)
	GetLane(ctx context.Context, id int) (*models.Lane, error)

	// Write operations
	CreateLane(ctx context.Context, req CreateLaneRequest) (*models.Lane, error)
	UpdateLane(ctx context.Context, req UpdateLaneRequest) (*models.Lane, error)
	DeleteLane(ctx context.Context, id int) error
	ReorderLanes(ctx context.Context, boardID int, laneIDs []int) ([]*models.Lane, error)
}

// CreateLaneRequest encapsulates data for creating a lane
type CreateLaneRequest struct {
	Name     string
	BoardID  int
	Position *int // nil = append after the last lane of the board
}

// UpdateLaneRequest encapsulates data for updating a lane.
// Position is stored verbatim; use ReorderLanes to renumber a board.
type UpdateLaneRequest struct {
	ID       int
	Name     *string
	Position *int
}

type service struct {
	db *sql.DB
}

// NewService creates a new lane service
func NewService(db *sql.DB) Service {
	return &service{db: db}
}

// ListLanes retrieves every lane of every board
func (s *service) ListLanes(ctx context.Context) ([]*models.Lane, error) {
	return database.NewRepository(s.db).Lanes.FindAll(ctx)
}

// ListLanesByBoard retrieves the lanes of a board in display order
func (s *service) ListLanesByBoard(ctx context.Context, boardID int) ([]*models.Lane, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	repo := database.NewRepository(s.db)
	if _, err := repo.Boards.FindByID(ctx, boardID); err != nil {
		return nil, err
	}
	return repo.Lanes.FindByScope(ctx, boardID)
}

// GetLane retrieves a lane by ID
func (s *service) GetLane(ctx context.Context, id int) (*models.Lane, error) {
	if id <= 0 {
		return nil, ErrInvalidLaneID
	}
	return database.NewRepository(s.db).Lanes.FindByID(ctx, id)
}

// CreateLane creates a lane on a board, appending it unless a position is given
func (s *service) CreateLane(ctx context.Context, req CreateLaneRequest) (*models.Lane, error) {
	if err := s.validateCreateLane(req); err != nil {
		return nil, err
	}

	var created *models.Lane
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		if _, err := repo.Boards.FindByID(ctx, req.BoardID); err != nil {
			return err
		}

		position, err := ordering.AssignPosition(ctx, repo.Lanes, req.BoardID, req.Position)
		if err != nil {
			return err
		}

		created, err = repo.Lanes.Create(ctx, req.Name, req.BoardID, position)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("lane created", "lane_id", created.ID, "board_id", created.BoardID, "position", created.Position)
	return created, nil
}

// UpdateLane changes name and/or position
func (s *service) UpdateLane(ctx context.Context, req UpdateLaneRequest) (*models.Lane, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidLaneID
	}
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}

	var updated *models.Lane
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		l, err := repo.Lanes.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			l.Name = *req.Name
		}
		if req.Position != nil {
			l.Position = *req.Position
		}
		if err := repo.Lanes.Update(ctx, l); err != nil {
			return err
		}

		updated, err = repo.Lanes.FindByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteLane deletes a lane and its cards. Remaining lanes are not renumbered.
func (s *service) DeleteLane(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidLaneID
	}
	return database.NewRepository(s.db).Lanes.Delete(ctx, id)
}

// ReorderLanes sets lane laneIDs[i] of the board to position i and returns the
// board's lanes in their new order. Either every position is written or none is.
func (s *service) ReorderLanes(ctx context.Context, boardID int, laneIDs []int) ([]*models.Lane, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}

	var lanes []*models.Lane
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		if _, err := repo.Boards.FindByID(ctx, boardID); err != nil {
			return err
		}

		var err error
		lanes, err = ordering.Reorder[*models.Lane](ctx, repo.Lanes, boardID, laneIDs)
		return err
	})
	if err != nil {
		slog.Warn("lane reorder rejected", "board_id", boardID, "lane_ids", laneIDs, "error", err)
		return nil, err
	}
	return lanes, nil
}

// validateCreateLane validates a CreateLaneRequest
func (s *service) validateCreateLane(req CreateLaneRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if req.BoardID <= 0 {
		return ErrInvalidBoardID
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w (got %d)", ErrNameTooLong, utf8.RuneCountInString(name))
	}
	return nil
}
