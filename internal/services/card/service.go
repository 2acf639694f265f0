package card

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/notscrum/internal/database"
	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
)

const (
	MaxTitleLength = 200
	MaxColorLength = 20
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	ListCards(ctx context.Context) ([]*models.Card, error)
	ListCardsByLane(ctx context.Context, laneID int) ([]*models.Card, error)
	GetCard(ctx context.Context, id int) (*models.Card, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, id int) error

	// Ordering operations
	ReorderCards(ctx context.Context, laneID int, cardIDs []int) ([]*models.Card, error)
	MoveCard(ctx context.Context, req MoveCardRequest) (*models.Card, error)
}

// CreateCardRequest encapsulates data for creating a card
type CreateCardRequest struct {
	Title       string
	Description string
	Color       string // empty = models.DefaultCardColor
	LaneID      int
	Position    *int // nil = append after the last card of the lane
	DueDate     *time.Time
}

// UpdateCardRequest encapsulates data for updating a card.
// Nil fields are left unchanged. A new LaneID relocates the card without
// touching other cards; Position is stored verbatim.
type UpdateCardRequest struct {
	ID          int
	Title       *string
	Description *string
	Color       *string
	LaneID      *int
	Position    *int
	DueDate     *time.Time
}

// MoveCardRequest encapsulates data for moving a card between lanes
type MoveCardRequest struct {
	CardID    int
	LaneID    int
	Position  *int  // nil = append to the target lane
	CardOrder []int // optional full ordering of the target lane
}

type service struct {
	db *sql.DB
}

// NewService creates a new card service
func NewService(db *sql.DB) Service {
	return &service{db: db}
}

// ListCards retrieves every card
func (s *service) ListCards(ctx context.Context) ([]*models.Card, error) {
	return database.NewRepository(s.db).Cards.FindAll(ctx)
}

// ListCardsByLane retrieves the cards of a lane in display order
func (s *service) ListCardsByLane(ctx context.Context, laneID int) ([]*models.Card, error) {
	if laneID <= 0 {
		return nil, ErrInvalidLaneID
	}
	repo := database.NewRepository(s.db)
	if _, err := repo.Lanes.FindByID(ctx, laneID); err != nil {
		return nil, err
	}
	return repo.Cards.FindByScope(ctx, laneID)
}

// GetCard retrieves a card by ID
func (s *service) GetCard(ctx context.Context, id int) (*models.Card, error) {
	if id <= 0 {
		return nil, ErrInvalidCardID
	}
	return database.NewRepository(s.db).Cards.FindByID(ctx, id)
}

// CreateCard creates a card in a lane, appending it unless a position is given
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if err := s.validateCreateCard(req); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = models.DefaultCardColor
	}

	var created *models.Card
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		if _, err := repo.Lanes.FindByID(ctx, req.LaneID); err != nil {
			return err
		}

		position, err := ordering.AssignPosition(ctx, repo.Cards, req.LaneID, req.Position)
		if err != nil {
			return err
		}

		created, err = repo.Cards.Create(ctx, &models.Card{
			Title:       req.Title,
			Description: req.Description,
			Color:       color,
			Position:    position,
			DueDate:     req.DueDate,
			LaneID:      req.LaneID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("card created", "card_id", created.ID, "lane_id", created.LaneID, "position", created.Position)
	return created, nil
}

// UpdateCard applies the non-nil fields of req to a card
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error) {
	if err := s.validateUpdateCard(req); err != nil {
		return nil, err
	}

	var updated *models.Card
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		c, err := repo.Cards.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Color != nil {
			c.Color = *req.Color
		}
		if req.DueDate != nil {
			c.DueDate = req.DueDate
		}
		if req.Position != nil {
			c.Position = *req.Position
		}
		if req.LaneID != nil && *req.LaneID != c.LaneID {
			if _, err := repo.Lanes.FindByID(ctx, *req.LaneID); err != nil {
				return err
			}
			c.LaneID = *req.LaneID
		}

		if err := repo.Cards.Update(ctx, c); err != nil {
			return err
		}

		updated, err = repo.Cards.FindByID(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCard deletes a card. Remaining cards of the lane are not renumbered.
func (s *service) DeleteCard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCardID
	}
	return database.NewRepository(s.db).Cards.Delete(ctx, id)
}

// ReorderCards sets card cardIDs[i] of the lane to position i and returns the
// lane's cards in their new order. Either every position is written or none is.
func (s *service) ReorderCards(ctx context.Context, laneID int, cardIDs []int) ([]*models.Card, error) {
	if laneID <= 0 {
		return nil, ErrInvalidLaneID
	}

	var cards []*models.Card
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		if _, err := repo.Lanes.FindByID(ctx, laneID); err != nil {
			return err
		}

		var err error
		cards, err = ordering.Reorder[*models.Card](ctx, repo.Cards, laneID, cardIDs)
		return err
	})
	if err != nil {
		slog.Warn("card reorder rejected", "lane_id", laneID, "card_ids", cardIDs, "error", err)
		return nil, err
	}
	return cards, nil
}

// MoveCard relocates a card to another lane (or the end of its own) in one transaction
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) (*models.Card, error) {
	if req.CardID <= 0 {
		return nil, ErrInvalidCardID
	}
	if req.LaneID <= 0 {
		return nil, ErrInvalidLaneID
	}

	var moved *models.Card
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		var err error
		moved, err = ordering.Move(ctx, repo.Cards, repo.Lanes, ordering.MoveRequest{
			CardID:       req.CardID,
			TargetLaneID: req.LaneID,
			Position:     req.Position,
			TargetOrder:  req.CardOrder,
		})
		return err
	})
	if err != nil {
		slog.Warn("card move rejected", "card_id", req.CardID, "lane_id", req.LaneID, "error", err)
		return nil, err
	}

	slog.Debug("card moved", "card_id", moved.ID, "lane_id", moved.LaneID, "position", moved.Position)
	return moved, nil
}

// validateCreateCard validates a CreateCardRequest
func (s *service) validateCreateCard(req CreateCardRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if utf8.RuneCountInString(req.Color) > MaxColorLength {
		return ErrColorTooLong
	}
	if req.LaneID <= 0 {
		return ErrInvalidLaneID
	}
	return nil
}

// validateUpdateCard validates an UpdateCardRequest
func (s *service) validateUpdateCard(req UpdateCardRequest) error {
	if req.ID <= 0 {
		return ErrInvalidCardID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Color != nil && utf8.RuneCountInString(*req.Color) > MaxColorLength {
		return ErrColorTooLong
	}
	if req.LaneID != nil && *req.LaneID <= 0 {
		return ErrInvalidLaneID
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
