// Package fixtures loads boards, lanes and cards from YAML seed files.
//
// A seed file looks like:
//
//	boards:
//	  - name: Sprint 12
//	    lanes:
//	      - name: To Do
//	        cards:
//	          - title: Fix auth bug
//	            color: red
//	            due_date: 2026-11-01
//
// Lanes and cards are created in file order. Omitted positions are appended
// after the current maximum of their scope, so a seed can also extend an
// existing database.
package fixtures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/notscrum/internal/database"
	"github.com/thenoetrevino/notscrum/internal/models"
	"github.com/thenoetrevino/notscrum/internal/ordering"
	boardservice "github.com/thenoetrevino/notscrum/internal/services/board"
	cardservice "github.com/thenoetrevino/notscrum/internal/services/card"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// Seed is the root of a fixture file
type Seed struct {
	Boards []Board `yaml:"boards"`
}

// Board is a board with its lanes
type Board struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Lanes       []Lane `yaml:"lanes"`
}

// Lane is a lane with its cards
type Lane struct {
	Name     string `yaml:"name"`
	Position *int   `yaml:"position"`
	Cards    []Card `yaml:"cards"`
}

// Card is a single card. DueDate accepts any YAML timestamp, including plain dates.
type Card struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Color       string     `yaml:"color"`
	Position    *int       `yaml:"position"`
	DueDate     *time.Time `yaml:"due_date"`
}

// Summary counts what Apply created
type Summary struct {
	Boards int `json:"boards"`
	Lanes  int `json:"lanes"`
	Cards  int `json:"cards"`
}

// Parse decodes a seed from r. Unknown keys are rejected so typos surface
// instead of silently dropping data.
func Parse(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: seed file is empty", ordering.ErrValidation)
		}
		return nil, fmt.Errorf("%w: %v", ordering.ErrValidation, err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// ParseFile opens and parses the seed at path
func ParseFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate reports the first missing or over-long field, with its location in
// the file. The limits are the ones the services enforce, so a seed cannot
// store rows the API would reject. Explicit positions are kept as given.
func (s *Seed) Validate() error {
	if len(s.Boards) == 0 {
		return fmt.Errorf("%w: seed has no boards", ordering.ErrValidation)
	}
	for bi, b := range s.Boards {
		at := fmt.Sprintf("boards[%d]", bi)
		if err := checkText(at, "name", b.Name, boardservice.MaxNameLength); err != nil {
			return err
		}
		if utf8.RuneCountInString(b.Description) > boardservice.MaxDescriptionLength {
			return fmt.Errorf("%w: %s: description cannot exceed %d characters", ordering.ErrValidation, at, boardservice.MaxDescriptionLength)
		}
		for li, l := range b.Lanes {
			at := fmt.Sprintf("boards[%d].lanes[%d]", bi, li)
			if err := checkText(at, "name", l.Name, laneservice.MaxNameLength); err != nil {
				return err
			}
			for ci, c := range l.Cards {
				at := fmt.Sprintf("boards[%d].lanes[%d].cards[%d]", bi, li, ci)
				if err := checkText(at, "title", c.Title, cardservice.MaxTitleLength); err != nil {
					return err
				}
				if utf8.RuneCountInString(c.Color) > cardservice.MaxColorLength {
					return fmt.Errorf("%w: %s: color cannot exceed %d characters", ordering.ErrValidation, at, cardservice.MaxColorLength)
				}
			}
		}
	}
	return nil
}

func checkText(at, field, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s: %s cannot be empty", ordering.ErrValidation, at, field)
	}
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s: %s cannot exceed %d characters", ordering.ErrValidation, at, field, limit)
	}
	return nil
}

// Apply validates the seed and inserts it in one transaction. Either
// everything is created or nothing is.
func Apply(ctx context.Context, db *sql.DB, seed *Seed) (Summary, error) {
	if err := seed.Validate(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := database.NewRepository(tx)

		for _, b := range seed.Boards {
			board, err := repo.Boards.Create(ctx, strings.TrimSpace(b.Name), b.Description)
			if err != nil {
				return fmt.Errorf("failed to create board %q: %w", b.Name, err)
			}
			sum.Boards++

			for _, l := range b.Lanes {
				n, err := applyLane(ctx, repo, board.ID, l)
				if err != nil {
					return fmt.Errorf("board %q: %w", b.Name, err)
				}
				sum.Lanes++
				sum.Cards += n
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func applyLane(ctx context.Context, repo *database.Repository, boardID int, l Lane) (int, error) {
	position, err := ordering.AssignPosition(ctx, repo.Lanes, boardID, l.Position)
	if err != nil {
		return 0, err
	}
	lane, err := repo.Lanes.Create(ctx, strings.TrimSpace(l.Name), boardID, position)
	if err != nil {
		return 0, fmt.Errorf("failed to create lane %q: %w", l.Name, err)
	}

	for _, c := range l.Cards {
		position, err := ordering.AssignPosition(ctx, repo.Cards, lane.ID, c.Position)
		if err != nil {
			return 0, err
		}
		color := c.Color
		if color == "" {
			color = models.DefaultCardColor
		}
		_, err = repo.Cards.Create(ctx, &models.Card{
			Title:       strings.TrimSpace(c.Title),
			Description: c.Description,
			Color:       color,
			Position:    position,
			DueDate:     c.DueDate,
			LaneID:      lane.ID,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to create card %q: %w", c.Title, err)
		}
	}
	return len(l.Cards), nil
}
