package models

import "time"

// Board is the top-level container of lanes.
type Board struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Lanes is only populated when a board is loaded together with its lanes
	Lanes []*Lane `json:"lanes,omitempty"`
}

// GetID returns the board ID
func (b *Board) GetID() int { return b.ID }
