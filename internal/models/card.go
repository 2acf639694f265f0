package models

import "time"

// DefaultCardColor is used when a card is created without a color
const DefaultCardColor = "white"

// Card is a task item owned by exactly one lane
type Card struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date"`
	LaneID      int        `json:"lane_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *Card) GetID() int       { return c.ID }
func (c *Card) GetScopeID() int  { return c.LaneID }
func (c *Card) GetPosition() int { return c.Position }
