package models

import "time"

// Lane is an ordered column within a board (e.g., "To Do", "In Progress", "Done").
// Lanes of a board are displayed by ascending Position; ties fall back to ID.
type Lane struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BoardID   int       `json:"board_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lane) GetID() int       { return l.ID }
func (l *Lane) GetScopeID() int  { return l.BoardID }
func (l *Lane) GetPosition() int { return l.Position }
