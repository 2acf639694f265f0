package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// dueDate accepts RFC 3339 timestamps or plain dates (as sent by <input type="date">).
// null and "" leave Time nil.
type dueDate struct {
	Time *time.Time
}

var dueDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (d *dueDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: due_date must be a string", ordering.ErrValidation)
	}
	if s == "" {
		d.Time = nil
		return nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			d.Time = &t
			return nil
		}
	}
	return fmt.Errorf("%w: due_date %q is not a date", ordering.ErrValidation, s)
}

type boardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type laneRequest struct {
	Name     *string `json:"name"`
	BoardID  *int    `json:"board_id"`
	Position *int    `json:"position"`
}

type cardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	LaneID      *int    `json:"lane_id"`
	Position    *int    `json:"position"`
	DueDate     dueDate `json:"due_date"`
}

type laneOrderRequest struct {
	LaneOrder []int `json:"lane_order"`
}

type cardOrderRequest struct {
	CardOrder []int `json:"card_order"`
}

type moveRequest struct {
	LaneID    *int  `json:"lane_id"`
	Position  *int  `json:"position"`
	CardOrder []int `json:"card_order"`
}

// value returns *p, or "" for nil
func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// nonEmpty treats "" like an omitted field in partial updates
func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
