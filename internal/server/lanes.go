package server

import (
	"net/http"

	"github.com/thenoetrevino/notscrum/internal/models"
	cardservice "github.com/thenoetrevino/notscrum/internal/services/card"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// laneWithCards is the single-lane view: the lane plus its cards in display order
type laneWithCards struct {
	*models.Lane
	Cards []*models.Card `json:"cards"`
}

// listLanes handles GET /api/lanes
func (s *Server) listLanes(w http.ResponseWriter, r *http.Request) {
	lanes, err := s.app.LaneService.ListLanes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lanes)
}

// createLane handles POST /api/lanes
func (s *Server) createLane(w http.ResponseWriter, r *http.Request) {
	var req laneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var boardID int
	if req.BoardID != nil {
		boardID = *req.BoardID
	}
	lane, err := s.app.LaneService.CreateLane(r.Context(), laneservice.CreateLaneRequest{
		Name:     value(req.Name),
		BoardID:  boardID,
		Position: req.Position,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lane)
}

// getLane handles GET /api/lanes/{id}
func (s *Server) getLane(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	lane, err := s.app.LaneService.GetLane(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	cards, err := s.app.CardService.ListCardsByLane(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, laneWithCards{Lane: lane, Cards: cards})
}

// updateLane handles PUT /api/lanes/{id}
func (s *Server) updateLane(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req laneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	lane, err := s.app.LaneService.UpdateLane(r.Context(), laneservice.UpdateLaneRequest{
		ID:       id,
		Name:     nonEmpty(req.Name),
		Position: req.Position,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lane)
}

// deleteLane handles DELETE /api/lanes/{id}
func (s *Server) deleteLane(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.app.LaneService.DeleteLane(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listLaneCards handles GET /api/lanes/{id}/cards
func (s *Server) listLaneCards(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards, err := s.app.CardService.ListCardsByLane(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// createLaneCard handles POST /api/lanes/{id}/cards
func (s *Server) createLaneCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	req.LaneID = &id
	s.createCardFrom(w, r, req)
}

// reorderCards handles PUT /api/lanes/{id}/cards/reorder
func (s *Server) reorderCards(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req cardOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	cards, err := s.app.CardService.ReorderCards(r.Context(), id, req.CardOrder)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.metrics.IncReorders()
	writeJSON(w, http.StatusOK, cards)
}

// createCardFrom is shared by POST /api/cards and POST /api/lanes/{id}/cards
func (s *Server) createCardFrom(w http.ResponseWriter, r *http.Request, req cardRequest) {
	var laneID int
	if req.LaneID != nil {
		laneID = *req.LaneID
	}

	card, err := s.app.CardService.CreateCard(r.Context(), cardservice.CreateCardRequest{
		Title:       value(req.Title),
		Description: value(req.Description),
		Color:       value(req.Color),
		LaneID:      laneID,
		Position:    req.Position,
		DueDate:     req.DueDate.Time,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}
