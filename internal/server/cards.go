package server

import (
	"net/http"

	cardservice "github.com/thenoetrevino/notscrum/internal/services/card"
)

// listCards handles GET /api/cards
func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.app.CardService.ListCards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// createCard handles POST /api/cards
func (s *Server) createCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	s.createCardFrom(w, r, req)
}

// getCard handles GET /api/cards/{id}
func (s *Server) getCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	card, err := s.app.CardService.GetCard(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// updateCard handles PUT /api/cards/{id}
func (s *Server) updateCard(w http.ResponseWriter, r *http.Request) {
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

	card, err := s.app.CardService.UpdateCard(r.Context(), cardservice.UpdateCardRequest{
		ID:          id,
		Title:       nonEmpty(req.Title),
		Description: req.Description,
		Color:       nonEmpty(req.Color),
		LaneID:      req.LaneID,
		Position:    req.Position,
		DueDate:     req.DueDate.Time,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// deleteCard handles DELETE /api/cards/{id}
func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.app.CardService.DeleteCard(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// moveCard handles PUT /api/cards/{id}/move
func (s *Server) moveCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var laneID int
	if req.LaneID != nil {
		laneID = *req.LaneID
	}
	card, err := s.app.CardService.MoveCard(r.Context(), cardservice.MoveCardRequest{
		CardID:    id,
		LaneID:    laneID,
		Position:  req.Position,
		CardOrder: req.CardOrder,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.metrics.IncMoves()
	writeJSON(w, http.StatusOK, card)
}
