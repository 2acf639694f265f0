package server

import (
	"net/http"

	"github.com/thenoetrevino/notscrum/internal/models"
	boardservice "github.com/thenoetrevino/notscrum/internal/services/board"
	laneservice "github.com/thenoetrevino/notscrum/internal/services/lane"
)

// boardWithLanes always serializes lanes, even when the board has none
type boardWithLanes struct {
	*models.Board
	Lanes []*models.Lane `json:"lanes"`
}

func withLanes(b *models.Board) boardWithLanes {
	lanes := b.Lanes
	if lanes == nil {
		lanes = []*models.Lane{}
	}
	return boardWithLanes{Board: b, Lanes: lanes}
}

// listBoards handles GET /api/boards
func (s *Server) listBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := s.app.BoardService.ListBoards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

// createBoard handles POST /api/boards
func (s *Server) createBoard(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := s.app.BoardService.CreateBoard(r.Context(), boardservice.CreateBoardRequest{
		Name:        value(req.Name),
		Description: value(req.Description),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, withLanes(b))
}

// getBoard handles GET /api/boards/{id}
func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	b, err := s.app.BoardService.GetBoard(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, withLanes(b))
}

// updateBoard handles PUT /api/boards/{id}
func (s *Server) updateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req boardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := s.app.BoardService.UpdateBoard(r.Context(), boardservice.UpdateBoardRequest{
		ID:          id,
		Name:        nonEmpty(req.Name),
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, withLanes(b))
}

// deleteBoard handles DELETE /api/boards/{id}
func (s *Server) deleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.app.BoardService.DeleteBoard(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listBoardLanes handles GET /api/boards/{id}/lanes
func (s *Server) listBoardLanes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	lanes, err := s.app.LaneService.ListLanesByBoard(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lanes)
}

// createBoardLane handles POST /api/boards/{id}/lanes
func (s *Server) createBoardLane(w http.ResponseWriter, r *http.Request) {
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

	lane, err := s.app.LaneService.CreateLane(r.Context(), laneservice.CreateLaneRequest{
		Name:     value(req.Name),
		BoardID:  id,
		Position: req.Position,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lane)
}

// reorderLanes handles PUT /api/boards/{id}/lanes/reorder
func (s *Server) reorderLanes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req laneOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	lanes, err := s.app.LaneService.ReorderLanes(r.Context(), id, req.LaneOrder)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.metrics.IncReorders()
	writeJSON(w, http.StatusOK, lanes)
}
