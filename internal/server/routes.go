package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type endpoint struct {
	method  string
	handler http.HandlerFunc
}

// handle registers every endpoint of one path. OPTIONS is attached once per
// path so the Access-Control-Allow-Methods list has no duplicates.
func handle(r *mux.Router, path string, endpoints ...endpoint) {
	for i, ep := range endpoints {
		methods := []string{ep.method}
		if i == 0 {
			methods = append(methods, http.MethodOptions)
		}
		r.HandleFunc(path, ep.handler).Methods(methods...)
	}
}

// registerRoutes sets up all routes for the application
func (s *Server) registerRoutes(r *mux.Router) {
	handle(r, "/health", endpoint{http.MethodGet, s.health})
	handle(r, "/debug/metrics", endpoint{http.MethodGet, s.metricsSnapshot})

	// Boards
	handle(r, "/api/boards",
		endpoint{http.MethodGet, s.listBoards},
		endpoint{http.MethodPost, s.createBoard},
	)
	handle(r, "/api/boards/{id:[0-9]+}",
		endpoint{http.MethodGet, s.getBoard},
		endpoint{http.MethodPut, s.updateBoard},
		endpoint{http.MethodDelete, s.deleteBoard},
	)
	handle(r, "/api/boards/{id:[0-9]+}/lanes",
		endpoint{http.MethodGet, s.listBoardLanes},
		endpoint{http.MethodPost, s.createBoardLane},
	)
	handle(r, "/api/boards/{id:[0-9]+}/lanes/reorder", endpoint{http.MethodPut, s.reorderLanes})

	// Lanes
	handle(r, "/api/lanes",
		endpoint{http.MethodGet, s.listLanes},
		endpoint{http.MethodPost, s.createLane},
	)
	handle(r, "/api/lanes/{id:[0-9]+}",
		endpoint{http.MethodGet, s.getLane},
		endpoint{http.MethodPut, s.updateLane},
		endpoint{http.MethodDelete, s.deleteLane},
	)
	handle(r, "/api/lanes/{id:[0-9]+}/cards",
		endpoint{http.MethodGet, s.listLaneCards},
		endpoint{http.MethodPost, s.createLaneCard},
	)
	handle(r, "/api/lanes/{id:[0-9]+}/cards/reorder", endpoint{http.MethodPut, s.reorderCards})

	// Cards
	handle(r, "/api/cards",
		endpoint{http.MethodGet, s.listCards},
		endpoint{http.MethodPost, s.createCard},
	)
	handle(r, "/api/cards/{id:[0-9]+}",
		endpoint{http.MethodGet, s.getCard},
		endpoint{http.MethodPut, s.updateCard},
		endpoint{http.MethodDelete, s.deleteCard},
	)
	handle(r, "/api/cards/{id:[0-9]+}/move", endpoint{http.MethodPut, s.moveCard})

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	r.Use(mux.CORSMethodMiddleware(r), preflight)
}

// health handles GET /health
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DB().PingContext(r.Context()); err != nil {
		requestLogger(r).Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// metricsSnapshot handles GET /debug/metrics
func (s *Server) metricsSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}
