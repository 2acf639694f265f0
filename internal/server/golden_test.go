package server

import (
	"net/http"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// TestErrorEnvelopes pins the exact bytes clients see for rejected requests.
// Run with -update to regenerate testdata/golden.
func TestErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"board_not_found", http.MethodGet, "/api/boards/999", nil, http.StatusNotFound},
		{"board_empty_name", http.MethodPost, "/api/boards", object{"name": ""}, http.StatusBadRequest},
		{"malformed_body", http.MethodPost, "/api/boards", `{"name": `, http.StatusBadRequest},
		{"reorder_foreign_card", http.MethodPut, "/api/lanes/1/cards/reorder", object{"card_order": []int{1, 2, 3}}, http.StatusBadRequest},
		{"reorder_unknown_lane", http.MethodPut, "/api/boards/1/lanes/reorder", object{"lane_order": []int{3, 1, 99}}, http.StatusNotFound},
		{"reorder_empty", http.MethodPut, "/api/boards/1/lanes/reorder", object{"lane_order": []int{}}, http.StatusBadRequest},
		{"reorder_duplicate", http.MethodPut, "/api/lanes/1/cards/reorder", object{"card_order": []int{1, 2, 1}}, http.StatusBadRequest},
		{"move_unknown_lane", http.MethodPut, "/api/cards/1/move", object{"lane_id": 99}, http.StatusNotFound},
		{"unknown_route", http.MethodGet, "/api/nothing", nil, http.StatusNotFound},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupServer(t)
			rec := do(t, s, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			g.Assert(t, tt.name, rec.Body.Bytes())
		})
	}
}
