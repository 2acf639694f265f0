package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thenoetrevino/notscrum/internal/ordering"
)

// maxBodyBytes caps request bodies; boards are small
const maxBodyBytes = 1 << 20

var errMalformedBody = fmt.Errorf("%w: invalid request payload", ordering.ErrValidation)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// statusFor maps the error taxonomy onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, ordering.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ordering.ErrValidation), errors.Is(err, ordering.ErrInvalidScope):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes the {"error": ...} envelope. Internal errors are logged
// with the request ID and replaced by a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		requestLogger(r).Error("request failed", "error", err)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads a JSON object from the request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", ordering.ErrValidation)
		}
		if errors.Is(err, ordering.ErrValidation) {
			return err
		}
		return errMalformedBody
	}
	if dec.More() {
		return errMalformedBody
	}
	return nil
}

// pathID returns the integer route variable name. Routes constrain IDs to
// digits, so a parse failure only happens on overflow.
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", ordering.ErrNotFound, name)
	}
	return id, nil
}
