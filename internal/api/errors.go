package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned by the waitlist endpoint. These match what the
// landing page expects.
const (
	ErrCodeInvalidJSON  = "invalid_json"
	ErrCodeInvalidEmail = "invalid_email"
	ErrCodeDuplicate    = "duplicate"
	ErrCodeDBError      = "db_error"
	ErrCodeNotFound     = "not_found"
)

// response is the envelope for every waitlist reply.
type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, response{OK: false, Error: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write json response", "err", err)
	}
}
