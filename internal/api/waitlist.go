package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/marcus/retro/internal/db"
)

// emailPattern is deliberately loose: one @, no whitespace, a dot in the
// domain. Real validation happens when the launch email goes out.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type waitlistRequest struct {
	Email string `json:"email"`
}

// handleWaitlist captures one signup. Responses:
//   - 400 invalid_json / invalid_email
//   - 409 duplicate
//   - 500 db_error
//   - 200 {"ok":true}
func (s *Server) handleWaitlist(w http.ResponseWriter, r *http.Request) {
	var payload waitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidJSON)
		return
	}

	normalized := db.NormalizeEmail(payload.Email)
	if !emailPattern.MatchString(normalized) {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidEmail)
		return
	}

	err := s.store.AddToWaitlist(normalized, s.config.Promo, s.config.Source)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, ErrCodeDuplicate)
			return
		}
		slog.Error("waitlist insert", "err", err)
		writeError(w, http.StatusInternalServerError, ErrCodeDBError)
		return
	}

	slog.Info("waitlist signup", "email", normalized)
	writeJSON(w, http.StatusOK, response{OK: true})
}
