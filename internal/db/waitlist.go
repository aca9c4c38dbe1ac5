package db

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateEmail is returned when a waitlist email is already enrolled.
var ErrDuplicateEmail = errors.New("email already on waitlist")

// WaitlistEntry is one captured signup.
type WaitlistEntry struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Promo     string `json:"promo,omitempty"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AddToWaitlist inserts a signup keyed by normalized (trimmed, lowercased)
// email. Returns ErrDuplicateEmail when the email is already present.
func (db *DB) AddToWaitlist(email, promo, source string) error {
	normalized := NormalizeEmail(email)
	_, err := db.conn.Exec(`
		INSERT INTO waitlist (email, promo, source) VALUES (?, ?, ?)`,
		normalized, promo, source)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert waitlist entry: %w", err)
	}
	return nil
}

// ListWaitlist returns all signups, oldest first.
func (db *DB) ListWaitlist() ([]WaitlistEntry, error) {
	rows, err := db.conn.Query(`
		SELECT id, email, promo, source, created_at FROM waitlist ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	defer rows.Close()

	var entries []WaitlistEntry
	for rows.Next() {
		var e WaitlistEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.Promo, &e.Source, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// NormalizeEmail trims and lowercases an email address; the waitlist
// uniqueness constraint applies to this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
