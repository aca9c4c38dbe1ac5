package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marcus/retro/internal/models"
)

// CreateEvent inserts a new event with its reactions. Assigns an id when
// the event has none. Events created without reactions get the default
// zero-count vocabulary so toggles always have a row to land on.
func (db *DB) CreateEvent(event *models.Event) error {
	if event.ID == "" {
		event.ID = NewEventID()
	}
	if len(event.Reactions) == 0 {
		event.Reactions = models.DefaultReactions()
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	gallery, tags, err := encodeLists(event)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO events (id, title, date, description, cover_url, gallery, location, tags, is_milestone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, event.Date, event.Description, event.CoverURL,
		gallery, event.Location, tags, boolToInt(event.IsMilestone))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("event %s already exists", event.ID)
		}
		return fmt.Errorf("insert event: %w", err)
	}

	if err := replaceReactions(tx, event.ID, event.Reactions); err != nil {
		return err
	}
	for i := range event.Comments {
		if err := insertComment(tx, event.ID, &event.Comments[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateEvent rewrites an event's fields and reactions. Comments are
// append-only and managed through AddComment.
func (db *DB) UpdateEvent(event *models.Event) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	gallery, tags, err := encodeLists(event)
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
		UPDATE events
		SET title = ?, date = ?, description = ?, cover_url = ?, gallery = ?,
		    location = ?, tags = ?, is_milestone = ?,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		WHERE id = ?`,
		event.Title, event.Date, event.Description, event.CoverURL, gallery,
		event.Location, tags, boolToInt(event.IsMilestone), event.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("event not found: %s", event.ID)
	}

	if err := replaceReactions(tx, event.ID, event.Reactions); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteEvent removes an event; reactions and comments cascade.
func (db *DB) DeleteEvent(id string) error {
	res, err := db.conn.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

// GetEvent loads one event with its reactions and comments.
func (db *DB) GetEvent(id string) (*models.Event, error) {
	row := db.conn.QueryRow(`
		SELECT id, title, date, description, cover_url, gallery, location, tags, is_milestone
		FROM events WHERE id = ?`, id)
	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	if err := db.attachSocial([]*models.Event{event}); err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns every event with reactions and comments attached, in
// insertion order. Filtering and sorting are view concerns handled by the
// timeline engine.
func (db *DB) ListEvents() ([]models.Event, error) {
	rows, err := db.conn.Query(`
		SELECT id, title, date, description, cover_url, gallery, location, tags, is_milestone
		FROM events ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var ptrs []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		ptrs = append(ptrs, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachSocial(ptrs); err != nil {
		return nil, err
	}

	events := make([]models.Event, len(ptrs))
	for i, p := range ptrs {
		events[i] = *p
	}
	return events, nil
}

// ToggleReaction flips the viewer's reaction on an event and adjusts the
// count, flooring at zero. Unknown reaction ids are a no-op.
func (db *DB) ToggleReaction(eventID, reactionID string) error {
	_, err := db.conn.Exec(`
		UPDATE reactions
		SET reacted = 1 - reacted,
		    count = MAX(0, count + CASE WHEN reacted = 0 THEN 1 ELSE -1 END)
		WHERE event_id = ? AND reaction_id = ?`,
		eventID, reactionID)
	if err != nil {
		return fmt.Errorf("toggle reaction: %w", err)
	}
	return nil
}

// AddComment appends a comment to an event. Assigns an id and timestamp
// when absent.
func (db *DB) AddComment(eventID string, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = NewCommentID()
	}
	if comment.Date == "" {
		comment.Date = time.Now().UTC().Format(time.RFC3339)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM events WHERE id = ?`, eventID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("event not found: %s", eventID)
	}

	if err := insertComment(tx, eventID, comment); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var gallery, tags string
	var milestone int
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Description, &e.CoverURL,
		&gallery, &e.Location, &tags, &milestone)
	if err != nil {
		return nil, err
	}
	e.IsMilestone = milestone != 0
	if err := json.Unmarshal([]byte(gallery), &e.Gallery); err != nil {
		return nil, fmt.Errorf("decode gallery for %s: %w", e.ID, err)
	}
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", e.ID, err)
	}
	return &e, nil
}

// attachSocial loads reactions and comments for the given events in two
// queries instead of 2N.
func (db *DB) attachSocial(events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}
	byID := make(map[string]*models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	rows, err := db.conn.Query(`
		SELECT event_id, reaction_id, emoji, count, reacted
		FROM reactions ORDER BY event_id, rowid`)
	if err != nil {
		return fmt.Errorf("list reactions: %w", err)
	}
	for rows.Next() {
		var eventID string
		var r models.Reaction
		var reacted int
		if err := rows.Scan(&eventID, &r.ID, &r.Emoji, &r.Count, &reacted); err != nil {
			rows.Close()
			return err
		}
		r.Reacted = reacted != 0
		if e, ok := byID[eventID]; ok {
			e.Reactions = append(e.Reactions, r)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = db.conn.Query(`
		SELECT event_id, id, author, message, date, avatar_url
		FROM comments ORDER BY event_id, created_at, id`)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var eventID string
		var c models.Comment
		if err := rows.Scan(&eventID, &c.ID, &c.Author, &c.Message, &c.Date, &c.AvatarURL); err != nil {
			return err
		}
		if e, ok := byID[eventID]; ok {
			e.Comments = append(e.Comments, c)
		}
	}
	return rows.Err()
}

func replaceReactions(tx *sql.Tx, eventID string, reactions []models.Reaction) error {
	if _, err := tx.Exec(`DELETE FROM reactions WHERE event_id = ?`, eventID); err != nil {
		return fmt.Errorf("clear reactions: %w", err)
	}
	for _, r := range reactions {
		_, err := tx.Exec(`
			INSERT INTO reactions (event_id, reaction_id, emoji, count, reacted)
			VALUES (?, ?, ?, ?, ?)`,
			eventID, r.ID, r.Emoji, r.Count, boolToInt(r.Reacted))
		if err != nil {
			return fmt.Errorf("insert reaction %s: %w", r.ID, err)
		}
	}
	return nil
}

func insertComment(tx *sql.Tx, eventID string, c *models.Comment) error {
	if c.ID == "" {
		c.ID = NewCommentID()
	}
	_, err := tx.Exec(`
		INSERT INTO comments (id, event_id, author, message, date, avatar_url)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, eventID, c.Author, c.Message, c.Date, c.AvatarURL)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func encodeLists(event *models.Event) (gallery, tags string, err error) {
	g, err := json.Marshal(orEmpty(event.Gallery))
	if err != nil {
		return "", "", fmt.Errorf("encode gallery: %w", err)
	}
	t, err := json.Marshal(orEmpty(event.Tags))
	if err != nil {
		return "", "", fmt.Errorf("encode tags: %w", err)
	}
	return string(g), string(t), nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
