package db

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/marcus/retro/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpenWithoutInit(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("expected error opening uninitialized database")
	}
	if !strings.Contains(err.Error(), "retro init") {
		t.Errorf("error should point at init: %v", err)
	}
}

func TestEventRoundtrip(t *testing.T) {
	database := newTestDB(t)

	event := &models.Event{
		Title:       "Primeira viagem juntos",
		Date:        "2022-06-12",
		Description: "Três dias no litoral.",
		CoverURL:    "/images/casal-2.svg",
		Gallery:     []string{"/images/a.jpg", "/images/b.jpg"},
		Location:    "Ubatuba",
		Tags:        []string{"Viagem", "Praia"},
		IsMilestone: true,
		Comments: []models.Comment{
			{Author: "Pedro", Message: "Preciso repetir esse fim de semana.", Date: "2022-06-13"},
		},
	}
	if err := database.CreateEvent(event); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(event.ID, "ev-") {
		t.Errorf("assigned id %q lacks ev- prefix", event.ID)
	}

	got, err := database.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != event.Title || got.Date != event.Date || got.Location != event.Location {
		t.Errorf("scalar fields differ: %+v", got)
	}
	if !reflect.DeepEqual(got.Gallery, event.Gallery) || !reflect.DeepEqual(got.Tags, event.Tags) {
		t.Errorf("list fields differ: gallery=%v tags=%v", got.Gallery, got.Tags)
	}
	if !got.IsMilestone {
		t.Error("milestone flag lost")
	}
	// Events created without reactions get the default vocabulary.
	if len(got.Reactions) != 3 || got.Reactions[0].ID != "love" {
		t.Errorf("default reactions missing: %+v", got.Reactions)
	}
	if len(got.Comments) != 1 || got.Comments[0].Message != "Preciso repetir esse fim de semana." {
		t.Errorf("comments differ: %+v", got.Comments)
	}
}

func TestUpdateEvent(t *testing.T) {
	database := newTestDB(t)

	event := &models.Event{Title: "Novo lar", Date: "2023-01-08"}
	if err := database.CreateEvent(event); err != nil {
		t.Fatalf("create: %v", err)
	}

	event.Title = "Novo lar em Curitiba"
	event.Tags = []string{"Casa", "Mudança"}
	if err := database.UpdateEvent(event); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := database.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Novo lar em Curitiba" || !got.HasTag("Mudança") {
		t.Errorf("update not applied: %+v", got)
	}

	missing := &models.Event{ID: "ev-missing", Title: "x"}
	if err := database.UpdateEvent(missing); err == nil {
		t.Error("expected error updating missing event")
	}
}

func TestDeleteEventCascades(t *testing.T) {
	database := newTestDB(t)

	event := &models.Event{Title: "Aniversário", Date: "2023-08-20"}
	if err := database.CreateEvent(event); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := database.AddComment(event.ID, &models.Comment{Author: "Lia", Message: "Linda noite"}); err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := database.DeleteEvent(event.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := database.GetEvent(event.ID); err == nil {
		t.Error("event still present after delete")
	}
	if err := database.DeleteEvent(event.ID); err == nil {
		t.Error("expected error deleting missing event")
	}
}

func TestToggleReaction(t *testing.T) {
	database := newTestDB(t)

	event := &models.Event{Title: "Pedido especial", Date: "2024-02-14"}
	if err := database.CreateEvent(event); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := database.ToggleReaction(event.ID, "love"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	got, _ := database.GetEvent(event.ID)
	if r := findReaction(got.Reactions, "love"); r == nil || !r.Reacted || r.Count != 1 {
		t.Fatalf("after toggle on: %+v", got.Reactions)
	}

	if err := database.ToggleReaction(event.ID, "love"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	got, _ = database.GetEvent(event.ID)
	if r := findReaction(got.Reactions, "love"); r == nil || r.Reacted || r.Count != 0 {
		t.Fatalf("after toggle off: %+v", got.Reactions)
	}

	// Toggling off at zero count stays floored at zero.
	if err := database.ToggleReaction(event.ID, "spark"); err != nil {
		t.Fatal(err)
	}
	got, _ = database.GetEvent(event.ID)
	if r := findReaction(got.Reactions, "spark"); r.Count != 1 {
		t.Fatalf("spark count = %d, want 1", r.Count)
	}
}

func findReaction(reactions []models.Reaction, id string) *models.Reaction {
	for i := range reactions {
		if reactions[i].ID == id {
			return &reactions[i]
		}
	}
	return nil
}

func TestListEventsInsertionOrder(t *testing.T) {
	database := newTestDB(t)

	// Back-to-back inserts land in the same created_at millisecond, so
	// the order must come from the insertion sequence, not timestamps.
	titles := []string{"um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito"}
	for _, title := range titles {
		if err := database.CreateEvent(&models.Event{Title: title, Date: "2022-01-01"}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	events, err := database.ListEvents()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != len(titles) {
		t.Fatalf("got %d events, want %d", len(events), len(titles))
	}
	for i, title := range titles {
		if events[i].Title != title {
			t.Errorf("events[%d].Title = %q, want %q", i, events[i].Title, title)
		}
	}
}

func TestWaitlistDuplicate(t *testing.T) {
	database := newTestDB(t)

	if err := database.AddToWaitlist("Casal@Example.com", "39,90", "landing"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	// Same address with different case and whitespace collides.
	err := database.AddToWaitlist("  casal@example.com ", "39,90", "landing")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	entries, err := database.ListWaitlist()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Email != "casal@example.com" {
		t.Errorf("waitlist = %+v, want single normalized entry", entries)
	}
}
