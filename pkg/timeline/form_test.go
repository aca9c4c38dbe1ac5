package timeline

import (
	"testing"
	"time"

	"github.com/marcus/retro/internal/models"
)

func TestFormStateCreateDefaults(t *testing.T) {
	fs := NewFormState(FormModeCreate)
	if fs.Mode != FormModeCreate {
		t.Errorf("mode = %q, want create", fs.Mode)
	}
	if fs.Date != "hoje" {
		t.Errorf("date default = %q, want hoje", fs.Date)
	}
	if fs.Form == nil {
		t.Fatal("form not built")
	}
}

func TestFormStateForEditPopulates(t *testing.T) {
	event := &models.Event{
		ID:          "ev-1",
		Title:       "Praia",
		Date:        "2022-07-10",
		Description: "Fim de semana",
		Location:    "Floripa",
		Tags:        []string{"viagem", "praia"},
		Gallery:     []string{"a.jpg", "b.jpg"},
		IsMilestone: true,
	}
	fs := NewFormStateForEdit(event)

	if fs.EventID != "ev-1" {
		t.Errorf("event id = %q", fs.EventID)
	}
	if fs.Tags != "viagem, praia" {
		t.Errorf("tags = %q", fs.Tags)
	}
	if fs.Gallery != "a.jpg, b.jpg" {
		t.Errorf("gallery = %q", fs.Gallery)
	}
	if !fs.Milestone {
		t.Error("milestone flag lost")
	}
}

func TestToEventResolvesDateAndLists(t *testing.T) {
	fs := NewFormState(FormModeCreate)
	fs.Title = "  Jantar surpresa  "
	fs.Date = "hoje"
	fs.Tags = "surpresa, , jantar"
	fs.Gallery = "capa.jpg, extra.jpg"
	fs.Milestone = true

	event := fs.ToEvent()
	if event.Title != "Jantar surpresa" {
		t.Errorf("title = %q, want trimmed", event.Title)
	}
	if event.Date != time.Now().Format("2006-01-02") {
		t.Errorf("date = %q, want today resolved", event.Date)
	}
	if len(event.Tags) != 2 || event.Tags[0] != "surpresa" || event.Tags[1] != "jantar" {
		t.Errorf("tags = %v", event.Tags)
	}
	if event.CoverURL != "capa.jpg" {
		t.Errorf("cover = %q, want first gallery entry", event.CoverURL)
	}
	if !event.IsMilestone {
		t.Error("milestone flag lost")
	}
}

func TestToEventKeepsUnparseableDateVerbatim(t *testing.T) {
	fs := NewFormState(FormModeCreate)
	fs.Title = "Algum dia"
	fs.Date = "quando der"

	event := fs.ToEvent()
	if event.Date != "quando der" {
		t.Errorf("date = %q, want the raw text kept", event.Date)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"whitespace", "  ", 0},
		{"single", "viagem", 1},
		{"trims and drops empties", " a , , b ,", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseList(tt.input); len(got) != tt.want {
				t.Errorf("parseList(%q) = %v, want %d entries", tt.input, got, tt.want)
			}
		})
	}
}
