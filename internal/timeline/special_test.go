package timeline

import (
	"testing"

	"github.com/marcus/retro/internal/models"
)

func TestClassifier_MilestoneShortCircuits(t *testing.T) {
	c := NewClassifier(nil)
	e := models.Event{ID: "m", Title: "Dia comum", IsMilestone: true}
	if !c.IsSpecial(e) {
		t.Error("milestone event not classified special")
	}
}

func TestClassifier_KeywordInDescription(t *testing.T) {
	c := NewClassifier(nil)
	e := models.Event{
		ID:          "v",
		Title:       "Fim de semana",
		Description: "Nossa primeira viagem juntos",
		Tags:        []string{"Viagem"},
	}
	if !c.IsSpecial(e) {
		t.Error("keyword match on \"viagem\" not classified special")
	}
}

func TestClassifier_DiacriticFolding(t *testing.T) {
	c := NewClassifier(nil)
	tests := []struct {
		name  string
		event models.Event
		want  bool
	}{
		{"accented title matches unaccented keyword", models.Event{Title: "Aniversário de namoro"}, true},
		{"unaccented title matches accented keyword", models.Event{Title: "aniversario surpresa"}, true},
		{"uppercase matches", models.Event{Title: "CASAMENTO"}, true},
		{"no keyword no milestone", models.Event{Title: "Tarde de domingo", Description: "Filme e pipoca"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsSpecial(tt.event); got != tt.want {
				t.Errorf("IsSpecial = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifier_CustomKeywords(t *testing.T) {
	c := NewClassifier([]string{"show"})
	if !c.IsSpecial(models.Event{Title: "Primeiro show juntos"}) {
		t.Error("custom keyword not matched")
	}
	// Default keywords are replaced, not merged.
	if c.IsSpecial(models.Event{Title: "viagem"}) {
		t.Error("default keyword still active after override")
	}
}

func TestClassifier_TagMatch(t *testing.T) {
	c := NewClassifier(nil)
	e := models.Event{Title: "Passeio", Tags: []string{"Formatura"}}
	if !c.IsSpecial(e) {
		t.Error("keyword in tags not classified special")
	}
}
