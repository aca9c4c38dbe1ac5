package timeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/marcus/retro/internal/models"
)

// DefaultSpecialKeywords are the milestone words that flag a chapter as
// visually special even without the explicit milestone toggle.
var DefaultSpecialKeywords = []string{
	"aniversario",
	"aniversário",
	"pedido",
	"noivado",
	"casamento",
	"viagem",
	"mudamos",
	"primeiro",
	"surpresa",
	"formatura",
	"nascimento",
	"gravidez",
}

// foldMarks strips combining marks after NFD decomposition so that
// "aniversário" and "aniversario" compare equal.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lowercases and diacritic-folds a string for keyword
// matching.
func normalizeText(s string) string {
	folded, _, err := transform.String(foldMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// Classifier decides whether an event gets special visual emphasis. The
// classification never affects filtering, only marker styling.
type Classifier struct {
	keywords []string
}

// NewClassifier builds a classifier from the given keyword list; nil or
// empty falls back to DefaultSpecialKeywords.
func NewClassifier(keywords []string) *Classifier {
	if len(keywords) == 0 {
		keywords = DefaultSpecialKeywords
	}
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized = append(normalized, normalizeText(kw))
	}
	return &Classifier{keywords: normalized}
}

// IsSpecial reports whether the event is milestone-flagged or matches any
// keyword in its title, description, or tags.
func (c *Classifier) IsSpecial(e models.Event) bool {
	if e.IsMilestone {
		return true
	}
	parts := make([]string, 0, 3)
	for _, s := range []string{e.Title, e.Description, strings.Join(e.Tags, " ")} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	haystack := normalizeText(strings.Join(parts, " "))
	for _, kw := range c.keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
