// Package dateparse parses the date strings attached to timeline chapters.
//
// Two kinds of input exist: display dates stored on events (ISO 8601 and a
// few common calendar layouts, possibly unparseable), and composer input
// (exact dates plus relative forms like "-30d" or "yesterday", since most
// memories are entered after the fact).
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// displayLayouts are tried in order when parsing an event's stored date.
var displayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Parse attempts to interpret a stored event date. The second return value
// is false when the value matches no known layout; callers degrade to the
// no-date bucket rather than erroring.
func Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range displayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseInput parses a composer date input string and returns an ISO 8601
// date (YYYY-MM-DD). Uses the current time as the reference point.
//
// Supported formats:
//   - Exact dates: "2024-02-14"
//   - Relative days: "-30d", "+7d"
//   - Relative weeks/months: "-2w", "-1m"
//   - Day names: "monday", "sexta", etc. (previous occurrence)
//   - Keywords: "today"/"hoje", "yesterday"/"ontem", "tomorrow"/"amanhã"
func ParseInput(input string) (string, error) {
	return ParseInputFrom(input, time.Now())
}

// ParseInputFrom parses a composer date input relative to the given
// reference time. This variant enables deterministic testing with a fixed
// "now".
func ParseInputFrom(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return "", fmt.Errorf("empty date input")
	}

	// Exact date: YYYY-MM-DD
	if t, err := time.Parse("2006-01-02", input); err == nil {
		return t.Format("2006-01-02"), nil
	}

	// Keywords, in English and Portuguese
	switch input {
	case "today", "hoje":
		return formatDate(now), nil
	case "yesterday", "ontem":
		return formatDate(now.AddDate(0, 0, -1)), nil
	case "tomorrow", "amanhã", "amanha":
		return formatDate(now.AddDate(0, 0, 1)), nil
	}

	// Relative offsets: ±Nd, ±Nw, ±Nm
	if (strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-")) && len(input) >= 3 {
		sign := 1
		if input[0] == '-' {
			sign = -1
		}
		suffix := input[len(input)-1]
		numStr := input[1 : len(input)-1]
		n, err := strconv.Atoi(numStr)
		if err == nil && n >= 0 {
			n *= sign
			switch suffix {
			case 'd':
				return formatDate(now.AddDate(0, 0, n)), nil
			case 'w':
				return formatDate(now.AddDate(0, 0, n*7)), nil
			case 'm':
				return formatDate(now.AddDate(0, n, 0)), nil
			default:
				return "", fmt.Errorf("unknown relative unit %q in %q (use d, w, or m)", string(suffix), input)
			}
		}
	}

	// Day names: previous occurrence of that weekday (memories look back)
	dayMap := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"domingo":   time.Sunday,
		"segunda":   time.Monday,
		"terça":     time.Tuesday,
		"terca":     time.Tuesday,
		"quarta":    time.Wednesday,
		"quinta":    time.Thursday,
		"sexta":     time.Friday,
		"sábado":    time.Saturday,
		"sabado":    time.Saturday,
	}
	if target, ok := dayMap[input]; ok {
		daysBack := (int(now.Weekday()) - int(target) + 7) % 7
		if daysBack == 0 {
			daysBack = 7 // always step back to the previous occurrence
		}
		return formatDate(now.AddDate(0, 0, -daysBack)), nil
	}

	return "", fmt.Errorf("unrecognized date format: %q", input)
}

// FormatDisplay renders a stored date for display: "14 Feb 2022" when the
// date parses, the raw value unchanged when it does not.
func FormatDisplay(value string) string {
	t, ok := Parse(value)
	if !ok {
		return value
	}
	return t.Format("2 Jan 2006")
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
