package dateparse

import (
	"testing"
	"time"
)

// Fixed reference time: Wednesday, 2026-02-18 12:00:00 UTC
var testNow = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

func TestParse_Layouts(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		year  int
	}{
		{"2022-02-14", true, 2022},
		{"2023-01-08T10:30:00Z", true, 2023},
		{"14/02/2022", true, 2022},
		{"Jan 8, 2023", true, 2023},
		{"not-a-date", false, 0},
		{"", false, 0},
		{"   ", false, 0},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.input)
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got.Year() != tt.year {
			t.Errorf("Parse(%q) year = %d, want %d", tt.input, got.Year(), tt.year)
		}
	}
}

func TestParseInput_ExactDate(t *testing.T) {
	got, err := ParseInputFrom("2024-02-14", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-02-14" {
		t.Errorf("got %q, want 2024-02-14", got)
	}
}

func TestParseInput_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"today", "2026-02-18"},
		{"yesterday", "2026-02-17"},
		{"tomorrow", "2026-02-19"},
		{"hoje", "2026-02-18"},
		{"ontem", "2026-02-17"},
		{"amanhã", "2026-02-19"},
	}
	for _, tt := range tests {
		got, err := ParseInputFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseInputFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInputFrom(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseInput_RelativeOffsets(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-0d", "2026-02-18"},
		{"-1d", "2026-02-17"},
		{"-30d", "2026-01-19"},
		{"-2w", "2026-02-04"},
		{"-1m", "2026-01-18"},
		{"+7d", "2026-02-25"},
	}
	for _, tt := range tests {
		got, err := ParseInputFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseInputFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInputFrom(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseInput_DayNames(t *testing.T) {
	// testNow is a Wednesday; "monday" resolves to the previous Monday.
	tests := []struct {
		input string
		want  string
	}{
		{"monday", "2026-02-16"},
		{"tuesday", "2026-02-17"},
		{"wednesday", "2026-02-11"}, // same weekday steps a full week back
		{"sunday", "2026-02-15"},
	}
	for _, tt := range tests {
		got, err := ParseInputFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseInputFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInputFrom(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseInput_Errors(t *testing.T) {
	for _, input := range []string{"", "  ", "nonsense", "+5x", "14-02-2022"} {
		if _, err := ParseInputFrom(input, testNow); err == nil {
			t.Errorf("ParseInputFrom(%q): expected error, got nil", input)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	if got := FormatDisplay("2022-02-14"); got != "14 Feb 2022" {
		t.Errorf("FormatDisplay = %q, want %q", got, "14 Feb 2022")
	}
	if got := FormatDisplay("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDisplay passthrough = %q, want raw value", got)
	}
}
