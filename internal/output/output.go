// Package output provides styled terminal output helpers (success, error,
// event and group formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/marcus/retro/internal/dateparse"
	"github.com/marcus/retro/internal/models"
	"github.com/marcus/retro/internal/timeline"
)

var (
	// Styles
	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	yearStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	milestoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	locationStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// OutputMode determines output format
type OutputMode int

const (
	ModeShort OutputMode = iota
	ModeLong
	ModeJSON
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// TermWidth returns the terminal width, or a sane default when stdout is
// not a terminal.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// FormatEventShort renders one event as a single line:
// "ev-ab12  14 Feb 2022  ★ Primeiro encontro  @São Paulo  [Encontro, Marco]"
func FormatEventShort(e models.Event) string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render(shortID(e.ID)))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render(dateparse.FormatDisplay(e.Date)))
	b.WriteString("  ")
	if e.IsMilestone {
		b.WriteString(milestoneStyle.Render("★ "))
	}
	b.WriteString(titleStyle.Render(e.Title))
	if e.Location != "" {
		b.WriteString("  ")
		b.WriteString(locationStyle.Render("@" + e.Location))
	}
	if len(e.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(tagStyle.Render("[" + strings.Join(e.Tags, ", ") + "]"))
	}
	return b.String()
}

// FormatEventLong renders one event as a multi-line block with description
// and social counts.
func FormatEventLong(e models.Event) string {
	var b strings.Builder
	b.WriteString(FormatEventShort(e))
	b.WriteString("\n")
	if e.Description != "" {
		b.WriteString("  " + e.Description + "\n")
	}
	var counts []string
	for _, r := range e.Reactions {
		if r.Count > 0 {
			counts = append(counts, fmt.Sprintf("%s %d", r.Emoji, r.Count))
		}
	}
	if len(e.Comments) > 0 {
		counts = append(counts, fmt.Sprintf("💬 %d", len(e.Comments)))
	}
	if len(counts) > 0 {
		b.WriteString("  " + subtleStyle.Render(strings.Join(counts, "  ")) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatGroups renders a grouped view as year sections.
func FormatGroups(groups []timeline.YearGroup, mode OutputMode) string {
	var b strings.Builder
	for i, group := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(yearStyle.Render("── " + group.Year + " "))
		b.WriteString(subtleStyle.Render(fmt.Sprintf("(%d)", len(group.Events))))
		b.WriteString("\n")
		for _, e := range group.Events {
			if mode == ModeLong {
				b.WriteString(FormatEventLong(e))
			} else {
				b.WriteString(FormatEventShort(e))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func shortID(id string) string {
	if len(id) > 11 {
		return id[:11]
	}
	return id
}
