package timeline

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/retro/internal/dateparse"
	"github.com/marcus/retro/internal/models"
)

// ItemOptions parameterize one rendered event card. Given the same event
// and options, RenderItem produces the same output.
type ItemOptions struct {
	Variant      Variant
	Density      Density
	Active       bool
	Special      bool
	EyebrowLabel string
	ShowHeader   bool
	Width        int // inner content width; 0 picks the density default

	// RenderMedia overrides the media glyph. Default falls back cover
	// image -> first gallery image -> placeholder.
	RenderMedia func(models.Event) string

	// RenderActions supplies the action row appended under the card
	// body. Story mode supplies none by default.
	RenderActions func(models.Event) string
}

// Card inner widths per density.
const (
	compactCardWidth     = 26
	comfortableCardWidth = 34
)

// cardContentWidth resolves the inner width for the given options.
func cardContentWidth(opts ItemOptions) int {
	if opts.Width > 0 {
		return opts.Width
	}
	if opts.Density == DensityComfortable {
		return comfortableCardWidth
	}
	return compactCardWidth
}

// RenderItem renders one event's summary card. Pure presentation: no
// state is read or written beyond the arguments.
func RenderItem(e models.Event, opts ItemOptions) string {
	width := cardContentWidth(opts)
	var lines []string

	if opts.ShowHeader {
		header := subtleStyle.Render(dateparse.FormatDisplay(e.Date))
		if opts.EyebrowLabel != "" {
			label := eyebrowStyle.Render("[" + opts.EyebrowLabel + "]")
			pad := width - lipgloss.Width(header) - lipgloss.Width(label)
			if pad < 1 {
				pad = 1
			}
			header += strings.Repeat(" ", pad) + label
		}
		lines = append(lines, fit(header, width))
	}

	media := renderMedia(e, opts.RenderMedia)
	title := titleStyle.Render(e.Title)
	lines = append(lines, fit(media+" "+title, width))

	if e.Description != "" {
		descLines := 2
		if opts.Density == DensityComfortable {
			descLines = 3
		}
		for _, line := range wrap(e.Description, width, descLines) {
			lines = append(lines, fit(line, width))
		}
	}

	if footer := renderFooter(e, opts, width); footer != "" {
		lines = append(lines, footer)
	}

	if opts.RenderActions != nil {
		if actions := opts.RenderActions(e); actions != "" {
			for _, line := range strings.Split(actions, "\n") {
				lines = append(lines, fit(line, width))
			}
		}
	}

	style := cardStyle
	if opts.Active {
		style = activeCardStyle
	} else if opts.Special {
		style = specialCardStyle
	}
	return style.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// renderMedia resolves the media glyph: override, then cover, then first
// gallery entry, then placeholder.
func renderMedia(e models.Event, override func(models.Event) string) string {
	if override != nil {
		return override(e)
	}
	if e.CoverURL != "" {
		return mediaGlyph(e.CoverURL)
	}
	if len(e.Gallery) > 0 {
		return mediaGlyph(e.Gallery[0])
	}
	return subtleStyle.Render("▢")
}

// mediaGlyph stands in for an inline image; the terminal only gets a
// frame glyph, but the distinction from the placeholder matters for the
// fallback order.
func mediaGlyph(url string) string {
	if strings.TrimSpace(url) == "" {
		return subtleStyle.Render("▢")
	}
	return "🖼"
}

// renderFooter builds the location/badge/tag line.
func renderFooter(e models.Event, opts ItemOptions, width int) string {
	var parts []string
	if e.Location != "" {
		parts = append(parts, locationStyle.Render("@"+e.Location))
	}
	if e.IsMilestone {
		parts = append(parts, badgeStyle.Render("Marco"))
	} else if opts.Special {
		parts = append(parts, badgeStyle.Render("Especial"))
	}
	tags := e.Tags
	if len(tags) > 4 {
		tags = tags[:4]
	}
	for _, tag := range tags {
		parts = append(parts, tagStyle.Render("#"+tag))
	}
	if len(parts) == 0 {
		return ""
	}
	return fit(strings.Join(parts, " "), width)
}

// fit pads or truncates a styled line to exactly width columns.
func fit(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

// wrap breaks text into at most maxLines lines of the given width,
// ellipsizing the last line on overflow.
func wrap(text string, width, maxLines int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if lipgloss.Width(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
		if len(lines) == maxLines {
			break
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = ansi.Truncate(lines[maxLines-1]+"…", width, "…")
	}
	return lines
}
