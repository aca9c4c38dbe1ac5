package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minMarkdownWidth = 20

// RenderMarkdown renders markdown using Glamour with terminal-aware
// wrapping. Chapter descriptions accept markdown, so show output gets the
// full treatment.
func RenderMarkdown(text string) (string, error) {
	return RenderMarkdownWithWidth(text, TermWidth())
}

// RenderMarkdownWithWidth renders markdown using Glamour with explicit wrapping.
func RenderMarkdownWithWidth(text string, width int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}
