package timeline

import "github.com/charmbracelet/lipgloss"

var (
	// Base colors
	primaryColor   = lipgloss.Color("204")
	secondaryColor = lipgloss.Color("212")
	mutedColor     = lipgloss.Color("241")
	accentColor    = lipgloss.Color("217")
	whiteColor     = lipgloss.Color("255")

	// Card styles
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	specialCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(0, 1)

	// Text styles
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(whiteColor)
	subtleStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	eyebrowStyle  = lipgloss.NewStyle().Foreground(accentColor)
	badgeStyle    = lipgloss.NewStyle().Foreground(secondaryColor)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor)

	// Year section headers
	yearHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(secondaryColor)

	// Story markers
	markerStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	markerSpecialStyle = lipgloss.NewStyle().Foreground(accentColor)
	markerActiveStyle  = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	// Progress line
	progressDoneStyle = lipgloss.NewStyle().Foreground(primaryColor)
	progressRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// Reaction chips
	reactionStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	reactionActiveStyle = lipgloss.NewStyle().Foreground(primaryColor)

	// Selected feed row indicator
	cursorStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	// Filter bar
	filterBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	filterActiveStyle = lipgloss.NewStyle().Foreground(primaryColor)

	// Empty state
	emptyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(mutedColor).
			Padding(1, 3)
)
