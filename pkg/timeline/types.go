// Package timeline renders a couple's story as an interactive terminal
// experience: a horizontally scrolled "story" showcase with a single
// active step synchronized to scroll position, and a filterable,
// socially-annotated "feed" grouped by year.
package timeline

import (
	"time"

	"github.com/marcus/retro/internal/models"
)

// Variant selects between the two presentation modes.
type Variant string

const (
	VariantStory Variant = "story"
	VariantFeed  Variant = "feed"
)

// Density selects story card sizing.
type Density string

const (
	DensityCompact     Density = "compact"
	DensityComfortable Density = "comfortable"
)

// DefaultBreakpointCols is the terminal width below which story mode
// falls back to the vertical accordion.
const DefaultBreakpointCols = 100

// frameInterval paces scroll-driven recomputation to roughly one update
// per rendering frame.
const frameInterval = time.Second / 60

// FrameMsg drives one deferred geometry/active-index recomputation. At
// most one frame is in flight at a time; triggers arriving while a frame
// is pending are coalesced into it.
type FrameMsg time.Time

// StoryOptions configures story mode.
type StoryOptions struct {
	Events []models.Event

	// ActiveIndex makes the active step externally controlled when
	// non-nil: the model reports changes but never applies them itself.
	ActiveIndex *int

	// OnActiveChange fires once per active-step transition.
	OnActiveChange func(index int, event models.Event)

	Density         Density
	SpecialKeywords []string
	ShowStartMarker bool

	// BreakpointCols overrides DefaultBreakpointCols when > 0.
	BreakpointCols int
}

// FeedOptions configures feed mode. All callbacks are optional; a missing
// callback disables the corresponding affordance without error.
type FeedOptions struct {
	Events []models.Event

	// Filters makes filter state externally controlled when non-nil;
	// the model then reports changes via OnFilterChange instead of
	// mutating local state.
	Filters        *models.FilterState
	OnFilterChange func(models.FilterState)

	OnActiveChange func(index int, event models.Event)
	OnEdit         func(models.Event)
	OnDelete       func(models.Event)
	OnReact        func(event models.Event, reactionID string)
	OnCommentAdd   func(event models.Event, message string)
	OnCreate       func()

	// Render overrides for the item card's two seams.
	RenderMedia   func(models.Event) string
	RenderActions func(models.Event) string

	// Author is the display name attached to comments submitted from
	// the feed.
	Author string
}

// Props is the tagged union handed to New: exactly the option set matching
// Variant may be populated.
type Props struct {
	Variant Variant
	Story   *StoryOptions
	Feed    *FeedOptions
}
