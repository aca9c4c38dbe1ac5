package models

// Sort represents timeline sort direction
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// FilterAll is the sentinel value meaning "no filter applied" for the tag
// and year facets. It must never collide with a real tag or year value.
const FilterAll = "all"

// NoDateLabel is the synthetic year group for events whose date cannot be
// parsed. It always sorts after every real year.
const NoDateLabel = "Sem data"

// Reaction is one reaction kind attached to an event. ID is unique within
// one event's reaction list; Reacted is per-viewer state.
type Reaction struct {
	ID      string `json:"id"`
	Emoji   string `json:"emoji"`
	Count   int    `json:"count"`
	Reacted bool   `json:"reacted,omitempty"`
}

// Comment is a reader comment on an event. Comments are immutable once
// created; list order is insertion order.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Message   string `json:"message"`
	Date      string `json:"date"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Event represents one memory/chapter in the relationship story
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Description string     `json:"description,omitempty"`
	CoverURL    string     `json:"cover_url,omitempty"`
	Gallery     []string   `json:"gallery,omitempty"`
	Location    string     `json:"location,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	IsMilestone bool       `json:"is_milestone,omitempty"`
	Reactions   []Reaction `json:"reactions,omitempty"`
	Comments    []Comment  `json:"comments,omitempty"`
}

// HasTag reports whether the event carries the given tag.
func (e Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterState holds the feed filter controls. Tag and Year use FilterAll
// to mean "no filter".
type FilterState struct {
	Query          string `json:"query"`
	Tag            string `json:"tag"`
	Year           string `json:"year"`
	Sort           Sort   `json:"sort"`
	OnlyMilestones bool   `json:"only_milestones"`
}

// DefaultFilters returns the initial filter state.
func DefaultFilters() FilterState {
	return FilterState{
		Query:          "",
		Tag:            FilterAll,
		Year:           FilterAll,
		Sort:           SortAsc,
		OnlyMilestones: false,
	}
}

// IsDefault reports whether no filter deviates from the default state.
func (f FilterState) IsDefault() bool {
	return f == DefaultFilters()
}

// DefaultReactions returns the zero-count reaction vocabulary used when an
// event carries no reaction list of its own.
func DefaultReactions() []Reaction {
	return []Reaction{
		{ID: "love", Emoji: "❤️"},
		{ID: "spark", Emoji: "✨"},
		{ID: "heart", Emoji: "💫"},
	}
}

// ToggleReaction flips the viewer's reaction with the given id and adjusts
// its count, flooring at zero. Reactions with other ids pass through
// unchanged. The input slice is not modified.
func ToggleReaction(reactions []Reaction, reactionID string) []Reaction {
	out := make([]Reaction, len(reactions))
	copy(out, reactions)
	for i, r := range out {
		if r.ID != reactionID {
			continue
		}
		r.Reacted = !r.Reacted
		if r.Reacted {
			r.Count++
		} else if r.Count > 0 {
			r.Count--
		}
		out[i] = r
	}
	return out
}
