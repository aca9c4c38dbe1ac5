// Package timeline derives presentable views from raw chapter lists: facet
// extraction, filtering, chronological sorting, and year grouping. Every
// function here is pure; malformed dates degrade into the no-date bucket
// instead of failing the computation.
package timeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/marcus/retro/internal/dateparse"
	"github.com/marcus/retro/internal/models"
)

// YearGroup is one year bucket of the grouped view. Events keep the global
// sort order within the bucket.
type YearGroup struct {
	Year   string         `json:"year"`
	Events []models.Event `json:"events"`
}

// View is the fully derived feed view for one (events, filters) input.
type View struct {
	Groups   []YearGroup
	Filtered []models.Event
	Tags     []string
	Years    []string
}

// YearLabel returns the 4-digit year for a parseable event date, or
// models.NoDateLabel when the date matches no known layout.
func YearLabel(date string) string {
	t, ok := dateparse.Parse(date)
	if !ok {
		return models.NoDateLabel
	}
	return strconv.Itoa(t.Year())
}

// Tags returns the deduplicated union of tags across all events, sorted
// lexicographically.
func Tags(events []models.Event) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, e := range events {
		for _, tag := range e.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// Years returns every distinct year label across the events, sorted
// numerically ascending with the no-date label forced last.
func Years(events []models.Event) []string {
	seen := make(map[string]bool)
	var years []string
	for _, e := range events {
		label := YearLabel(e.Date)
		if !seen[label] {
			seen[label] = true
			years = append(years, label)
		}
	}
	sort.Slice(years, func(i, j int) bool {
		return lessYear(years[i], years[j], models.SortAsc)
	})
	return years
}

// Filter returns the events passing every active filter condition.
func Filter(events []models.Event, f models.FilterState) []models.Event {
	query := strings.ToLower(f.Query)
	var out []models.Event
	for _, e := range events {
		if query != "" && !strings.Contains(searchText(e), query) {
			continue
		}
		if f.Tag != models.FilterAll && !e.HasTag(f.Tag) {
			continue
		}
		if f.Year != models.FilterAll && YearLabel(e.Date) != f.Year {
			continue
		}
		if f.OnlyMilestones && !e.IsMilestone {
			continue
		}
		out = append(out, e)
	}
	return out
}

// searchText concatenates the queryable fields of an event, lowercased.
func searchText(e models.Event) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{e.Title, e.Description, e.Location, strings.Join(e.Tags, " ")} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Sort returns a copy of events ordered by parsed date. Events with
// unparseable dates sort to the end under both directions; the original
// slice is not modified. The sort is stable, so equal dates keep their
// input order.
func Sort(events []models.Event, direction models.Sort) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := dateparse.Parse(out[i].Date)
		tj, okj := dateparse.Parse(out[j].Date)
		if oki != okj {
			// Unknown dates trail the timeline regardless of direction.
			return oki
		}
		if !oki {
			return false
		}
		if direction == models.SortDesc {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
	return out
}

// Group partitions already-sorted events into year buckets. Bucket order
// follows the sort direction on the numeric year; the no-date bucket is
// always last.
func Group(events []models.Event, direction models.Sort) []YearGroup {
	buckets := make(map[string][]models.Event)
	var order []string
	for _, e := range events {
		label := YearLabel(e.Date)
		if _, ok := buckets[label]; !ok {
			order = append(order, label)
		}
		buckets[label] = append(buckets[label], e)
	}

	sort.Slice(order, func(i, j int) bool {
		return lessYear(order[i], order[j], direction)
	})

	groups := make([]YearGroup, 0, len(order))
	for _, year := range order {
		groups = append(groups, YearGroup{Year: year, Events: buckets[year]})
	}
	return groups
}

// lessYear orders year labels numerically in the given direction with the
// no-date label pinned last.
func lessYear(a, b string, direction models.Sort) bool {
	if a == models.NoDateLabel {
		return false
	}
	if b == models.NoDateLabel {
		return true
	}
	na, _ := strconv.Atoi(a)
	nb, _ := strconv.Atoi(b)
	if direction == models.SortDesc {
		return na > nb
	}
	return na < nb
}

// BuildView derives the complete feed view: facets from the unfiltered
// input, then the filtered, sorted, grouped event list.
func BuildView(events []models.Event, f models.FilterState) View {
	filtered := Sort(Filter(events, f), f.Sort)
	return View{
		Groups:   Group(filtered, f.Sort),
		Filtered: filtered,
		Tags:     Tags(events),
		Years:    Years(events),
	}
}
