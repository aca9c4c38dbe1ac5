package timeline

import (
	"reflect"
	"testing"

	"github.com/marcus/retro/internal/models"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: "e1", Title: "Primeiro encontro", Date: "2022-02-14", Location: "São Paulo", Tags: []string{"Encontro", "Marco"}, IsMilestone: true},
		{ID: "e2", Title: "Primeira viagem juntos", Date: "2022-06-12", Description: "Três dias no litoral.", Tags: []string{"Viagem", "Praia"}},
		{ID: "e3", Title: "Novo lar", Date: "2023-01-08", Tags: []string{"Casa"}},
		{ID: "e4", Title: "Carta antiga", Date: "not-a-date", Tags: []string{"Carta"}},
		{ID: "e5", Title: "Pedido especial", Date: "2024-02-14", Tags: []string{"Pedido", "Marco"}, IsMilestone: true},
	}
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestYearLabel(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2022-02-14", "2022"},
		{"2023-01-08T10:00:00Z", "2023"},
		{"not-a-date", models.NoDateLabel},
		{"", models.NoDateLabel},
	}
	for _, tt := range tests {
		if got := YearLabel(tt.date); got != tt.want {
			t.Errorf("YearLabel(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestTags_DedupedAndSorted(t *testing.T) {
	events := []models.Event{
		{ID: "a", Tags: []string{"Viagem", "Marco"}},
		{ID: "b", Tags: []string{"Marco", "Casa"}},
		{ID: "c"},
	}
	want := []string{"Casa", "Marco", "Viagem"}
	if got := Tags(events); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

func TestYears_NoDateLast(t *testing.T) {
	got := Years(sampleEvents())
	want := []string{"2022", "2023", "2024", models.NoDateLabel}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Years = %v, want %v", got, want)
	}
}

func TestFilter_Query(t *testing.T) {
	f := models.DefaultFilters()
	f.Query = "litoral"
	got := Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e2"}) {
		t.Errorf("query filter = %v, want [e2]", ids(got))
	}

	// Query matches across title, location and tags, case-insensitively.
	f.Query = "são paulo"
	got = Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e1"}) {
		t.Errorf("location query = %v, want [e1]", ids(got))
	}

	f.Query = "praia"
	got = Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e2"}) {
		t.Errorf("tag query = %v, want [e2]", ids(got))
	}
}

func TestFilter_Tag(t *testing.T) {
	f := models.DefaultFilters()
	f.Tag = "Marco"
	got := Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e1", "e5"}) {
		t.Errorf("tag filter = %v, want [e1 e5]", ids(got))
	}
}

func TestFilter_Year(t *testing.T) {
	f := models.DefaultFilters()
	f.Year = "2022"
	got := Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e1", "e2"}) {
		t.Errorf("year filter = %v, want [e1 e2]", ids(got))
	}

	f.Year = models.NoDateLabel
	got = Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e4"}) {
		t.Errorf("no-date year filter = %v, want [e4]", ids(got))
	}
}

func TestFilter_OnlyMilestones(t *testing.T) {
	f := models.DefaultFilters()
	f.OnlyMilestones = true
	got := Filter(sampleEvents(), f)
	if !reflect.DeepEqual(ids(got), []string{"e1", "e5"}) {
		t.Errorf("milestone filter = %v, want [e1 e5]", ids(got))
	}
	// Filtered events retain their original field values.
	if got[0].Title != "Primeiro encontro" || !got[0].HasTag("Encontro") {
		t.Errorf("filtered event mutated: %+v", got[0])
	}
}

func TestSort_Directions(t *testing.T) {
	events := sampleEvents()

	asc := Sort(events, models.SortAsc)
	if !reflect.DeepEqual(ids(asc), []string{"e1", "e2", "e3", "e5", "e4"}) {
		t.Errorf("asc sort = %v", ids(asc))
	}

	desc := Sort(events, models.SortDesc)
	if !reflect.DeepEqual(ids(desc), []string{"e5", "e3", "e2", "e1", "e4"}) {
		t.Errorf("desc sort = %v", ids(desc))
	}

	// Input order untouched.
	if !reflect.DeepEqual(ids(events), []string{"e1", "e2", "e3", "e4", "e5"}) {
		t.Errorf("Sort mutated its input: %v", ids(events))
	}
}

func TestSort_UnparseableAlwaysLast(t *testing.T) {
	for _, direction := range []models.Sort{models.SortAsc, models.SortDesc} {
		sorted := Sort(sampleEvents(), direction)
		if sorted[len(sorted)-1].ID != "e4" {
			t.Errorf("direction %s: unparseable date not last: %v", direction, ids(sorted))
		}
	}
}

func TestGroup_AscendingYears(t *testing.T) {
	events := []models.Event{
		{ID: "a", Date: "2022-02-14"},
		{ID: "b", Date: "2022-06-12"},
		{ID: "c", Date: "2023-01-08"},
	}
	groups := Group(Sort(events, models.SortAsc), models.SortAsc)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Year != "2022" || groups[1].Year != "2023" {
		t.Errorf("group years = %s, %s", groups[0].Year, groups[1].Year)
	}
	if !reflect.DeepEqual(ids(groups[0].Events), []string{"a", "b"}) {
		t.Errorf("2022 events = %v, want [a b]", ids(groups[0].Events))
	}
}

func TestGroup_DescendingReversesYearsNotNoDate(t *testing.T) {
	for _, direction := range []models.Sort{models.SortAsc, models.SortDesc} {
		sorted := Sort(sampleEvents(), direction)
		groups := Group(sorted, direction)
		last := groups[len(groups)-1]
		if last.Year != models.NoDateLabel {
			t.Errorf("direction %s: last group = %q, want %q", direction, last.Year, models.NoDateLabel)
		}
		if !reflect.DeepEqual(ids(last.Events), []string{"e4"}) {
			t.Errorf("direction %s: no-date group = %v", direction, ids(last.Events))
		}
	}

	desc := Group(Sort(sampleEvents(), models.SortDesc), models.SortDesc)
	if desc[0].Year != "2024" {
		t.Errorf("desc first group = %q, want 2024", desc[0].Year)
	}
}

func TestBuildView_Idempotent(t *testing.T) {
	f := models.DefaultFilters()
	f.Tag = "Marco"
	f.Sort = models.SortDesc

	first := BuildView(sampleEvents(), f)
	second := BuildView(sampleEvents(), f)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("BuildView not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildView_FacetsFromUnfilteredInput(t *testing.T) {
	f := models.DefaultFilters()
	f.OnlyMilestones = true
	view := BuildView(sampleEvents(), f)

	// Facet options come from the full input, not the filtered subset.
	if !reflect.DeepEqual(view.Tags, Tags(sampleEvents())) {
		t.Errorf("view tags = %v", view.Tags)
	}
	if !reflect.DeepEqual(view.Years, Years(sampleEvents())) {
		t.Errorf("view years = %v", view.Years)
	}
	if len(view.Filtered) != 2 {
		t.Errorf("filtered = %v, want 2 milestones", ids(view.Filtered))
	}
}

func TestBuildView_EmptyInput(t *testing.T) {
	view := BuildView(nil, models.DefaultFilters())
	if len(view.Groups) != 0 || len(view.Filtered) != 0 {
		t.Errorf("empty input produced non-empty view: %+v", view)
	}
}
