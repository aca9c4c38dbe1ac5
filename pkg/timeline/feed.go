package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/retro/internal/models"
	tl "github.com/marcus/retro/internal/timeline"
)

// feedFocus tracks which input owns keystrokes.
type feedFocus int

const (
	focusList feedFocus = iota
	focusSearch
	focusComment
)

// FeedModel is the interactive, filterable, year-grouped presentation of
// the timeline with inline reaction and comment affordances. Events and
// filter state are owned by the caller; the model holds only transient UI
// state (cursor, open comment panels, drafts).
type FeedModel struct {
	opts FeedOptions

	// internalFilters backs filter state only when opts.Filters is nil
	// (uncontrolled).
	internalFilters models.FilterState

	// expanded maps event id -> comment panel visibility.
	expanded map[string]bool

	// drafts maps event id -> in-progress comment text.
	drafts map[string]string

	cursor int
	focus  feedFocus

	searchInput  textinput.Model
	commentInput textinput.Model

	width  int
	height int

	quitting bool
}

// NewFeed builds a feed model from options.
func NewFeed(opts FeedOptions) FeedModel {
	search := textinput.New()
	search.Placeholder = "Buscar por título, local ou tag"
	search.CharLimit = 120

	comment := textinput.New()
	comment.Placeholder = "Adicionar comentário"
	comment.CharLimit = 280

	return FeedModel{
		opts:            opts,
		internalFilters: models.DefaultFilters(),
		expanded:        make(map[string]bool),
		drafts:          make(map[string]string),
		searchInput:     search,
		commentInput:    comment,
	}
}

// Init implements tea.Model
func (m FeedModel) Init() tea.Cmd {
	return nil
}

// filters resolves the effective filter state: the controlled value when
// supplied, the internal copy otherwise.
func (m FeedModel) filters() models.FilterState {
	if m.opts.Filters != nil {
		return *m.opts.Filters
	}
	return m.internalFilters
}

// setFilters applies a new filter state. Controlled mode reports through
// OnFilterChange and never touches local state.
func (m FeedModel) setFilters(f models.FilterState) FeedModel {
	if m.opts.Filters != nil {
		if m.opts.OnFilterChange != nil {
			m.opts.OnFilterChange(f)
		}
		return m
	}
	m.internalFilters = f
	if m.opts.OnFilterChange != nil {
		m.opts.OnFilterChange(f)
	}
	return m
}

// view derives the filtered, sorted, grouped snapshot for this render.
func (m FeedModel) view() tl.View {
	return tl.BuildView(m.opts.Events, m.filters())
}

// currentEvent returns the event under the cursor, if any.
func (m FeedModel) currentEvent() (models.Event, bool) {
	filtered := m.view().Filtered
	if len(filtered) == 0 {
		return models.Event{}, false
	}
	return filtered[clampIndex(m.cursor, len(filtered))], true
}

// Update implements tea.Model
func (m FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusSearch:
			return m.handleSearchKey(msg)
		case focusComment:
			return m.handleCommentKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}

	return m, nil
}

// handleListKey processes keys while the list has focus.
func (m FeedModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		return m.moveCursor(1), nil

	case "k", "up":
		return m.moveCursor(-1), nil

	case "/":
		m.focus = focusSearch
		m.searchInput.SetValue(m.filters().Query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "t":
		return m.cycleTag(), nil

	case "y":
		return m.cycleYear(), nil

	case "s":
		f := m.filters()
		if f.Sort == models.SortAsc {
			f.Sort = models.SortDesc
		} else {
			f.Sort = models.SortAsc
		}
		return m.setFilters(f), nil

	case "m":
		f := m.filters()
		f.OnlyMilestones = !f.OnlyMilestones
		return m.setFilters(f), nil

	case "x":
		return m.setFilters(models.DefaultFilters()), nil

	case "1", "2", "3":
		return m.reactCurrent(int(msg.String()[0] - '1')), nil

	case "c":
		if event, ok := m.currentEvent(); ok {
			m.expanded[event.ID] = !m.expanded[event.ID]
		}
		return m, nil

	case "enter":
		event, ok := m.currentEvent()
		if !ok || m.opts.OnCommentAdd == nil {
			return m, nil
		}
		m.expanded[event.ID] = true
		m.focus = focusComment
		m.commentInput.SetValue(m.drafts[event.ID])
		m.commentInput.Focus()
		return m, textinput.Blink

	case "n":
		if m.opts.OnCreate != nil {
			m.opts.OnCreate()
		}
		return m, nil

	case "e":
		if event, ok := m.currentEvent(); ok && m.opts.OnEdit != nil {
			m.opts.OnEdit(event)
		}
		return m, nil

	case "d":
		if event, ok := m.currentEvent(); ok && m.opts.OnDelete != nil {
			m.opts.OnDelete(event)
		}
		return m, nil
	}

	return m, nil
}

// moveCursor shifts the cursor and reports the newly hovered event.
func (m FeedModel) moveCursor(delta int) FeedModel {
	filtered := m.view().Filtered
	if len(filtered) == 0 {
		m.cursor = 0
		return m
	}
	next := clampIndex(m.cursor+delta, len(filtered))
	if next != m.cursor {
		m.cursor = next
		if m.opts.OnActiveChange != nil {
			m.opts.OnActiveChange(next, filtered[next])
		}
	}
	return m
}

// cycleTag advances the tag facet through all -> each tag -> all.
func (m FeedModel) cycleTag() FeedModel {
	options := append([]string{models.FilterAll}, m.view().Tags...)
	f := m.filters()
	f.Tag = nextOption(options, f.Tag)
	return m.setFilters(f)
}

// cycleYear advances the year facet.
func (m FeedModel) cycleYear() FeedModel {
	options := append([]string{models.FilterAll}, m.view().Years...)
	f := m.filters()
	f.Year = nextOption(options, f.Year)
	return m.setFilters(f)
}

func nextOption(options []string, current string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// reactCurrent forwards a reaction toggle intent for the cursor event.
// The model renders whatever reaction list it is given; count bookkeeping
// belongs to the owner of the event list.
func (m FeedModel) reactCurrent(slot int) FeedModel {
	event, ok := m.currentEvent()
	if !ok || m.opts.OnReact == nil {
		return m
	}
	reactions := event.Reactions
	if len(reactions) == 0 {
		reactions = models.DefaultReactions()
	}
	if slot < 0 || slot >= len(reactions) {
		return m
	}
	m.opts.OnReact(event, reactions[slot].ID)
	return m
}

// handleSearchKey routes keystrokes into the query input, applying the
// filter live on every change.
func (m FeedModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	f := m.filters()
	f.Query = m.searchInput.Value()
	m = m.setFilters(f)
	m.cursor = 0
	return m, cmd
}

// handleCommentKey routes keystrokes into the comment draft for the
// cursor event.
func (m FeedModel) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	event, ok := m.currentEvent()
	if !ok {
		m.focus = focusList
		m.commentInput.Blur()
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.focus = focusList
		m.drafts[event.ID] = m.commentInput.Value()
		m.commentInput.Blur()
		return m, nil

	case "enter":
		return m.submitComment(event), nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	m.drafts[event.ID] = m.commentInput.Value()
	return m, cmd
}

// submitComment trims the draft and forwards it. Empty or whitespace-only
// drafts are silently ignored and the draft is left untouched; a
// successful submit clears the draft for that event only.
func (m FeedModel) submitComment(event models.Event) FeedModel {
	message := strings.TrimSpace(m.drafts[event.ID])
	if message == "" {
		return m
	}
	if m.opts.OnCommentAdd != nil {
		m.opts.OnCommentAdd(event, message)
	}
	m.drafts[event.ID] = ""
	m.commentInput.SetValue("")
	m.focus = focusList
	m.commentInput.Blur()
	return m
}

// View implements tea.Model
func (m FeedModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 4
	if contentWidth < 30 {
		contentWidth = 30
	}

	view := m.view()
	var b strings.Builder

	b.WriteString(eyebrowStyle.Render("SUA HISTÓRIA"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Timeline do casal"))
	if m.opts.OnCreate != nil {
		b.WriteString(helpStyle.Render("  (n: novo capítulo)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderFilterBar(view, contentWidth))
	b.WriteString("\n\n")

	if len(view.Filtered) == 0 {
		b.WriteString(emptyStyle.Render("Nenhum capítulo encontrado. Ajuste seus filtros ou crie um novo momento."))
		b.WriteString("\n")
	} else {
		m.renderGroups(&b, view, contentWidth)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k mover  / buscar  t tag  y ano  s ordem  m marcos  1-3 reagir  c comentários  enter comentar  q sair"))
	return b.String()
}

// renderFilterBar summarizes the active filters, mirroring the search
// input when it has focus.
func (m FeedModel) renderFilterBar(view tl.View, width int) string {
	f := m.filters()

	var query string
	if m.focus == focusSearch {
		query = m.searchInput.View()
	} else if f.Query != "" {
		query = filterActiveStyle.Render("Busca: \"" + f.Query + "\"")
	} else {
		query = subtleStyle.Render("Busca: /")
	}

	var labels []string
	labels = append(labels, facetLabel("Tag", f.Tag))
	labels = append(labels, facetLabel("Ano", f.Year))
	if f.Sort == models.SortAsc {
		labels = append(labels, subtleStyle.Render("Ordem: antigas"))
	} else {
		labels = append(labels, filterActiveStyle.Render("Ordem: recentes"))
	}
	if f.OnlyMilestones {
		labels = append(labels, filterActiveStyle.Render("Somente marcos"))
	}
	line := query + "   " + strings.Join(labels, "  ")
	return filterBarStyle.Width(width).Render(ansi.Truncate(line, width-2, "…"))
}

func facetLabel(name, value string) string {
	if value == models.FilterAll {
		return subtleStyle.Render(name + ": todas")
	}
	return filterActiveStyle.Render(name + ": " + value)
}

// renderGroups writes the year sections with cursor, actions, and any
// open comment panels.
func (m FeedModel) renderGroups(b *strings.Builder, view tl.View, width int) {
	flatIndex := 0
	cursor := clampIndex(m.cursor, len(view.Filtered))

	for _, group := range view.Groups {
		b.WriteString(yearHeaderStyle.Render("✦ " + group.Year))
		b.WriteString("\n")

		for _, event := range group.Events {
			selected := flatIndex == cursor
			prefix := "  "
			if selected {
				prefix = cursorStyle.Render("▌ ")
			}

			card := RenderItem(event, ItemOptions{
				Variant:       VariantFeed,
				Density:       DensityComfortable,
				Active:        selected,
				ShowHeader:    true,
				Width:         width - 6,
				RenderMedia:   m.opts.RenderMedia,
				RenderActions: m.actionsRenderer(event),
			})
			for _, line := range strings.Split(card, "\n") {
				b.WriteString(prefix + line + "\n")
			}

			if m.expanded[event.ID] {
				m.renderComments(b, event, width-6)
			}
			flatIndex++
		}
		b.WriteString("\n")
	}
}

// actionsRenderer returns the action row for an event: the caller's
// override when given, otherwise the built-in reaction/comment/edit row.
func (m FeedModel) actionsRenderer(event models.Event) func(models.Event) string {
	if m.opts.RenderActions != nil {
		return m.opts.RenderActions
	}
	return func(e models.Event) string {
		reactions := e.Reactions
		if len(reactions) == 0 {
			reactions = models.DefaultReactions()
		}
		var chips []string
		for i, r := range reactions {
			if i >= 3 {
				break
			}
			chip := fmt.Sprintf("%d:%s %d", i+1, r.Emoji, r.Count)
			if r.Reacted {
				chips = append(chips, reactionActiveStyle.Render(chip))
			} else {
				chips = append(chips, reactionStyle.Render(chip))
			}
		}
		chips = append(chips, subtleStyle.Render(fmt.Sprintf("💬 %d", len(e.Comments))))
		var tail []string
		if m.opts.OnEdit != nil {
			tail = append(tail, "e:editar")
		}
		if m.opts.OnDelete != nil {
			tail = append(tail, "d:remover")
		}
		row := strings.Join(chips, "  ")
		if len(tail) > 0 {
			row += "  " + helpStyle.Render(strings.Join(tail, "  "))
		}
		return row
	}
}

// renderComments writes an event's open comment panel, including the
// draft input when it has focus.
func (m FeedModel) renderComments(b *strings.Builder, event models.Event, width int) {
	if len(event.Comments) == 0 {
		b.WriteString("    " + subtleStyle.Render("Nenhum comentário ainda. Seja o primeiro!") + "\n")
	}
	for _, c := range event.Comments {
		line := badgeStyle.Render(c.Author) + " " + c.Message
		b.WriteString("    " + ansi.Truncate(line, width, "…") + "\n")
	}

	current, ok := m.currentEvent()
	if m.focus == focusComment && ok && current.ID == event.ID {
		b.WriteString("    " + m.commentInput.View() + "\n")
	} else if draft := m.drafts[event.ID]; draft != "" {
		b.WriteString("    " + subtleStyle.Render("rascunho: "+draft) + "\n")
	}
}
