package timeline

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/retro/internal/dateparse"
	tl "github.com/marcus/retro/internal/timeline"
)

// Track geometry in terminal columns.
const (
	trackLeftPad = 2
	stepGap      = 4
	// scrollStep is how far one wheel/scroll keypress moves the track.
	scrollStep = 6
	// animDivisor controls centering animation speed: each frame covers
	// this fraction of the remaining distance.
	animDivisor = 3
)

// StoryModel presents events as a sequence of steps: a horizontally
// scrolled snap track on wide terminals, a vertical accordion on narrow
// ones. A single active index stays synchronized between discrete
// selection (keys, clicks) and continuous scrolling.
type StoryModel struct {
	opts       StoryOptions
	classifier *tl.Classifier

	width  int
	height int

	// Active-index state machine. internalActive is authoritative only
	// when opts.ActiveIndex is nil (uncontrolled).
	internalActive int

	// Horizontal scroll state for the wide track.
	scrollX      int
	targetScroll int
	animating    bool

	// Marker centers along the track axis, recomputed when geometry
	// changes.
	centers      []int
	centersDirty bool

	// framePending guards recomputation to at most one per frame;
	// triggers arriving while a frame is pending coalesce into it.
	framePending bool

	// syncPending requests a scroll-driven active-index recompute on the
	// next frame.
	syncPending bool

	// openID is the expanded accordion entry on narrow terminals.
	openID string

	quitting bool
}

// NewStory builds a story model from options. The zero breakpoint and
// density fall back to package defaults.
func NewStory(opts StoryOptions) StoryModel {
	m := StoryModel{
		opts:         opts,
		classifier:   tl.NewClassifier(opts.SpecialKeywords),
		centersDirty: true,
	}
	if len(opts.Events) > 0 {
		m.openID = opts.Events[m.activeIndex()].ID
	}
	return m
}

// Init implements tea.Model
func (m StoryModel) Init() tea.Cmd {
	return nil
}

// activeIndex resolves the current active step, honoring controlled mode
// and clamping to the event range.
func (m StoryModel) activeIndex() int {
	idx := m.internalActive
	if m.opts.ActiveIndex != nil {
		idx = *m.opts.ActiveIndex
	}
	return clampIndex(idx, len(m.opts.Events))
}

func clampIndex(idx, count int) int {
	if count == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}

// breakpoint returns the accordion/track cutover width.
func (m StoryModel) breakpoint() int {
	if m.opts.BreakpointCols > 0 {
		return m.opts.BreakpointCols
	}
	return DefaultBreakpointCols
}

// wideLayout reports whether the horizontal track applies at the current
// terminal width.
func (m StoryModel) wideLayout() bool {
	return m.width >= m.breakpoint()
}

func (m StoryModel) cardWidth() int {
	if m.opts.Density == DensityComfortable {
		return comfortableCardWidth
	}
	return compactCardWidth
}

// stepWidth is the column span of one step including its gap.
func (m StoryModel) stepWidth() int {
	return m.cardWidth() + 2 + stepGap // +2 for card borders
}

// trackWidth is the full width of the unscrolled track.
func (m StoryModel) trackWidth() int {
	n := len(m.opts.Events)
	if n == 0 {
		return 0
	}
	return trackLeftPad*2 + n*m.stepWidth() - stepGap
}

func (m StoryModel) maxScroll() int {
	max := m.trackWidth() - m.width
	if max < 0 {
		return 0
	}
	return max
}

// Update implements tea.Model
func (m StoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Resize changes geometry but not the selection; only scrolling
		// drives the active-index sync.
		m.width = msg.Width
		m.height = msg.Height
		m.centersDirty = true
		return m, m.scheduleFrame()

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes key input
func (m StoryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "h", "up", "k":
		// Focus-driven: activate without scrolling.
		return m.setActive(m.activeIndex()-1, false)

	case "right", "l", "down", "j":
		return m.setActive(m.activeIndex()+1, false)

	case "home", "g":
		return m.setActive(0, false)

	case "end", "G":
		return m.setActive(len(m.opts.Events)-1, false)

	case "enter", " ":
		if !m.wideLayout() && len(m.opts.Events) > 0 {
			// Accordion: toggle the active entry open/closed.
			id := m.opts.Events[m.activeIndex()].ID
			if m.openID == id {
				m.openID = ""
			} else {
				m.openID = id
			}
			return m, nil
		}
		// Click-equivalent: activate and center the step.
		return m.setActive(m.activeIndex(), true)

	case "[", "shift+left":
		return m.scrollBy(-scrollStep)

	case "]", "shift+right":
		return m.scrollBy(scrollStep)
	}

	return m, nil
}

// handleMouse maps wheel movement to free scrolling and clicks/motion to
// marker activation.
func (m StoryModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.wideLayout() {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m.scrollBy(-scrollStep)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m.scrollBy(scrollStep)
	}

	idx, ok := m.hitTest(msg.X)
	if !ok {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return m.setActive(idx, true)
	case tea.MouseActionMotion:
		// Hover: activate immediately, no scroll side effect.
		return m.setActive(idx, false)
	}
	return m, nil
}

// hitTest maps a viewport column to the step whose slot spans it.
func (m StoryModel) hitTest(viewX int) (int, bool) {
	n := len(m.opts.Events)
	if n == 0 {
		return 0, false
	}
	trackX := viewX + m.scrollX - trackLeftPad
	if trackX < 0 {
		return 0, false
	}
	idx := trackX / m.stepWidth()
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// scrollBy moves the track and schedules a scroll-driven active-index
// recompute for the next frame. The most recent scroll position wins; no
// queue of stale positions is kept.
func (m StoryModel) scrollBy(delta int) (tea.Model, tea.Cmd) {
	if !m.wideLayout() {
		return m, nil
	}
	m.animating = false
	m.scrollX = clampScroll(m.scrollX+delta, m.maxScroll())
	m.syncPending = true
	return m, m.scheduleFrame()
}

func clampScroll(x, max int) int {
	if x < 0 {
		return 0
	}
	if x > max {
		return max
	}
	return x
}

// scheduleFrame arms one frame tick unless one is already pending.
func (m *StoryModel) scheduleFrame() tea.Cmd {
	if m.framePending {
		return nil
	}
	m.framePending = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// handleFrame performs the deferred work for one frame: geometry
// recomputation first, then the active-index selection that depends on
// it, then one animation step when a centering scroll is in flight.
func (m StoryModel) handleFrame() (tea.Model, tea.Cmd) {
	m.framePending = false
	if m.quitting {
		// Teardown: drop pending work rather than operating on a
		// dismissed view.
		return m, nil
	}

	if m.centersDirty {
		m.recomputeCenters()
	}

	var cmd tea.Cmd
	if m.syncPending {
		m.syncPending = false
		model, syncCmd := m.syncActiveToScroll()
		m = model.(StoryModel)
		cmd = syncCmd
	}

	if m.animating {
		m = m.stepAnimation()
	}
	if m.animating || m.syncPending {
		return m, tea.Batch(cmd, m.scheduleFrame())
	}
	return m, cmd
}

// recomputeCenters rebuilds the marker-center table. Geometry that is not
// available yet (no window size) leaves the table empty; the recompute
// retries on the next trigger.
func (m *StoryModel) recomputeCenters() {
	n := len(m.opts.Events)
	if m.width <= 0 || n == 0 {
		m.centers = nil
		return
	}
	centers := make([]int, n)
	half := (m.cardWidth() + 2) / 2
	for i := 0; i < n; i++ {
		centers[i] = trackLeftPad + i*m.stepWidth() + half
	}
	m.centers = centers
	m.centersDirty = false
}

// syncActiveToScroll selects the step whose marker center is closest to
// the viewport's visual center. Ties break to the lowest index via the
// strict less-than comparison.
func (m StoryModel) syncActiveToScroll() (tea.Model, tea.Cmd) {
	if !m.wideLayout() || len(m.centers) == 0 {
		return m, nil
	}
	viewCenter := m.scrollX + m.width/2
	closest := -1
	smallest := int(^uint(0) >> 1)
	for i, center := range m.centers {
		distance := center - viewCenter
		if distance < 0 {
			distance = -distance
		}
		if distance < smallest {
			smallest = distance
			closest = i
		}
	}
	if closest >= 0 && closest != m.activeIndex() {
		return m.setActive(closest, false)
	}
	return m, nil
}

// setActive is the single transition point of the active-index machine.
// Out-of-range indices clamp; re-activating the current index is a no-op
// so rapid scroll never fires redundant callbacks.
func (m StoryModel) setActive(index int, scrollIntoView bool) (tea.Model, tea.Cmd) {
	n := len(m.opts.Events)
	if n == 0 {
		return m, nil
	}
	bounded := clampIndex(index, n)

	var cmd tea.Cmd
	if bounded != m.activeIndex() {
		if m.opts.ActiveIndex == nil {
			m.internalActive = bounded
		}
		m.openID = m.opts.Events[bounded].ID
		if m.opts.OnActiveChange != nil {
			m.opts.OnActiveChange(bounded, m.opts.Events[bounded])
		}
	} else {
		m.openID = m.opts.Events[bounded].ID
	}

	if scrollIntoView && m.wideLayout() {
		if m.centersDirty {
			m.recomputeCenters()
		}
		if bounded < len(m.centers) {
			m.targetScroll = clampScroll(m.centers[bounded]-m.width/2, m.maxScroll())
			if m.targetScroll != m.scrollX {
				m.animating = true
				cmd = m.scheduleFrame()
			}
		}
	}
	return m, cmd
}

// stepAnimation advances the centering scroll one frame, easing toward
// the target.
func (m StoryModel) stepAnimation() StoryModel {
	remaining := m.targetScroll - m.scrollX
	if remaining == 0 {
		m.animating = false
		return m
	}
	step := remaining / animDivisor
	if step == 0 {
		if remaining > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	m.scrollX += step
	if m.scrollX == m.targetScroll {
		m.animating = false
	}
	// No syncPending here: the centering scroll serves an explicit
	// selection, which the nearest-center sync must not override.
	return m
}

// progress is the discrete step fraction in [0, 1]: activeIndex over the
// last index, independent of pixel scroll offset.
func (m StoryModel) progress() float64 {
	n := len(m.opts.Events)
	if n <= 1 {
		return 1
	}
	p := float64(m.activeIndex()) / float64(n-1)
	if p > 1 {
		return 1
	}
	return p
}

// View implements tea.Model
func (m StoryModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.opts.Events) == 0 {
		return emptyStyle.Render("Nenhum momento disponível ainda.")
	}
	if m.width == 0 {
		return ""
	}
	if m.wideLayout() {
		return m.viewTrack()
	}
	return m.viewAccordion()
}

// viewTrack renders the wide horizontal layout: progress line, marker
// row, and the card row, all cut to the scrolled viewport window.
func (m StoryModel) viewTrack() string {
	active := m.activeIndex()

	cards := make([]string, len(m.opts.Events))
	markers := make([]string, len(m.opts.Events))
	for i, e := range m.opts.Events {
		special := m.classifier.IsSpecial(e)
		eyebrow := ""
		if m.opts.ShowStartMarker && i == 0 {
			eyebrow = "Início"
		}
		card := RenderItem(e, ItemOptions{
			Variant:      VariantStory,
			Density:      m.opts.Density,
			Active:       i == active,
			Special:      special,
			EyebrowLabel: eyebrow,
			ShowHeader:   true,
		})
		cards[i] = lipgloss.NewStyle().MarginRight(stepGap).Render(card)
		markers[i] = m.renderMarker(i, special, i == active)
	}

	track := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	markerLine := strings.Join(markers, "")

	var b strings.Builder
	b.WriteString(m.renderProgressLine())
	b.WriteString("\n")
	b.WriteString(cutWindow(pad(markerLine, trackLeftPad), m.scrollX, m.width))
	b.WriteString("\n")
	for _, line := range strings.Split(track, "\n") {
		b.WriteString(cutWindow(pad(line, trackLeftPad), m.scrollX, m.width))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("←/→ navegar  [/] rolar  enter centralizar  q sair"))
	return b.String()
}

// renderMarker draws one step's marker centered in its slot.
func (m StoryModel) renderMarker(i int, special, active bool) string {
	glyph := "♥"
	style := markerStyle
	if special {
		glyph = "✦"
		style = markerSpecialStyle
	}
	if active {
		glyph = "●"
		style = markerActiveStyle
	}
	slot := m.stepWidth()
	if i == len(m.opts.Events)-1 {
		slot -= stepGap
	}
	left := (m.cardWidth()+2)/2 - 1
	if left < 0 {
		left = 0
	}
	right := slot - left - 1
	if right < 0 {
		right = 0
	}
	return strings.Repeat("─", left) + style.Render(glyph) + strings.Repeat("─", right)
}

// renderProgressLine draws the discrete progress indicator across the
// viewport width.
func (m StoryModel) renderProgressLine() string {
	if m.width <= 0 {
		return ""
	}
	filled := int(m.progress() * float64(m.width-1))
	if filled < 0 {
		filled = 0
	}
	rest := m.width - 1 - filled
	return progressDoneStyle.Render(strings.Repeat("━", filled+1)) +
		progressRestStyle.Render(strings.Repeat("─", rest))
}

// viewAccordion renders the narrow vertical layout: one entry per event,
// the open entry expanded to the full card.
func (m StoryModel) viewAccordion() string {
	active := m.activeIndex()
	width := m.width - 6
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for i, e := range m.opts.Events {
		special := m.classifier.IsSpecial(e)
		marker := markerStyle.Render("○")
		if special {
			marker = markerSpecialStyle.Render("✦")
		}
		if i == active {
			marker = markerActiveStyle.Render("●")
		}

		header := subtleStyle.Render(dateparse.FormatDisplay(e.Date)) + "  " + titleStyle.Render(e.Title)
		if m.opts.ShowStartMarker && i == 0 {
			header += "  " + eyebrowStyle.Render("[Início]")
		} else if special && !e.IsMilestone {
			header += "  " + eyebrowStyle.Render("[Especial]")
		}
		b.WriteString(marker + " " + ansi.Truncate(header, width, "…"))
		b.WriteString("\n")

		if e.ID == m.openID {
			card := RenderItem(e, ItemOptions{
				Variant:    VariantStory,
				Density:    DensityComfortable,
				Active:     i == active,
				Special:    special,
				ShowHeader: false,
				Width:      width - 4,
			})
			for _, line := range strings.Split(card, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}
	b.WriteString(helpStyle.Render("j/k navegar  q sair"))
	return b.String()
}

// pad prefixes a line with the track's left padding.
func pad(line string, n int) string {
	return strings.Repeat(" ", n) + line
}

// cutWindow slices the [x, x+width) column window out of a styled line.
func cutWindow(line string, x, width int) string {
	cut := ansi.Cut(line, x, x+width)
	return cut
}
