package carousel

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/marquee/internal/ui/common"
)

// View renders the visible window of the slide track plus the dot navigator.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.deck.Len() == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Muted.Render("no slides"))
	}

	trackHeight := m.height
	if m.showDots {
		trackHeight--
	}
	if trackHeight < 3 {
		trackHeight = 3
	}

	m.trackRegion = common.HitRegion{ID: "track", X: 0, Y: 0, Width: m.width, Height: trackHeight}

	window := m.renderWindow(trackHeight)
	if !m.showDots {
		return window
	}
	return lipgloss.JoinVertical(lipgloss.Left, window, m.renderDots())
}

// renderWindow builds the full track, clones included, and slices out the
// columns currently under the scroll position.
func (m *Model) renderWindow(height int) string {
	params := m.eng.Params()
	if params.SlideWidth <= 0 || params.OriginalCount == 0 {
		return ""
	}

	slideWidth := int(params.SlideWidth)
	gap := int(params.Gap)
	n := params.OriginalCount
	total := n + 2*params.CloneCount
	selected := m.eng.CurrentIndex()

	cells := make([]string, 0, total*2)
	for t := 0; t < total; t++ {
		real := ((t-params.CloneCount)%n + n) % n
		cells = append(cells, m.renderSlide(real, real == selected, slideWidth, height))
		if gap > 0 && t < total-1 {
			cells = append(cells, gapBlock(gap, height))
		}
	}

	track := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return clipColumns(track, int(math.Round(m.eng.Position())), m.width)
}

func (m *Model) renderSlide(index int, selected bool, width, height int) string {
	slide := m.deck.Slide(index)

	style := m.styles.Slide
	if selected {
		style = m.styles.SelectedSlide
	}

	// Border takes two columns, padding another two.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	lines := []string{
		m.styles.SlideTitle.Render(runewidth.Truncate(slide.Title, inner, "…")),
		m.styles.SlideBody.Width(inner).Render(slide.Body),
	}
	if slide.Badge != "" {
		badge := m.styles.SlideBadge.Render(runewidth.Truncate(slide.Badge, inner, "…"))
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Right, badge))
	}

	return style.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) renderDots() string {
	selected := m.eng.CurrentIndex()

	prev := m.styles.Arrow.Render("‹")
	next := m.styles.Arrow.Render("›")
	if m.zone != nil {
		prev = m.zone.Mark(arrowZoneID("prev"), prev)
		next = m.zone.Mark(arrowZoneID("next"), next)
	}

	parts := []string{prev}
	for i := 0; i < m.deck.Len(); i++ {
		dot := m.styles.Dot.Render("○")
		if i == selected {
			dot = m.styles.ActiveDot.Render("●")
		}
		if m.zone != nil {
			dot = m.zone.Mark(dotZoneID(i), dot)
		}
		parts = append(parts, dot)
	}
	parts = append(parts, next)

	bar := strings.Join(parts, " ")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
}

// gapBlock renders the empty columns between adjacent slides.
func gapBlock(width, height int) string {
	line := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

// clipColumns slices [left, left+width) columns out of every track line,
// ANSI-aware. A negative left pads the window with blank columns, which
// happens during non-looping overscroll past the first slide.
func clipColumns(track string, left, width int) string {
	var pad string
	if left < 0 {
		pad = strings.Repeat(" ", -left)
		left = 0
	}
	lines := strings.Split(track, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Cut(pad+line, left, left+width)
	}
	return strings.Join(out, "\n")
}
