package carousel

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"
)

func dotZoneID(index int) string { return fmt.Sprintf("carousel-dot-%d", index) }

func arrowZoneID(dir string) string { return "carousel-arrow-" + dir }

// zoneContains checks a point against a scanned zone. Zones resolve through
// coordinate fields rather than InBounds, which still expects v1 mouse
// messages.
func zoneContains(z *zone.ZoneInfo, x, y int) bool {
	if z == nil || z.IsZero() {
		return false
	}
	return x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}

	if m.zone != nil {
		if zoneContains(m.zone.Get(arrowZoneID("prev")), msg.X, msg.Y) {
			m.cancelFrames()
			m.eng.ScrollPrev()
			return m, m.drainEvents()
		}
		if zoneContains(m.zone.Get(arrowZoneID("next")), msg.X, msg.Y) {
			m.cancelFrames()
			m.eng.ScrollNext()
			return m, m.drainEvents()
		}
		for i := 0; i < m.deck.Len(); i++ {
			if zoneContains(m.zone.Get(dotZoneID(i)), msg.X, msg.Y) {
				m.cancelFrames()
				m.eng.ScrollTo(i, true)
				return m, m.drainEvents()
			}
		}
	}

	if m.trackRegion.Contains(msg.X, msg.Y) {
		m.dragging = true
		m.cancelFrames()
		m.eng.DragStart(float64(msg.X), time.Now())
	}
	return m, nil
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (*Model, tea.Cmd) {
	if !m.dragging {
		return m, nil
	}
	m.eng.DragMove(float64(msg.X), time.Now())
	return m, m.drainEvents()
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) (*Model, tea.Cmd) {
	if !m.dragging {
		return m, nil
	}
	m.dragging = false
	if m.eng.DragEnd(time.Now()) {
		return m, tea.Batch(m.startFrames(), m.drainEvents())
	}
	return m, m.drainEvents()
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (*Model, tea.Cmd) {
	if !m.trackRegion.Contains(msg.X, msg.Y) {
		return m, nil
	}

	var delta float64
	switch msg.Button {
	case tea.MouseWheelUp, tea.MouseWheelLeft:
		delta = -m.opts.WheelStep
	case tea.MouseWheelDown, tea.MouseWheelRight:
		delta = m.opts.WheelStep
	default:
		return m, nil
	}

	if m.eng.Wheel(delta, time.Now()) {
		return m, tea.Batch(m.startFrames(), m.drainEvents())
	}
	return m, m.drainEvents()
}
