package engine

import "time"

// frameMillis normalizes drag velocity to a nominal 60Hz frame, so the
// deceleration factors are per-tick rather than per-millisecond. This matches
// the reference feel but means velocity drifts slightly on displays ticking
// at other rates; see DESIGN.md.
const frameMillis = 16.0

type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// DragSession translates raw pointer samples into position updates and a
// parting velocity. It holds state only while a drag is in progress.
type DragSession struct {
	state    dragState
	anchor   float64 // scroll position when the drag started
	startX   float64
	lastX    float64
	lastTime time.Time
	velocity float64
}

// Start begins a drag at pointer position x. The caller must cancel any
// in-flight momentum first so two writers never race on the same frame.
func (d *DragSession) Start(x float64, now time.Time, position float64) {
	d.state = dragActive
	d.anchor = position
	d.startX = x
	d.lastX = x
	d.lastTime = now
	d.velocity = 0
}

// Move records a pointer sample and returns the new track position. Returns
// ok=false when no drag is in progress.
func (d *DragSession) Move(x float64, now time.Time) (position float64, ok bool) {
	if d.state != dragActive {
		return 0, false
	}
	dt := float64(now.Sub(d.lastTime)) / float64(time.Millisecond)
	if dt > 0 {
		d.velocity = (d.lastX - x) / dt * frameMillis
	}
	d.lastX = x
	d.lastTime = now
	return d.anchor + (d.startX - x), true
}

// End finishes the drag and returns the last sampled velocity. Returns
// ok=false when no drag was in progress.
func (d *DragSession) End(now time.Time) (velocity float64, ok bool) {
	if d.state != dragActive {
		return 0, false
	}
	d.state = dragIdle
	return d.velocity, true
}

// Cancel aborts the drag, discarding its samples.
func (d *DragSession) Cancel() {
	d.state = dragIdle
	d.velocity = 0
}

// Dragging reports whether a drag is in progress.
func (d *DragSession) Dragging() bool { return d.state == dragActive }

// Velocity returns the most recent velocity sample.
func (d *DragSession) Velocity() float64 { return d.velocity }
