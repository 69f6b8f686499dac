// Package engine implements the scroll interaction core of the carousel: a
// one-dimensional scroll position driven by drag, fling, wheel, and
// programmatic input, resolved to a discrete slide index, with optional
// seamless looping across cloned slides.
//
// The engine is deliberately free of any UI dependency. It is single-threaded
// and frame-driven: the host calls StepFrame once per animation tick while
// motion is in flight. Correctness relies on strict ordering rather than
// locks — a new drag synchronously cancels any pending momentum before taking
// over the position.
package engine

import "time"

// Listener receives engine notifications. Scrolled fires on every position
// mutation; Settled fires once when motion stops at a discrete index.
// Listeners must be comparable (typically pointers): registration is
// set-based and duplicate Subscribe calls are no-ops.
type Listener interface {
	Scrolled(index int)
	Settled(index int)
}

// Options tunes engine behavior. Zero values fall back to defaults.
type Options struct {
	Loop        bool
	MinVelocity float64 // settle threshold, in track units per frame
	DragDecel   float64 // deceleration factor for drag-release momentum
	WheelDecel  float64 // deceleration factor for wheel momentum
}

// Engine composes the geometry, loop remapping, drag session, and the two
// momentum integrators, and owns the canonical scroll position. All mutation
// goes through its methods; external code never writes the position directly.
type Engine struct {
	params  Params
	looping bool

	position float64

	drag          DragSession
	dragMomentum  *Momentum
	wheelMomentum *Momentum

	// Insertion-ordered so notification delivery is deterministic.
	listeners []Listener
}

// New creates an engine with no geometry. Call Reconfigure before use;
// until then every index resolves to 0 and scrolls are no-ops.
func New(opts Options) *Engine {
	dragDecel := opts.DragDecel
	if dragDecel == 0 {
		dragDecel = DefaultDragDecel
	}
	wheelDecel := opts.WheelDecel
	if wheelDecel == 0 {
		wheelDecel = DefaultWheelDecel
	}
	return &Engine{
		looping:       opts.Loop,
		dragMomentum:  NewMomentum(dragDecel, opts.MinVelocity),
		wheelMomentum: NewMomentum(wheelDecel, opts.MinVelocity),
	}
}

// Reconfigure replaces the track geometry, normally in response to a resize.
// The position is left untouched, so the slide under view may shift by up to
// one slide width when the pitch changes. Invalid geometry is rejected and
// the prior params stay in effect.
func (e *Engine) Reconfigure(params Params, looping bool) error {
	if params.SlideWidth <= 0 || params.OriginalCount < 0 {
		return ErrInvalidGeometry
	}
	// CloneCount is derived state; clamp rather than trust the caller.
	if looping && params.OriginalCount > 0 {
		params.CloneCount = params.OriginalCount
	} else {
		params.CloneCount = 0
	}
	e.params = params
	e.looping = looping
	return nil
}

// Params returns the current track geometry.
func (e *Engine) Params() Params { return e.params }

// Looping reports whether seamless looping is enabled.
func (e *Engine) Looping() bool { return e.looping }

// Position returns the canonical scroll position.
func (e *Engine) Position() float64 { return e.position }

// CurrentIndex resolves the position to a slide index.
func (e *Engine) CurrentIndex() int {
	return IndexFromPosition(e.position, e.params, e.looping)
}

// Dragging reports whether a pointer drag is in progress.
func (e *Engine) Dragging() bool { return e.drag.Dragging() }

// Moving reports whether any momentum flight is in progress.
func (e *Engine) Moving() bool {
	return e.dragMomentum.Active() || e.wheelMomentum.Active()
}

// Subscribe registers a listener. Re-registering the same listener is a
// no-op; delivery order follows first registration.
func (e *Engine) Subscribe(l Listener) {
	if l == nil {
		return
	}
	for _, existing := range e.listeners {
		if existing == l {
			return
		}
	}
	e.listeners = append(e.listeners, l)
}

// Unsubscribe removes a listener. Unknown listeners are ignored.
func (e *Engine) Unsubscribe(l Listener) {
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *Engine) notifyScrolled(index int) {
	for _, l := range e.listeners {
		l.Scrolled(index)
	}
}

func (e *Engine) notifySettled(index int) {
	for _, l := range e.listeners {
		l.Settled(index)
	}
}

// ScrollTo jumps to the given slide. An out-of-range index is silently
// ignored, matching the original widget behavior. The smooth flag is a hint
// for the presenting layer; the engine itself snaps to the target.
func (e *Engine) ScrollTo(index int, smooth bool) {
	target, err := PositionFromIndex(index, e.params, e.looping)
	if err != nil {
		return
	}
	e.cancelMotion()
	e.position = Remap(target, e.params)
	e.notifyScrolled(index)
	e.notifySettled(index)
}

// ScrollNext advances one slide, wrapping past the end.
func (e *Engine) ScrollNext() {
	if e.params.OriginalCount == 0 {
		return
	}
	n := e.params.OriginalCount
	e.ScrollTo((e.CurrentIndex()+1+n)%n, true)
}

// ScrollPrev goes back one slide, wrapping past the start.
func (e *Engine) ScrollPrev() {
	if e.params.OriginalCount == 0 {
		return
	}
	n := e.params.OriginalCount
	e.ScrollTo((e.CurrentIndex()-1+n)%n, true)
}

// DragStart begins a pointer drag at x. Any in-flight momentum is cancelled
// first, without a settle notification.
func (e *Engine) DragStart(x float64, now time.Time) {
	e.cancelMotion()
	e.drag.Start(x, now, e.position)
}

// DragMove feeds a pointer sample into the active drag and emits a scroll
// notification at the freshly resolved index. No-op outside a drag.
func (e *Engine) DragMove(x float64, now time.Time) {
	pos, ok := e.drag.Move(x, now)
	if !ok {
		return
	}
	e.position = Remap(pos, e.params)
	e.notifyScrolled(e.CurrentIndex())
}

// DragEnd finishes the drag. When the parting velocity clears the settle
// threshold the drag momentum takes over and DragEnd returns true: the host
// should begin ticking StepFrame. Otherwise the engine settles immediately.
func (e *Engine) DragEnd(now time.Time) bool {
	velocity, ok := e.drag.End(now)
	if !ok {
		return false
	}
	if e.dragMomentum.Start(velocity) {
		return true
	}
	e.notifySettled(e.CurrentIndex())
	return false
}

// Wheel applies a wheel-born delta through the same remap/notify pipeline as
// drag, with the wheel's own deceleration. Returns true when wheel momentum
// engaged and the host should begin ticking StepFrame. Ignored mid-drag.
func (e *Engine) Wheel(deltaX float64, now time.Time) bool {
	if e.drag.Dragging() {
		return false
	}
	e.dragMomentum.Cancel()
	e.position = Remap(e.position+deltaX, e.params)
	e.notifyScrolled(e.CurrentIndex())
	if e.wheelMomentum.Start(deltaX) {
		return true
	}
	e.notifySettled(e.CurrentIndex())
	return false
}

// StepFrame advances whichever momentum flight is active by one frame and
// returns true while more frames are needed. The final frame emits a settle
// notification.
func (e *Engine) StepFrame() bool {
	m := e.dragMomentum
	if !m.Active() {
		m = e.wheelMomentum
	}
	delta, settled, active := m.Step()
	if !active {
		return false
	}
	e.position = Remap(e.position+delta, e.params)
	index := e.CurrentIndex()
	e.notifyScrolled(index)
	if settled {
		e.notifySettled(index)
		return false
	}
	return true
}

// cancelMotion drops any drag or momentum in flight without settling.
func (e *Engine) cancelMotion() {
	e.drag.Cancel()
	e.dragMomentum.Cancel()
	e.wheelMomentum.Cancel()
}

// Destroy cancels all motion and detaches every listener.
func (e *Engine) Destroy() {
	e.cancelMotion()
	e.listeners = nil
}
