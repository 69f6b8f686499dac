package engine

import (
	"testing"
	"time"
)

type recorder struct {
	scrolled []int
	settled  []int
}

func (r *recorder) Scrolled(index int) { r.scrolled = append(r.scrolled, index) }
func (r *recorder) Settled(index int)  { r.settled = append(r.settled, index) }

func loopingEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(Options{Loop: true})
	err := e.Reconfigure(Params{SlideWidth: 100, Gap: 20, OriginalCount: 5}, true)
	if err != nil {
		t.Fatalf("unexpected reconfigure error: %v", err)
	}
	return e
}

func TestReconfigureClampsClones(t *testing.T) {
	e := New(Options{Loop: true})
	// A mismatched CloneCount must be clamped, not trusted.
	if err := e.Reconfigure(Params{SlideWidth: 100, Gap: 20, OriginalCount: 5, CloneCount: 3}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Params().CloneCount != 5 {
		t.Fatalf("expected CloneCount clamped to 5, got %d", e.Params().CloneCount)
	}

	if err := e.Reconfigure(Params{SlideWidth: 100, Gap: 20, OriginalCount: 5, CloneCount: 5}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Params().CloneCount != 0 {
		t.Fatalf("expected CloneCount 0 without looping, got %d", e.Params().CloneCount)
	}
}

func TestReconfigureRejectsInvalidGeometry(t *testing.T) {
	e := loopingEngine(t)
	prior := e.Params()

	if err := e.Reconfigure(Params{SlideWidth: 0, OriginalCount: 5}, true); err == nil {
		t.Fatalf("expected error for zero slide width")
	}
	if e.Params() != prior {
		t.Fatalf("expected prior geometry kept after invalid reconfigure")
	}
}

func TestScrollToAndCurrentIndex(t *testing.T) {
	e := loopingEngine(t)
	rec := &recorder{}
	e.Subscribe(rec)

	e.ScrollTo(3, false)
	if e.CurrentIndex() != 3 {
		t.Fatalf("expected index 3, got %d", e.CurrentIndex())
	}
	if e.Position() != float64(5+3)*120 {
		t.Fatalf("expected position 960, got %v", e.Position())
	}
	if len(rec.scrolled) != 1 || rec.scrolled[0] != 3 {
		t.Fatalf("expected one scroll notification for 3, got %v", rec.scrolled)
	}
	if len(rec.settled) != 1 || rec.settled[0] != 3 {
		t.Fatalf("expected one settle notification for 3, got %v", rec.settled)
	}
}

func TestScrollToOutOfRangeIsNoop(t *testing.T) {
	e := New(Options{})
	if err := e.Reconfigure(Params{SlideWidth: 320, Gap: 20, OriginalCount: 3}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := &recorder{}
	e.Subscribe(rec)

	e.ScrollTo(1, false)
	before := e.Position()

	e.ScrollTo(5, false)
	if e.Position() != before {
		t.Fatalf("expected out-of-range scroll to be ignored, position moved to %v", e.Position())
	}
	if len(rec.scrolled) != 1 {
		t.Fatalf("expected no notifications from ignored scroll, got %v", rec.scrolled)
	}
}

func TestScrollNextPrevWrap(t *testing.T) {
	e := loopingEngine(t)

	e.ScrollTo(4, false)
	e.ScrollNext()
	if e.CurrentIndex() != 0 {
		t.Fatalf("expected wrap to 0, got %d", e.CurrentIndex())
	}
	e.ScrollPrev()
	if e.CurrentIndex() != 4 {
		t.Fatalf("expected wrap back to 4, got %d", e.CurrentIndex())
	}
}

func TestDragPipeline(t *testing.T) {
	e := loopingEngine(t)
	rec := &recorder{}
	e.Subscribe(rec)
	t0 := time.Unix(0, 0)

	e.ScrollTo(0, false) // position 600
	rec.scrolled = nil
	rec.settled = nil

	e.DragStart(100, t0)
	e.DragMove(80, t0.Add(16*time.Millisecond))
	if e.Position() != 620 {
		t.Fatalf("expected position 620 mid-drag, got %v", e.Position())
	}
	if len(rec.scrolled) != 1 {
		t.Fatalf("expected a scroll notification per move, got %v", rec.scrolled)
	}

	// Velocity 20 clears the default threshold: momentum engages.
	if !e.DragEnd(t0.Add(20 * time.Millisecond)) {
		t.Fatalf("expected momentum handoff on release")
	}
	steps := 0
	for e.StepFrame() {
		steps++
		if steps > 1000 {
			t.Fatalf("momentum did not settle")
		}
	}
	if len(rec.settled) != 1 {
		t.Fatalf("expected exactly one settle, got %v", rec.settled)
	}
	if e.Moving() {
		t.Fatalf("expected no motion after settle")
	}
}

func TestSlowReleaseSettlesImmediately(t *testing.T) {
	e := loopingEngine(t)
	rec := &recorder{}
	e.Subscribe(rec)
	t0 := time.Unix(0, 0)

	e.DragStart(100, t0)
	// 1 cell over 100ms: velocity 0.16, below the 0.5 threshold.
	e.DragMove(99, t0.Add(100*time.Millisecond))
	if e.DragEnd(t0.Add(110 * time.Millisecond)) {
		t.Fatalf("expected no momentum for a slow release")
	}
	if len(rec.settled) != 1 {
		t.Fatalf("expected an immediate settle, got %v", rec.settled)
	}
}

func TestDragStartCancelsMomentum(t *testing.T) {
	e := loopingEngine(t)
	rec := &recorder{}
	e.Subscribe(rec)
	t0 := time.Unix(0, 0)

	e.DragStart(100, t0)
	e.DragMove(60, t0.Add(16*time.Millisecond))
	if !e.DragEnd(t0.Add(20 * time.Millisecond)) {
		t.Fatalf("expected momentum handoff")
	}
	if !e.StepFrame() {
		t.Fatalf("expected momentum to keep flying")
	}

	// A new drag preempts the flight; the pending frame must be dead.
	e.DragStart(200, t0.Add(40*time.Millisecond))
	pos := e.Position()
	if e.StepFrame() {
		t.Fatalf("expected stale frame to be dropped")
	}
	if e.Position() != pos {
		t.Fatalf("stale momentum moved the position: %v -> %v", pos, e.Position())
	}

	e.DragMove(190, t0.Add(56*time.Millisecond))
	want := pos + 10
	if e.Position() != want {
		t.Fatalf("expected exactly the dragged position %v, got %v", want, e.Position())
	}
	// The preempted flight must not have produced a settle.
	if len(rec.settled) != 0 {
		t.Fatalf("expected no settle from the cancelled flight, got %v", rec.settled)
	}
}

func TestWheelPipeline(t *testing.T) {
	e := loopingEngine(t)
	rec := &recorder{}
	e.Subscribe(rec)
	t0 := time.Unix(0, 0)

	e.ScrollTo(0, false)
	rec.scrolled = nil
	rec.settled = nil

	if !e.Wheel(30, t0) {
		t.Fatalf("expected wheel momentum to engage")
	}
	if e.Position() != 630 {
		t.Fatalf("expected immediate wheel delta applied, got %v", e.Position())
	}
	for e.StepFrame() {
	}
	if len(rec.settled) != 1 {
		t.Fatalf("expected one settle after wheel momentum, got %v", rec.settled)
	}

	// A tiny tick settles immediately.
	rec.settled = nil
	if e.Wheel(0.1, t0.Add(time.Second)) {
		t.Fatalf("expected no momentum for a tiny wheel tick")
	}
	if len(rec.settled) != 1 {
		t.Fatalf("expected immediate settle, got %v", rec.settled)
	}
}

func TestWheelIgnoredDuringDrag(t *testing.T) {
	e := loopingEngine(t)
	t0 := time.Unix(0, 0)

	e.DragStart(100, t0)
	pos := e.Position()
	if e.Wheel(30, t0.Add(5*time.Millisecond)) {
		t.Fatalf("expected wheel rejected mid-drag")
	}
	if e.Position() != pos {
		t.Fatalf("expected position unchanged, got %v", e.Position())
	}
}

func TestWheelLoopWraps(t *testing.T) {
	e := loopingEngine(t)
	t0 := time.Unix(0, 0)

	e.ScrollTo(0, false) // position 600
	// Scroll backwards past the leading clones; remap keeps the position
	// inside the real window.
	e.Wheel(-50, t0)
	for e.StepFrame() {
	}
	p := e.Params()
	step := p.Pitch()
	lo := float64(p.CloneCount)*step - step
	hi := float64(p.OriginalCount+2*p.CloneCount)*step - float64(p.CloneCount)*step + step
	if e.Position() < lo || e.Position() > hi {
		t.Fatalf("position %v escaped the safe window [%v, %v]", e.Position(), lo, hi)
	}
}

func TestSubscribeDedupeAndOrder(t *testing.T) {
	e := loopingEngine(t)
	a := &recorder{}
	b := &recorder{}
	e.Subscribe(a)
	e.Subscribe(b)
	e.Subscribe(a) // duplicate: no-op

	e.ScrollTo(2, false)
	if len(a.scrolled) != 1 {
		t.Fatalf("expected one delivery to a, got %d", len(a.scrolled))
	}
	if len(b.scrolled) != 1 {
		t.Fatalf("expected one delivery to b, got %d", len(b.scrolled))
	}

	e.Unsubscribe(a)
	e.ScrollTo(1, false)
	if len(a.scrolled) != 1 {
		t.Fatalf("expected no delivery after unsubscribe, got %d", len(a.scrolled))
	}
	if len(b.scrolled) != 2 {
		t.Fatalf("expected b still subscribed, got %d", len(b.scrolled))
	}
}

func TestResizeKeepsPosition(t *testing.T) {
	e := loopingEngine(t)
	e.ScrollTo(2, false)
	pos := e.Position()

	if err := e.Reconfigure(Params{SlideWidth: 80, Gap: 20, OriginalCount: 5}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Position() != pos {
		t.Fatalf("expected position unchanged across resize, got %v", e.Position())
	}
}

func TestEmptyEngineNoops(t *testing.T) {
	e := New(Options{})
	rec := &recorder{}
	e.Subscribe(rec)

	e.ScrollTo(0, false)
	e.ScrollNext()
	e.ScrollPrev()
	if e.CurrentIndex() != 0 || e.Position() != 0 {
		t.Fatalf("expected empty engine to stay at origin")
	}
	if len(rec.scrolled) != 0 {
		t.Fatalf("expected no notifications from an empty engine")
	}
}

func TestDestroyDetachesListeners(t *testing.T) {
	e := loopingEngine(t)
	rec := &recorder{}
	e.Subscribe(rec)
	e.Destroy()
	e.ScrollTo(1, false)
	if len(rec.scrolled) != 0 {
		t.Fatalf("expected no notifications after destroy")
	}
}
