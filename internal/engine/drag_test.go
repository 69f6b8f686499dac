package engine

import (
	"testing"
	"time"
)

func TestDragVelocitySample(t *testing.T) {
	var d DragSession
	t0 := time.Unix(0, 0)

	d.Start(100, t0, 600)
	pos, ok := d.Move(80, t0.Add(16*time.Millisecond))
	if !ok {
		t.Fatalf("expected move to be accepted during drag")
	}
	// Dragging left by 20 moves the track forward by 20.
	if pos != 620 {
		t.Fatalf("expected position 620, got %v", pos)
	}
	// (100-80)/16ms normalized to a 16ms frame.
	if d.Velocity() != 20 {
		t.Fatalf("expected velocity 20, got %v", d.Velocity())
	}

	v, ok := d.End(t0.Add(20 * time.Millisecond))
	if !ok || v != 20 {
		t.Fatalf("expected parting velocity 20, got %v (ok=%v)", v, ok)
	}
	if d.Dragging() {
		t.Fatalf("expected idle after end")
	}
}

func TestDragZeroDtKeepsVelocity(t *testing.T) {
	var d DragSession
	t0 := time.Unix(0, 0)

	d.Start(100, t0, 0)
	d.Move(90, t0.Add(10*time.Millisecond))
	before := d.Velocity()
	// Same timestamp: the sample moves the position but not the velocity.
	pos, ok := d.Move(70, t0.Add(10*time.Millisecond))
	if !ok || pos != 30 {
		t.Fatalf("expected position 30, got %v (ok=%v)", pos, ok)
	}
	if d.Velocity() != before {
		t.Fatalf("expected velocity unchanged on zero dt, got %v", d.Velocity())
	}
}

func TestDragMoveOutsideDrag(t *testing.T) {
	var d DragSession
	if _, ok := d.Move(50, time.Now()); ok {
		t.Fatalf("expected move to be rejected while idle")
	}
	if _, ok := d.End(time.Now()); ok {
		t.Fatalf("expected end to be rejected while idle")
	}
}

func TestDragCancelDiscardsSamples(t *testing.T) {
	var d DragSession
	t0 := time.Unix(0, 0)
	d.Start(100, t0, 0)
	d.Move(50, t0.Add(16*time.Millisecond))
	d.Cancel()
	if d.Dragging() || d.Velocity() != 0 {
		t.Fatalf("expected cancel to reset the session")
	}
}
