package engine

import (
	"math"
	"testing"
)

func TestMomentumConverges(t *testing.T) {
	for _, decel := range []float64{0.5, 0.92, 0.95, 0.99} {
		m := NewMomentum(decel, 0.5)
		if !m.Start(40) {
			t.Fatalf("expected flight to start at velocity 40 (decel=%v)", decel)
		}
		steps := 0
		for {
			_, settled, active := m.Step()
			if !active {
				t.Fatalf("flight went inactive without settling (decel=%v)", decel)
			}
			steps++
			if settled {
				break
			}
			if steps > 10000 {
				t.Fatalf("flight did not converge (decel=%v)", decel)
			}
		}
		// Geometric decay bound: steps <= log(min/|v0|)/log(decel) + 1.
		bound := int(math.Log(0.5/40)/math.Log(decel)) + 2
		if steps > bound {
			t.Fatalf("convergence took %d steps, bound %d (decel=%v)", steps, bound, decel)
		}
		if m.Active() {
			t.Fatalf("expected inactive after settle")
		}
	}
}

func TestMomentumBelowThreshold(t *testing.T) {
	m := NewMomentum(0.92, 0.5)
	if m.Start(0.4) {
		t.Fatalf("expected Start to reject velocity below threshold")
	}
	if _, _, active := m.Step(); active {
		t.Fatalf("expected Step to report inactive")
	}
}

func TestMomentumNegativeVelocity(t *testing.T) {
	m := NewMomentum(0.92, 0.5)
	if !m.Start(-20) {
		t.Fatalf("expected flight to start at velocity -20")
	}
	delta, _, active := m.Step()
	if !active || delta >= 0 {
		t.Fatalf("expected negative delta, got %v (active=%v)", delta, active)
	}
}

func TestMomentumCancel(t *testing.T) {
	m := NewMomentum(0.92, 0.5)
	m.Start(40)
	m.Cancel()
	if m.Active() {
		t.Fatalf("expected inactive after cancel")
	}
	// A cancelled flight must not produce a settle.
	if _, settled, active := m.Step(); settled || active {
		t.Fatalf("expected no motion after cancel, got settled=%v active=%v", settled, active)
	}
}

func TestMomentumDefaultsClamped(t *testing.T) {
	m := NewMomentum(1.5, -1)
	if m.MinVelocity() != DefaultMinVelocity {
		t.Fatalf("expected default threshold, got %v", m.MinVelocity())
	}
	m.Start(40)
	delta, _, _ := m.Step()
	if delta != 40*DefaultDragDecel {
		t.Fatalf("expected default decel applied, got delta %v", delta)
	}
}
