package engine

import "math"

// Default tuning for the two momentum instances. Drag releases decay faster
// than wheel ticks, matching the feel of the two input devices.
const (
	DefaultDragDecel   = 0.92
	DefaultWheelDecel  = 0.95
	DefaultMinVelocity = 0.5
)

// Momentum is the velocity-decay state machine behind a fling. Each frame the
// velocity is multiplied by the deceleration factor and the result is the
// position delta for that frame; motion settles once the velocity drops below
// the minimum threshold.
//
// Cancellation is immediate: after Cancel, Step reports no motion, so a
// preempted flight can never emit a spurious settle.
type Momentum struct {
	velocity    float64
	decel       float64
	minVelocity float64
	active      bool
}

// NewMomentum returns an integrator with the given deceleration factor and
// minimum velocity threshold. Out-of-range values fall back to defaults.
func NewMomentum(decel, minVelocity float64) *Momentum {
	if decel <= 0 || decel >= 1 {
		decel = DefaultDragDecel
	}
	if minVelocity <= 0 {
		minVelocity = DefaultMinVelocity
	}
	return &Momentum{decel: decel, minVelocity: minVelocity}
}

// Start begins a flight with the given initial velocity. Returns false when
// the velocity is already below the settle threshold, in which case the
// caller should report the settle itself.
func (m *Momentum) Start(velocity float64) bool {
	if math.Abs(velocity) < m.minVelocity {
		m.active = false
		return false
	}
	m.velocity = velocity
	m.active = true
	return true
}

// Step advances the flight by one frame. The returned delta is the distance
// the position should move this frame; settled is true on the final frame.
// An inactive integrator reports (0, false, false).
func (m *Momentum) Step() (delta float64, settled, active bool) {
	if !m.active {
		return 0, false, false
	}
	m.velocity *= m.decel
	delta = m.velocity
	if math.Abs(m.velocity) < m.minVelocity {
		m.active = false
		return delta, true, true
	}
	return delta, false, true
}

// Cancel drops the flight without settling.
func (m *Momentum) Cancel() {
	m.active = false
	m.velocity = 0
}

// Active reports whether a flight is in progress.
func (m *Momentum) Active() bool { return m.active }

// Velocity returns the current velocity.
func (m *Momentum) Velocity() float64 { return m.velocity }

// MinVelocity returns the settle threshold.
func (m *Momentum) MinVelocity() float64 { return m.minVelocity }
