package engine

import "math"

// Params describes the track geometry the engine scrolls over. CloneCount is
// 0 when looping is disabled, and equal to OriginalCount when enabled: one
// full copy of the real sequence is padded on each side of the track so the
// wraparound jump in Remap lands on pixel-identical content.
type Params struct {
	SlideWidth    float64
	Gap           float64
	OriginalCount int
	CloneCount    int
}

// Pitch is the step size of one index: slide width plus inter-slide gap.
// Always derived, never stored, so it can't go stale across resizes.
func (p Params) Pitch() float64 {
	return p.SlideWidth + p.Gap
}

// SlideWidthFor computes the width of a single slide from the container
// width, the gap, and how many slides should be visible at once.
func SlideWidthFor(containerWidth, gap float64, slidesPerView int) (float64, error) {
	if slidesPerView <= 0 {
		return 0, ErrInvalidGeometry
	}
	w := (containerWidth - gap*float64(slidesPerView-1)) / float64(slidesPerView)
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, ErrInvalidGeometry
	}
	return w, nil
}

// IndexFromPosition resolves a continuous track position to a discrete slide
// index in [0, OriginalCount). When looping, the clone padding is subtracted
// and the result wraps; otherwise it clamps to the valid range.
func IndexFromPosition(position float64, p Params, looping bool) int {
	pitch := p.Pitch()
	if pitch <= 0 || p.OriginalCount <= 0 {
		return 0
	}
	raw := int(math.Round(position / pitch))
	n := p.OriginalCount
	if looping {
		return ((raw-p.CloneCount)%n + n) % n
	}
	if raw < 0 {
		return 0
	}
	if raw >= n {
		return n - 1
	}
	return raw
}

// PositionFromIndex converts a slide index to its track position. When
// looping, index 0 sits one clone block in from the left edge of the track.
func PositionFromIndex(index int, p Params, looping bool) (float64, error) {
	if index < 0 || index >= p.OriginalCount {
		return 0, ErrIndexOutOfRange
	}
	if looping {
		return float64(p.CloneCount+index) * p.Pitch(), nil
	}
	return float64(index) * p.Pitch(), nil
}
