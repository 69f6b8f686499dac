package engine

// Remap keeps the stored position inside the real window of the track. When
// the position strays into the clone padding on either side it jumps by
// exactly one real-window width, which is invisible on screen because the
// clone content matches the real content it stands in for.
//
// The two trigger bands are disjoint and the jump distance equals one full
// real window, so the result always lands outside both bands: re-applying
// Remap to an already-remapped position is a no-op.
func Remap(position float64, p Params) float64 {
	if p.CloneCount <= 0 || p.OriginalCount <= 0 {
		return position
	}
	step := p.Pitch()
	if step <= 0 {
		return position
	}
	cloneWidth := float64(p.CloneCount) * step
	totalWidth := float64(p.OriginalCount+2*p.CloneCount) * step
	window := float64(p.OriginalCount) * step

	// A position can stray more than one window out (a violent fling), so
	// jump repeatedly. Each jump moves one window inward and the bands are
	// disjoint, so this terminates without crossing to the far band.
	for position < cloneWidth-step {
		position += window
	}
	for position > totalWidth-cloneWidth+step {
		position -= window
	}
	return position
}
