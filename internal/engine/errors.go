package engine

import "errors"

var (
	// ErrInvalidGeometry is returned when a layout would produce a
	// non-positive slide width. The engine keeps its prior geometry.
	ErrInvalidGeometry = errors.New("invalid geometry: non-positive slide width")

	// ErrIndexOutOfRange is returned by PositionFromIndex when the index
	// falls outside [0, OriginalCount).
	ErrIndexOutOfRange = errors.New("slide index out of range")
)
