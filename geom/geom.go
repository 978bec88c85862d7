// Package geom provides integer values for axis-aligned rectangular
// geometry: displacement vectors, positions, rectangles and ordered
// collections of rectangles.
//
// It is patterned after image.Point and image.Rectangle, but a
// Rectangle is described by its anchor and its size rather than by two
// corners, and its size is always strictly positive. All types are
// values. Operations return new values except for the Move methods,
// which update the receiver in place.
package geom

import (
	"errors"
	"strings"
)

// ErrInvalidDimensions is returned when a Rectangle would have a
// width or height that is not strictly positive or that does not fit
// in 32 bits.
var ErrInvalidDimensions = errors.New("invalid rectangle dimensions")

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	names := make([]string, 0, 4)
	if e&EdgeTop != 0 {
		names = append(names, "top")
	}
	if e&EdgeBottom != 0 {
		names = append(names, "bottom")
	}
	if e&EdgeLeft != 0 {
		names = append(names, "left")
	}
	if e&EdgeRight != 0 {
		names = append(names, "right")
	}
	return strings.Join(names, "|")
}
