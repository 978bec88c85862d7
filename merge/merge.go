// Package merge collapses sequences of abutting rectangles into the
// single rectangle that they decompose.
//
// Two rectangles can be merged when they share a complete edge: either
// the second sits directly below the first with the same horizontal
// extent ([Horizontally]), or directly to its right with the same
// vertical extent ([Vertically]). [All] folds a whole
// [geom.Rectangles] from left to right using those two rules.
//
// Malformed input is reported as an error. The Must variants panic
// instead, for callers that treat malformed geometry as a programming
// error.
package merge

import (
	"fmt"

	"deedles.dev/xgeom/geom"
)

// Horizontally merges a with b, which must sit directly below a and
// have the same x coordinate and width. The two are joined along the
// horizontal edge between them and the result is anchored at a.
func Horizontally(a, b geom.Rectangle) (geom.Rectangle, error) {
	if a.Abuts(b)&geom.EdgeBottom == 0 {
		return geom.Rectangle{}, fmt.Errorf("%v is not directly below %v: %w", b, a, ErrNotAdjacent)
	}
	return horizontally(a, b)
}

func horizontally(a, b geom.Rectangle) (geom.Rectangle, error) {
	height := uint64(a.Height()) + uint64(b.Height())
	r, err := geom.NewRectangleAt(uint64(a.Width()), height, a.Pos())
	if err != nil {
		return geom.Rectangle{}, fmt.Errorf("merge %v below %v: %w", b, a, err)
	}
	return r, nil
}

// Vertically merges a with b, which must sit directly to the right of
// a and have the same y coordinate and height. The two are joined
// along the vertical edge between them and the result is anchored at
// a.
func Vertically(a, b geom.Rectangle) (geom.Rectangle, error) {
	if a.Abuts(b)&geom.EdgeRight == 0 {
		return geom.Rectangle{}, fmt.Errorf("%v is not directly right of %v: %w", b, a, ErrNotAdjacent)
	}
	return vertically(a, b)
}

func vertically(a, b geom.Rectangle) (geom.Rectangle, error) {
	width := uint64(a.Width()) + uint64(b.Width())
	r, err := geom.NewRectangleAt(width, uint64(a.Height()), a.Pos())
	if err != nil {
		return geom.Rectangle{}, fmt.Errorf("merge %v right of %v: %w", b, a, err)
	}
	return r, nil
}

// All merges every rectangle of rects into one using the default
// Merger. See [Merger.All].
func All(rects geom.Rectangles) (geom.Rectangle, error) {
	return defaultMerger.All(rects)
}

// MustHorizontally is like Horizontally but panics on error.
func MustHorizontally(a, b geom.Rectangle) geom.Rectangle {
	return must(Horizontally(a, b))
}

// MustVertically is like Vertically but panics on error.
func MustVertically(a, b geom.Rectangle) geom.Rectangle {
	return must(Vertically(a, b))
}

// MustAll is like All but panics on error.
func MustAll(rects geom.Rectangles) geom.Rectangle {
	return must(All(rects))
}

func must(r geom.Rectangle, err error) geom.Rectangle {
	if err != nil {
		panic(err)
	}
	return r
}
