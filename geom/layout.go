package geom

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally. w must be less than the width of r.
func hsplit(r Rectangle, w uint32) (left, right Rectangle) {
	left = Rectangle{width: w, height: r.height, pos: r.pos}
	right = Rectangle{width: r.width - w, height: r.height, pos: r.pos.Translate(V(int32(w), 0))}
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically.
// h must be less than the height of r.
func vsplit(r Rectangle, h uint32) (top, bottom Rectangle) {
	top = Rectangle{width: r.width, height: h, pos: r.pos}
	bottom = Rectangle{width: r.width, height: r.height - h, pos: r.pos.Translate(V(0, int32(h)))}
	return top, bottom
}

// tileCount clamps n so that each of n tiles along an extent gets at
// least one unit.
func tileCount(n int, extent uint32) int {
	if n <= 0 {
		return 0
	}
	if uint64(n) > uint64(extent) {
		return int(extent)
	}
	return n
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rectangle, 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
//
// If the height of r does not divide evenly, the last tile absorbs the
// remainder. If there are more tiles than r is high, the extra
// elements of tiles are left untouched.
func TileEvenVertically(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		n := tileCount(numtiles, r.height)
		if n == 0 {
			return
		}

		size := r.height / uint32(n)
		c := r
		for range n - 1 {
			var top Rectangle
			top, c = vsplit(c, size)
			if !yield(top) {
				return
			}
		}

		yield(c)
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rectangle, 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
//
// Remainders and surplus tiles are handled as in [TileEvenVertically].
func TileEvenHorizontally(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		n := tileCount(numtiles, r.width)
		if n == 0 {
			return
		}

		size := r.width / uint32(n)
		c := r
		for range n - 1 {
			var left Rectangle
			left, c = hsplit(c, size)
			if !yield(left) {
				return
			}
		}

		yield(c)
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack(first Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		shift := V(0, int32(first.height))
		for {
			if !yield(first) {
				return
			}
			first = first.Translate(shift)
		}
	}
}

// HorizontalStack is like [VerticalStack] but shifts the copies to the
// right by the width of first.
func HorizontalStack(first Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		shift := V(int32(first.width), 0)
		for {
			if !yield(first) {
				return
			}
			first = first.Translate(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rs
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
// Heights are kept.
func ArrangeVerticalStack(rs *Rectangles) {
	if rs.Len() <= 1 {
		return
	}
	rects := slices.Clone(rs.rects)

	prev := rects[0]
	for _, rect := range rects {
		prev.width = max(prev.width, rect.width)
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rectangle{
			width:  prev.width,
			height: rects[i].height,
			pos:    prev.pos.Translate(V(0, int32(prev.height))),
		}
		prev = rects[i]
	}
	rs.rects = rects
}

// ArrangeHorizontalStack is like [ArrangeVerticalStack] but arranges
// the rectangles to the right of the first, equalizing their heights.
func ArrangeHorizontalStack(rs *Rectangles) {
	if rs.Len() <= 1 {
		return
	}
	rects := slices.Clone(rs.rects)

	prev := rects[0]
	for _, rect := range rects {
		prev.height = max(prev.height, rect.height)
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rectangle{
			width:  rects[i].width,
			height: prev.height,
			pos:    prev.pos.Translate(V(int32(prev.width), 0)),
		}
		prev = rects[i]
	}
	rs.rects = rects
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Along an axis with no
// edge specified, inner is centered in outer.
func Align(outer, inner Rectangle, edges Edges) Rectangle {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.pos.Y = outer.pos.Y
		if edges&EdgeBottom != 0 {
			inner.height = outer.height
		}
	case edges&EdgeBottom != 0:
		inner.pos.Y = int32(outer.bottom() - int64(inner.height))
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.pos.X = outer.pos.X
		if edges&EdgeRight != 0 {
			inner.width = outer.width
		}
	case edges&EdgeRight != 0:
		inner.pos.X = int32(outer.right() - int64(inner.width))
	}

	return inner
}

func insertTilesFromSeq(tiles []Rectangle, s iter.Seq[Rectangle]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
