package geom

import (
	"iter"
	"slices"
	"strings"
)

// Rectangles is an ordered collection of rectangles. The order is
// significant: it is the order in which the merge package folds the
// collection.
//
// A Rectangles owns its elements and behaves as a value: no method
// writes to a backing array that another copy can observe.
type Rectangles struct {
	rects []Rectangle
}

// NewRectangles returns a collection holding a copy of rects.
func NewRectangles(rects ...Rectangle) Rectangles {
	return Rectangles{rects: slices.Clone(rects)}
}

// Collect returns a collection of the rectangles yielded by seq, in
// order.
func Collect(seq iter.Seq[Rectangle]) Rectangles {
	return Rectangles{rects: slices.Collect(seq)}
}

// Len returns the number of rectangles in rs.
func (rs Rectangles) Len() int {
	return len(rs.rects)
}

// At returns the ith rectangle. It panics if i is out of range.
func (rs Rectangles) At(i int) Rectangle {
	return rs.rects[i]
}

// All returns an iterator over the indices and rectangles of rs.
func (rs Rectangles) All() iter.Seq2[int, Rectangle] {
	return slices.All(rs.rects)
}

// Values returns an iterator over the rectangles of rs.
func (rs Rectangles) Values() iter.Seq[Rectangle] {
	return slices.Values(rs.rects)
}

func (rs Rectangles) Clone() Rectangles {
	return Rectangles{rects: slices.Clone(rs.rects)}
}

// Translate returns a new collection with every rectangle of rs
// shifted by v.
func (rs Rectangles) Translate(v Vector) Rectangles {
	rects := make([]Rectangle, 0, len(rs.rects))
	for _, r := range rs.rects {
		rects = append(rects, r.Translate(v))
	}
	return Rectangles{rects: rects}
}

// Move shifts every rectangle of rs by v. It is equivalent to
// assigning the result of Translate to rs.
func (rs *Rectangles) Move(v Vector) {
	*rs = rs.Translate(v)
}

// Reflect returns a new collection with every rectangle of rs
// reflected.
func (rs Rectangles) Reflect() Rectangles {
	rects := make([]Rectangle, 0, len(rs.rects))
	for _, r := range rs.rects {
		rects = append(rects, r.Reflect())
	}
	return Rectangles{rects: rects}
}

// Area returns the sum of the areas of the rectangles in rs.
func (rs Rectangles) Area() (area uint64) {
	for _, r := range rs.rects {
		area += r.Area()
	}
	return area
}

func (rs Rectangles) Eq(other Rectangles) bool {
	return slices.Equal(rs.rects, other.rects)
}

func (rs Rectangles) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, r := range rs.rects {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(r.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
