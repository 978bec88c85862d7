package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Rectangle is an axis-aligned rectangle with a strictly positive
// width and height, located in the plane by its anchor. The anchor is
// the corner with the smallest coordinates; the rectangle covers
// [X, X+Width) × [Y, Y+Height).
//
// The zero value is not a valid Rectangle. Use NewRectangle or
// NewRectangleAt to create one.
type Rectangle struct {
	width, height uint32
	pos           Position
}

// NewRectangle returns a width×height rectangle anchored at the
// origin. See NewRectangleAt.
func NewRectangle[T constraints.Integer](width, height T) (Rectangle, error) {
	return NewRectangleAt(width, height, Origin())
}

// NewRectangleAt returns a width×height rectangle anchored at anchor.
// If either dimension is not positive or does not fit in a uint32, the
// returned error wraps ErrInvalidDimensions.
func NewRectangleAt[T constraints.Integer](width, height T, anchor Position) (Rectangle, error) {
	w, err := dimension(width)
	if err != nil {
		return Rectangle{}, fmt.Errorf("width %d: %w", width, err)
	}
	h, err := dimension(height)
	if err != nil {
		return Rectangle{}, fmt.Errorf("height %d: %w", height, err)
	}

	return Rectangle{width: w, height: h, pos: anchor}, nil
}

// MustRectangle is like NewRectangleAt but panics if the dimensions are
// invalid.
func MustRectangle[T constraints.Integer](width, height T, anchor Position) Rectangle {
	r, err := NewRectangleAt(width, height, anchor)
	if err != nil {
		panic(err)
	}
	return r
}

func dimension[T constraints.Integer](v T) (uint32, error) {
	if v <= 0 {
		return 0, ErrInvalidDimensions
	}
	if uint64(v) > math.MaxUint32 {
		return 0, ErrInvalidDimensions
	}
	return uint32(v), nil
}

// IsValid reports whether r has a positive width and height. It is
// false only for the zero value.
func (r Rectangle) IsValid() bool {
	return r.width > 0 && r.height > 0
}

func (r Rectangle) Width() uint32 { return r.width }

func (r Rectangle) Height() uint32 { return r.height }

// Pos returns the anchor of r.
func (r Rectangle) Pos() Position { return r.pos }

// Area returns width×height. The product is computed in 64 bits and
// so can not overflow.
func (r Rectangle) Area() uint64 {
	return uint64(r.width) * uint64(r.height)
}

// Min returns the anchor of r. It is the same as Pos.
func (r Rectangle) Min() Position { return r.pos }

// Max returns the exclusive corner opposite the anchor. The result
// wraps if it does not fit in an int32.
func (r Rectangle) Max() Position {
	return Position{
		X: r.pos.X + int32(r.width),
		Y: r.pos.Y + int32(r.height),
	}
}

// Center returns the point at the middle of r, rounded towards the
// anchor.
func (r Rectangle) Center() Position {
	return Position{
		X: int32(int64(r.pos.X) + int64(r.width/2)),
		Y: int32(int64(r.pos.Y) + int64(r.height/2)),
	}
}

// CenterAt returns r moved so that its Center is p.
func (r Rectangle) CenterAt(p Position) Rectangle {
	r.pos = Position{
		X: int32(int64(p.X) - int64(r.width/2)),
		Y: int32(int64(p.Y) - int64(r.height/2)),
	}
	return r
}

func (r Rectangle) right() int64 {
	return int64(r.pos.X) + int64(r.width)
}

func (r Rectangle) bottom() int64 {
	return int64(r.pos.Y) + int64(r.height)
}

// Translate returns r with its anchor shifted by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{width: r.width, height: r.height, pos: r.pos.Translate(v)}
}

// Move shifts the anchor of r by v in place.
func (r *Rectangle) Move(v Vector) {
	*r = r.Translate(v)
}

// Reflect returns r mirrored across the line x = y: its width and
// height are swapped and its anchor is reflected.
func (r Rectangle) Reflect() Rectangle {
	return Rectangle{width: r.height, height: r.width, pos: r.pos.Reflect()}
}

// Abuts returns the edges of r that other shares exactly. An edge is
// shared when other lies directly against it with no gap or overlap
// and spans the whole edge, for example EdgeBottom means that other
// has the same x and width as r and starts where r ends vertically.
func (r Rectangle) Abuts(other Rectangle) Edges {
	var edges Edges
	if r.width == other.width && r.pos.X == other.pos.X {
		if r.bottom() == int64(other.pos.Y) {
			edges |= EdgeBottom
		}
		if other.bottom() == int64(r.pos.Y) {
			edges |= EdgeTop
		}
	}
	if r.height == other.height && r.pos.Y == other.pos.Y {
		if r.right() == int64(other.pos.X) {
			edges |= EdgeRight
		}
		if other.right() == int64(r.pos.X) {
			edges |= EdgeLeft
		}
	}
	return edges
}

func (r Rectangle) Eq(other Rectangle) bool {
	return r == other
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d@%v", r.width, r.height, r.pos)
}
