package geom

import "fmt"

// Position is a point in the plane. The zero value is the origin.
type Position struct {
	X, Y int32
}

// Pt is shorthand for Position{X: x, Y: y}.
func Pt(x, y int32) Position {
	return Position{X: x, Y: y}
}

// Origin returns the position (0, 0). It is the default anchor of a
// Rectangle.
func Origin() Position {
	return Position{}
}

// Translate returns p shifted by v.
func (p Position) Translate(v Vector) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Move shifts p by v in place.
func (p *Position) Move(v Vector) {
	*p = p.Translate(v)
}

// Reflect returns p with its axes swapped.
func (p Position) Reflect() Position {
	return Position{X: p.Y, Y: p.X}
}

// ToVector returns the displacement from the origin to p.
func (p Position) ToVector() Vector {
	return Vector(p)
}

func (p Position) Eq(q Position) bool {
	return p == q
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
