package geom

import "fmt"

// Vector is a displacement in the plane. It is consumed by the
// Translate and Move methods of the other types in this package.
type Vector struct {
	X, Y int32
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y int32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Move adds w to v in place.
func (v *Vector) Move(w Vector) {
	*v = v.Add(w)
}

// AddPosition returns p shifted by v. It is the same as p.Translate(v).
func (v Vector) AddPosition(p Position) Position {
	return p.Translate(v)
}

// AddRectangle returns r shifted by v. It is the same as
// r.Translate(v).
func (v Vector) AddRectangle(r Rectangle) Rectangle {
	return r.Translate(v)
}

// AddRectangles returns rs shifted by v. It is the same as
// rs.Translate(v).
func (v Vector) AddRectangles(rs Rectangles) Rectangles {
	return rs.Translate(v)
}

// Neg returns v with both components negated.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Reflect returns v with its axes swapped.
func (v Vector) Reflect() Vector {
	return Vector{X: v.Y, Y: v.X}
}

// ToPosition returns the Position with the same coordinates as v.
func (v Vector) ToPosition() Position {
	return Position(v)
}

func (v Vector) Eq(w Vector) bool {
	return v == w
}

func (v Vector) String() string {
	return fmt.Sprintf("<%d,%d>", v.X, v.Y)
}
