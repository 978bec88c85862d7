package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	v := geom.V(1, 2)
	require.Equal(t, geom.V(4, -2), v.Add(geom.V(3, -4)))
	require.Equal(t, geom.V(2, 1), v.Reflect())
	require.Equal(t, v, v.Reflect().Reflect())
	require.Equal(t, geom.V(-1, -2), v.Neg())
	require.Equal(t, geom.Pt(1, 2), v.ToPosition())
	require.True(t, v.Eq(geom.V(1, 2)))
	require.False(t, v.Eq(geom.V(2, 1)))

	v.Move(geom.V(10, 10))
	require.Equal(t, geom.V(11, 12), v)
}

func TestPosition(t *testing.T) {
	require.Equal(t, geom.Position{}, geom.Origin())
	require.Equal(t, geom.Pt(0, 0), geom.Origin())

	tests := []struct {
		p geom.Position
		v geom.Vector
	}{
		{geom.Pt(0, 0), geom.V(0, 0)},
		{geom.Pt(3, -7), geom.V(5, 5)},
		{geom.Pt(-100, 42), geom.V(-1, 9000)},
		{geom.Pt(math.MaxInt32, math.MinInt32), geom.V(1, -1)},
	}
	for _, test := range tests {
		require.Equal(t, test.p, test.p.Translate(test.v).Translate(test.v.Neg()), "%v + %v", test.p, test.v)
		require.Equal(t, test.p, test.p.Reflect().Reflect())

		p := test.p
		p.Move(test.v)
		require.Equal(t, test.p.Translate(test.v), p)
	}

	p := geom.Pt(3, 4)
	require.Equal(t, geom.Pt(4, 3), p.Reflect())
	require.Equal(t, geom.V(3, 4), p.ToVector())
	require.Equal(t, p, p.ToVector().ToPosition())
	require.Equal(t, "(3,4)", p.String())
}

func TestEdges(t *testing.T) {
	require.Equal(t, "none", geom.EdgeNone.String())
	require.Equal(t, "bottom", geom.EdgeBottom.String())
	require.Equal(t, "top|right", (geom.EdgeTop | geom.EdgeRight).String())
}

func TestVectorCommuted(t *testing.T) {
	v := geom.V(2, -3)
	p := geom.Pt(7, 7)
	require.Equal(t, p.Translate(v), v.AddPosition(p))

	r := geom.MustRectangle(3, 2, geom.Pt(1, 5))
	require.Equal(t, r.Translate(v), v.AddRectangle(r))
	require.Equal(t, geom.Pt(3, 2), v.AddRectangle(r).Pos())

	rs := geom.NewRectangles(r, r.Translate(geom.V(3, 0)))
	require.True(t, rs.Translate(v).Eq(v.AddRectangles(rs)))
}
