package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestNewRectangle(t *testing.T) {
	r, err := geom.NewRectangle(3, 2)
	require.Nil(t, err)
	require.True(t, r.IsValid())
	require.Equal(t, uint32(3), r.Width())
	require.Equal(t, uint32(2), r.Height())
	require.Equal(t, geom.Origin(), r.Pos())
	require.Equal(t, uint64(6), r.Area())

	r, err = geom.NewRectangleAt(int64(4), int64(5), geom.Pt(-1, 7))
	require.Nil(t, err)
	require.Equal(t, geom.Pt(-1, 7), r.Pos())
	require.Equal(t, geom.Pt(-1, 7), r.Min())
	require.Equal(t, geom.Pt(3, 12), r.Max())

	require.False(t, geom.Rectangle{}.IsValid())
}

func TestNewRectangleInvalid(t *testing.T) {
	_, err := geom.NewRectangle(0, 5)
	require.ErrorIs(t, err, geom.ErrInvalidDimensions)

	_, err = geom.NewRectangle(3, -1)
	require.ErrorIs(t, err, geom.ErrInvalidDimensions)

	_, err = geom.NewRectangleAt(uint64(math.MaxUint32)+1, 1, geom.Pt(1, 1))
	require.ErrorIs(t, err, geom.ErrInvalidDimensions)

	_, err = geom.NewRectangle(int64(math.MinInt64), 1)
	require.ErrorIs(t, err, geom.ErrInvalidDimensions)

	require.Panics(t, func() { geom.MustRectangle(0, 5, geom.Origin()) })
	require.Panics(t, func() { geom.MustRectangle(3, -1, geom.Origin()) })
	require.NotPanics(t, func() { geom.MustRectangle(uint32(math.MaxUint32), 1, geom.Origin()) })
}

func TestRectangleArea(t *testing.T) {
	r := geom.MustRectangle(uint32(math.MaxUint32), uint32(math.MaxUint32), geom.Origin())
	require.Equal(t, uint64(math.MaxUint32)*uint64(math.MaxUint32), r.Area())
}

func TestRectangleTranslate(t *testing.T) {
	r := geom.MustRectangle(3, 2, geom.Pt(1, 5))
	for _, v := range []geom.Vector{geom.V(0, 0), geom.V(2, -9), geom.V(-50, 50)} {
		moved := r.Translate(v)
		require.Equal(t, r.Width(), moved.Width())
		require.Equal(t, r.Height(), moved.Height())
		require.Equal(t, r.Pos().Translate(v), moved.Pos())

		inplace := r
		inplace.Move(v)
		require.Equal(t, moved, inplace)
	}
	require.Equal(t, geom.Pt(1, 5), r.Pos())
}

func TestRectangleReflect(t *testing.T) {
	r := geom.MustRectangle(3, 2, geom.Pt(1, 5))
	require.Equal(t, geom.MustRectangle(2, 3, geom.Pt(5, 1)), r.Reflect())
	require.Equal(t, r, r.Reflect().Reflect())
	require.Equal(t, r.Area(), r.Reflect().Area())
}

func TestRectangleEq(t *testing.T) {
	r := geom.MustRectangle(3, 2, geom.Pt(1, 5))
	require.True(t, r.Eq(geom.MustRectangle(3, 2, geom.Pt(1, 5))))
	require.False(t, r.Eq(geom.MustRectangle(3, 2, geom.Pt(1, 6))))
	require.False(t, r.Eq(geom.MustRectangle(2, 3, geom.Pt(1, 5))))
	require.Equal(t, "3x2@(1,5)", r.String())
}

func TestRectangleAbuts(t *testing.T) {
	a := geom.MustRectangle(3, 2, geom.Pt(0, 0))

	tests := []struct {
		name  string
		other geom.Rectangle
		edges geom.Edges
	}{
		{"Below", geom.MustRectangle(3, 4, geom.Pt(0, 2)), geom.EdgeBottom},
		{"Above", geom.MustRectangle(3, 1, geom.Pt(0, -1)), geom.EdgeTop},
		{"Right", geom.MustRectangle(5, 2, geom.Pt(3, 0)), geom.EdgeRight},
		{"Left", geom.MustRectangle(1, 2, geom.Pt(-1, 0)), geom.EdgeLeft},
		{"Gap", geom.MustRectangle(3, 2, geom.Pt(0, 3)), geom.EdgeNone},
		{"Overlap", geom.MustRectangle(3, 2, geom.Pt(0, 1)), geom.EdgeNone},
		{"NarrowerBelow", geom.MustRectangle(2, 2, geom.Pt(0, 2)), geom.EdgeNone},
		{"ShiftedRight", geom.MustRectangle(2, 2, geom.Pt(3, 1)), geom.EdgeNone},
		{"Far", geom.MustRectangle(2, 2, geom.Pt(5, 5)), geom.EdgeNone},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.edges, a.Abuts(test.other))
		})
	}
}

func TestRectangleAbutsNoWrap(t *testing.T) {
	tall := geom.MustRectangle(1, uint32(math.MaxUint32), geom.Pt(0, 0))
	above := geom.MustRectangle(1, 1, geom.Pt(0, -1))
	require.Equal(t, geom.EdgeTop, tall.Abuts(above))
}
