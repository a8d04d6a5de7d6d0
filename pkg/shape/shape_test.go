package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/vector"
)

func TestNewAABBTakesMagnitudes(t *testing.T) {
	b := NewAABB(1, 2, -3, -4)
	assert.Equal(t, float32(3), b.Width)
	assert.Equal(t, float32(4), b.Height)
	assert.Equal(t, vector.New(4, 6), b.Max())
	assert.Equal(t, vector.New(2.5, 4), b.Center())
	assert.Equal(t, float32(12), b.Area())
	assert.Equal(t, float32(14), b.Perimeter())
}

func TestConstructorsRejectNil(t *testing.T) {
	origin := vector.New(0, 0)
	extent := vector.New(1, 1)

	_, err := AABBFrom(nil, &extent)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = AABBFrom(&origin, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	b, err := AABBFrom(&origin, &vector.Vec2{X: -2, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, NewAABB(0, 0, 2, 3), b)

	_, err = CircleFrom(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	c, err := CircleFrom(&origin, -2)
	require.NoError(t, err)
	assert.Equal(t, float32(2), c.Radius)

	_, err = EllipsoidFrom(nil, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = OBBFrom(&origin, nil, &extent)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = SegmentFrom(&origin, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = RayFrom(nil, &extent)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAABBContainsInclusive(t *testing.T) {
	b := NewAABB(0, 0, 4, 2)
	tests := []struct {
		p    vector.Vec2
		want bool
	}{
		{vector.New(2, 1), true},
		{vector.New(0, 0), true},
		{vector.New(4, 2), true},
		{vector.New(4, 1), true},
		{vector.New(2, 0), true},
		{vector.New(4.001, 1), false},
		{vector.New(2, -0.001), false},
		{vector.New(-1, -1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Contains(tt.p), "contains(%v)", tt.p)
	}

	r := gmath.NewRandSeeded(3, 5)
	for i := 0; i < 500; i++ {
		p := vector.New(r.Float32Range(0.01, 3.99), r.Float32Range(0.01, 1.99))
		require.True(t, b.Contains(p), "interior point %v", p)
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]vector.Vec2{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}})
	assert.Equal(t, NewAABB(-2, -1, 6, 6), b)
	assert.Equal(t, AABB{}, BoundsOf(nil))
}

func TestOBB(t *testing.T) {
	b := NewOBB(vector.New(0, 0), vector.New(-1, 1), vector.New(1, 1))
	assert.Equal(t, vector.New(0, 2), b.UpperRight())
	assert.Equal(t, [2]vector.Vec2{{X: 1, Y: 1}, {X: -1, Y: 1}}, b.Axes())
	assert.Equal(t, NewAABB(-1, 0, 2, 2), b.Bounds())
	assert.Equal(t, float32(2), b.Area())
	assert.InDelta(t, 4*1.4142135, b.Perimeter(), 1e-5)

	assert.True(t, b.Contains(vector.New(0, 1)))
	assert.True(t, b.Contains(vector.New(0, 2)), "vertices are inside")
	assert.True(t, b.Contains(vector.New(0.5, 0.5)), "edges are inside")
	assert.False(t, b.Contains(vector.New(0, 2.1)))
	assert.False(t, b.Contains(vector.New(1, 0)))
}

func TestRotatedBox(t *testing.T) {
	b := RotatedBox(vector.New(1, 1), 2, 1, gmath.HalfPi)
	assert.InDelta(t, 1, b.LowerRight.X, 2e-3)
	assert.InDelta(t, 3, b.LowerRight.Y, 2e-3)
	assert.InDelta(t, 0, b.UpperLeft.X, 2e-3)
	assert.InDelta(t, 1, b.UpperLeft.Y, 2e-3)
	assert.InDelta(t, 2, b.Area(), 1e-2)
}

func TestCircle(t *testing.T) {
	c := NewCircle(1, 1, 2)
	assert.True(t, c.Contains(vector.New(3, 1)))
	assert.True(t, c.Contains(vector.New(1, 1)))
	assert.False(t, c.Contains(vector.New(3, 3)))
	assert.Equal(t, NewAABB(-1, -1, 4, 4), c.Bounds())
	assert.InDelta(t, 4*gmath.Pi, c.Area(), 1e-5)
	assert.InDelta(t, 4*gmath.Pi, c.Perimeter(), 1e-5)
}

func TestEllipsoid(t *testing.T) {
	e := NewEllipsoid(0, 0, 2, 1)
	assert.True(t, e.Contains(vector.New(2, 0)))
	assert.True(t, e.Contains(vector.New(0, -1)))
	assert.True(t, e.Contains(vector.New(1, 0.5)))
	assert.False(t, e.Contains(vector.New(0, 1.5)))
	assert.False(t, e.Contains(vector.New(1.8, 0.8)))
	assert.Equal(t, NewAABB(-2, -1, 4, 2), e.Bounds())
	assert.InDelta(t, 2*gmath.Pi, e.Area(), 1e-5)
	assert.InDelta(t, 9.688448, e.Perimeter(), 1e-3)

	circle := NewEllipsoid(0, 0, 3, 3)
	assert.InDelta(t, NewCircle(0, 0, 3).Perimeter(), circle.Perimeter(), 1e-4)

	flat := NewEllipsoid(1, 1, 0, 2)
	assert.True(t, flat.Contains(vector.New(1, 1)))
	assert.False(t, flat.Contains(vector.New(1, 2)))
}

func TestSegmentAndRay(t *testing.T) {
	s := NewSegment(3, 4, 0, 0)
	assert.Equal(t, vector.New(-3, -4), s.Direction())
	assert.Equal(t, float32(5), s.Length())
	assert.Equal(t, NewAABB(0, 0, 3, 4), s.Bounds())

	r := NewRay(1, 1, 2, 0)
	assert.Equal(t, vector.New(5, 1), r.At(2))
}

func TestShapeVariant(t *testing.T) {
	s := FromCircle(NewCircle(0, 0, 1))
	assert.Equal(t, KindCircle, s.Kind)
	assert.True(t, s.Contains(vector.New(0.5, 0.5)))

	bounds, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, NewAABB(-1, -1, 2, 2), bounds)

	ray := FromRay(NewRay(0, 0, 1, 0))
	_, ok = ray.Bounds()
	assert.False(t, ok)
	assert.False(t, ray.Contains(vector.New(1, 0)))
	assert.False(t, FromSegment(NewSegment(0, 0, 1, 1)).Contains(vector.New(0.5, 0.5)))

	assert.Equal(t, "unknown(0)", Shape{}.String())
	assert.Contains(t, FromAABB(NewAABB(0, 0, 1, 1)).String(), "AABB")
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindAABB, KindOBB, KindCircle, KindEllipsoid, KindSegment, KindRay} {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	got, ok := ParseKind(" Circle ")
	assert.True(t, ok)
	assert.Equal(t, KindCircle, got)

	_, ok = ParseKind("polygon")
	assert.False(t, ok)
}
