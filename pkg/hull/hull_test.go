package hull

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/vector"
)

func TestConvexSquare(t *testing.T) {
	points := []vector.Vec2{
		{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 2, Y: 2}, {X: 0.5, Y: 1.5},
		{X: 2, Y: 0}, {X: 0, Y: 2}, {X: 1.5, Y: 0.25},
	}
	input := slices.Clone(points)

	h := Convex(points)
	assert.Equal(t, []vector.Vec2{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}, h)
	assert.True(t, IsClockwise(h))
	assert.Equal(t, float32(-4), SignedArea(h))
	assert.Equal(t, input, points, "input must not be reordered")
}

func TestConvexDropsEdgePoints(t *testing.T) {
	points := []vector.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	assert.Equal(t, []vector.Vec2{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}, Convex(points))

	kept := Convex(points, WithCollinear(true))
	assert.Equal(t, []vector.Vec2{
		{X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0},
		{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}, kept)
	assert.NotContains(t, kept, vector.Vec2{X: 1, Y: 1})
	assert.True(t, IsClockwise(kept))
}

func TestConvexDegenerate(t *testing.T) {
	assert.Empty(t, Convex(nil))
	assert.Equal(t, []vector.Vec2{{X: 1, Y: 1}}, Convex([]vector.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}}))
	assert.Equal(t,
		[]vector.Vec2{{X: 2, Y: 2}, {X: 1, Y: 1}},
		Convex([]vector.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}),
	)

	line := []vector.Vec2{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 3, Y: 3}, {X: 2, Y: 2}}
	assert.Equal(t, []vector.Vec2{{X: 0, Y: 0}, {X: 3, Y: 3}}, Convex(line))
	assert.Equal(t,
		[]vector.Vec2{{X: 3, Y: 3}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 0}},
		Convex(line, WithCollinear(true)),
	)
}

func TestConvexDuplicates(t *testing.T) {
	points := []vector.Vec2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 3}, {X: 4, Y: 0}, {X: 2, Y: 1},
	}
	h := Convex(points)
	require.Len(t, h, 3)
	assert.ElementsMatch(t, []vector.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}, h)
}

func TestConvexRandom(t *testing.T) {
	r := gmath.NewRandSeeded(2024, 7)
	for round := 0; round < 50; round++ {
		// integer coordinates keep every orientation test exact
		points := make([]vector.Vec2, 40)
		for i := range points {
			points[i] = vector.New(float32(r.IntRange(-50, 50)), float32(r.IntRange(-50, 50)))
		}

		strict := Convex(points)
		requireHull(t, points, strict, false)

		kept := Convex(points, WithCollinear(true))
		requireHull(t, points, kept, true)
		assert.GreaterOrEqual(t, len(kept), len(strict))

		shuffled := slices.Clone(points)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := r.IntRange(0, i+1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		assert.Equal(t, strict, Convex(shuffled), "hull must not depend on input order")
	}
}

func requireHull(t *testing.T, points, h []vector.Vec2, keepCollinear bool) {
	t.Helper()
	require.GreaterOrEqual(t, len(h), 3)
	require.True(t, IsClockwise(h))

	seen := make(map[vector.Vec2]bool, len(h))
	for i, p := range h {
		require.Contains(t, points, p)
		require.False(t, seen[p], "duplicate hull point %v", p)
		seen[p] = true

		next := h[(i+1)%len(h)]
		after := h[(i+2)%len(h)]
		o := vector.Orientation(p, next, after)
		if keepCollinear {
			require.LessOrEqual(t, o, float32(0), "left turn at %v", next)
		} else {
			require.Less(t, o, float32(0), "corner %v is not strictly convex", next)
		}
	}

	for _, p := range points {
		for i, a := range h {
			b := h[(i+1)%len(h)]
			side := vector.PseudoCross(b.X-a.X, b.Y-a.Y, p.X-a.X, p.Y-a.Y)
			require.LessOrEqual(t, side, float32(0), "%v outside edge %v-%v", p, a, b)
			if keepCollinear && side == 0 && onSegment(a, b, p) {
				require.True(t, seen[p], "edge point %v missing", p)
			}
		}
	}
}

func onSegment(a, b, p vector.Vec2) bool {
	return p.X >= gmath.Min(a.X, b.X) && p.X <= gmath.Max(a.X, b.X) &&
		p.Y >= gmath.Min(a.Y, b.Y) && p.Y <= gmath.Max(a.Y, b.Y)
}
