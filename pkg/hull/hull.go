// Package hull builds the convex hull of a point set with the monotone chain
// construction.
package hull

import (
	"slices"

	"github.com/zeusync/geokit/pkg/vector"
)

// Option is a function that configures a hull construction.
type Option func(*Config)

// Config holds the hull construction settings.
type Config struct {
	KeepCollinear bool // Keep points lying on a hull edge instead of only its corners
}

// WithCollinear keeps or drops points lying on a hull edge.
func WithCollinear(keep bool) Option {
	return func(c *Config) { c.KeepCollinear = keep }
}

// Convex returns the hull of points in clockwise order. Every boundary point
// appears once and the last point connects back to the first. Interior
// points are dropped, and so are edge points unless WithCollinear(true) is
// given. The input is not modified.
//
// Fewer than three distinct points are returned as they are, sorted and
// without duplicates. All-collinear input yields its two extremes, or every
// point in sorted order when collinear points are kept.
func Convex(points []vector.Vec2, opts ...Option) []vector.Vec2 {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	sorted := sortUnique(points)
	if len(sorted) < 3 {
		return sorted
	}
	if cfg.KeepCollinear && allCollinear(sorted) {
		return sorted
	}

	turnsLeft := func(a, b, c vector.Vec2) bool {
		o := vector.Orientation(a, b, c)
		if cfg.KeepCollinear {
			return o > 0
		}
		return o >= 0
	}

	// right to left along the bottom
	lower := chain(sorted, turnsLeft)
	// left to right along the top
	slices.Reverse(sorted)
	upper := chain(sorted, turnsLeft)

	out := make([]vector.Vec2, 0, len(lower)+len(upper)-2)
	out = append(out, lower[1:len(lower)-1]...)
	return append(out, upper...)
}

// chain appends points in order and drops the middle of every trailing
// triple that does not turn right.
func chain(points []vector.Vec2, turnsLeft func(a, b, c vector.Vec2) bool) []vector.Vec2 {
	out := make([]vector.Vec2, 0, len(points))
	for _, p := range points {
		for len(out) >= 2 && turnsLeft(out[len(out)-2], out[len(out)-1], p) {
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	return out
}

// sortUnique copies points ordered by descending x, then descending y, and
// drops exact duplicates.
func sortUnique(points []vector.Vec2) []vector.Vec2 {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, compare)
	return slices.Compact(sorted)
}

func compare(a, b vector.Vec2) int {
	switch {
	case a.X > b.X:
		return -1
	case a.X < b.X:
		return 1
	case a.Y > b.Y:
		return -1
	case a.Y < b.Y:
		return 1
	default:
		return 0
	}
}

func allCollinear(points []vector.Vec2) bool {
	first, last := points[0], points[len(points)-1]
	for _, p := range points[1 : len(points)-1] {
		if vector.Orientation(first, p, last) != 0 {
			return false
		}
	}
	return true
}

// IsClockwise reports whether the closed polygon winds clockwise, using the
// sign of its shoelace area.
func IsClockwise(polygon []vector.Vec2) bool {
	return SignedArea(polygon) < 0
}

// SignedArea is positive for counter-clockwise polygons.
func SignedArea(polygon []vector.Vec2) float32 {
	var sum float32
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		sum += p.PseudoCross(q)
	}
	return sum * 0.5
}
