// Package collision answers whether two shapes overlap and, optionally, with
// which contact point, normal and penetration depth.
//
// Every pair has a coordinate form (suffix XY) and a descriptor form that
// delegates to it. Touching shapes count as a hit. A nil *HitData skips the
// contact computation; on a miss the record is left untouched.
package collision

import (
	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/shape"
	"github.com/zeusync/geokit/pkg/vector"
)

// AABBAABB tests two axis-aligned boxes. The normal points from a towards b
// along the axis of smaller overlap, x on a tie; the contact point is the
// center of the overlap region.
func AABBAABB(a, b shape.AABB, hit *HitData) bool {
	return AABBAABBXY(a.X, a.Y, a.Width, a.Height, b.X, b.Y, b.Width, b.Height, hit)
}

func AABBAABBXY(x1, y1, w1, h1, x2, y2, w2, h2 float32, hit *HitData) bool {
	difX := x2 - x1
	difY := y2 - y1
	if difX+w2 < 0 || difX > w1 || difY+h2 < 0 || difY > h1 {
		return false
	}
	if hit == nil {
		return true
	}

	lowX := gmath.Max(0, difX)
	lowY := gmath.Max(0, difY)
	overlapX := gmath.Min(w1, difX+w2) - lowX
	overlapY := gmath.Min(h1, difY+h2) - lowY
	point := vector.Vec2{X: x1 + lowX + overlapX*0.5, Y: y1 + lowY + overlapY*0.5}

	if overlapY < overlapX {
		hit.Set(point, vector.Vec2{Y: sign(difY)}, overlapY)
	} else {
		hit.Set(point, vector.Vec2{X: sign(difX)}, overlapX)
	}
	return true
}

// AABBOBB runs the separating axis test of box against an oriented box. The
// box axes are covered by an AABB test against the oriented box's bounds,
// which alone provides the contact; the two edge axes of the oriented box
// follow.
func AABBOBB(box shape.AABB, obb shape.OBB, hit *HitData) bool {
	var local HitData
	var h *HitData
	if hit != nil {
		h = &local
	}
	if !AABBAABB(box, obb.Bounds(), h) {
		return false
	}
	for _, axis := range obb.Axes() {
		if !AABBOverlapsAxis(obb.Origin, axis, box) {
			return false
		}
	}
	if hit != nil {
		*hit = local
	}
	return true
}

// AABBOBBXY takes the box as origin/extent and the oriented box as three vertices.
func AABBOBBXY(x, y, width, height float32, origin, upperLeft, lowerRight vector.Vec2, hit *HitData) bool {
	return AABBOBB(
		shape.AABB{X: x, Y: y, Width: width, Height: height},
		shape.OBB{Origin: origin, UpperLeft: upperLeft, LowerRight: lowerRight},
		hit,
	)
}

// OBBOBB tests two oriented boxes on the bounding-box axes and on the two edge
// axes of each box. The contact comes from the bounding boxes.
func OBBOBB(a, b shape.OBB, hit *HitData) bool {
	var local HitData
	var h *HitData
	if hit != nil {
		h = &local
	}
	if !AABBAABB(a.Bounds(), b.Bounds(), h) {
		return false
	}
	for _, axis := range a.Axes() {
		if !OBBOverlapsAxis(a.Origin, axis, b) {
			return false
		}
	}
	for _, axis := range b.Axes() {
		if !OBBOverlapsAxis(b.Origin, axis, a) {
			return false
		}
	}
	if hit != nil {
		*hit = local
	}
	return true
}

// AABBSegment requires the segment's bounds to overlap the box and the box to
// straddle the segment both along its direction and across it. The contact
// comes from the bounds test.
func AABBSegment(box shape.AABB, seg shape.Segment, hit *HitData) bool {
	var local HitData
	var h *HitData
	if hit != nil {
		h = &local
	}
	if !AABBAABB(box, seg.Bounds(), h) {
		return false
	}

	dir := seg.Direction()
	if !AABBOverlapsAxis(seg.Start, dir, box) {
		return false
	}

	// all four corners strictly on one side of the supporting line
	var above, below bool
	for _, c := range box.Corners() {
		side := dir.PseudoCross(c.Sub(seg.Start))
		if side > 0 {
			above = true
		} else if side < 0 {
			below = true
		} else {
			above, below = true, true
		}
	}
	if !above || !below {
		return false
	}

	if hit != nil {
		*hit = local
	}
	return true
}

func AABBSegmentXY(x, y, width, height, x1, y1, x2, y2 float32, hit *HitData) bool {
	return AABBSegment(
		shape.AABB{X: x, Y: y, Width: width, Height: height},
		shape.NewSegment(x1, y1, x2, y2),
		hit,
	)
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
