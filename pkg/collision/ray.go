package collision

import (
	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/shape"
	"github.com/zeusync/geokit/pkg/vector"
)

// RayAABBInterval runs the slab test and returns the parametric entry and
// exit distances along the ray's direction. ok is false when the ray misses;
// otherwise tMin <= tMax and tMax >= 0. tMin is negative when the origin is
// inside the box.
//
// A zero direction component keeps the ray parallel to that slab: it hits
// only if the origin lies within the slab, boundary included.
func RayAABBInterval(ray shape.Ray, box shape.AABB) (tMin, tMax float32, ok bool) {
	tMin, tMax, _, ok = slab(ray.Origin.X, ray.Origin.Y, ray.Direction.X, ray.Direction.Y,
		box.X, box.Y, box.Width, box.Height)
	return tMin, tMax, ok
}

// RayAABB reports whether the ray hits the box. The contact is the entry
// point, the normal of the entered face and the entry distance as
// penetration. A ray starting inside the box enters at its origin, with the
// normal facing back along the ray.
func RayAABB(ray shape.Ray, box shape.AABB, hit *HitData) bool {
	return RayAABBXY(ray.Origin.X, ray.Origin.Y, ray.Direction.X, ray.Direction.Y,
		box.X, box.Y, box.Width, box.Height, hit)
}

func RayAABBXY(originX, originY, dirX, dirY, x, y, width, height float32, hit *HitData) bool {
	tMin, _, normal, ok := slab(originX, originY, dirX, dirY, x, y, width, height)
	if !ok {
		return false
	}
	if hit == nil {
		return true
	}

	dir := vector.Vec2{X: dirX, Y: dirY}
	if tMin < 0 {
		tMin = 0
		normal = dir.Negate()
	}
	hit.Set(vector.Vec2{X: originX, Y: originY}.AddScaled(tMin, dir), normal, tMin)
	return true
}

func slab(originX, originY, dirX, dirY, x, y, width, height float32) (tMin, tMax float32, normal vector.Vec2, ok bool) {
	tMin, tMax = -gmath.MaxFloat, gmath.MaxFloat

	axes := [2]struct {
		origin, dir, low, high float32
		normal                 vector.Vec2
	}{
		{originX, dirX, x, x + width, vector.NegXAxis},
		{originY, dirY, y, y + height, vector.NegYAxis},
	}
	for _, a := range axes {
		if a.dir == 0 {
			if a.origin < a.low || a.origin > a.high {
				return 0, 0, vector.Vec2{}, false
			}
			continue
		}
		inv := 1 / a.dir
		t1 := (a.low - a.origin) * inv
		t2 := (a.high - a.origin) * inv
		n := a.normal
		if t1 > t2 {
			t1, t2 = t2, t1
			n = n.Negate()
		}
		if t1 > tMin {
			tMin = t1
			normal = n
		}
		tMax = gmath.Min(tMax, t2)
	}

	if tMax < 0 || tMin > tMax {
		return 0, 0, vector.Vec2{}, false
	}
	return tMin, tMax, normal, true
}

// RayCircle tests the circle against the ray's supporting line: it reports a
// hit when the quadratic for the line-circle distance has a non-negative
// discriminant. A circle behind the origin therefore still hits. No contact
// is computed.
func RayCircle(ray shape.Ray, c shape.Circle) bool {
	return RayCircleXY(ray.Origin.X, ray.Origin.Y, ray.Direction.X, ray.Direction.Y,
		c.Center.X, c.Center.Y, c.Radius)
}

func RayCircleXY(originX, originY, dirX, dirY, centerX, centerY, radius float32) bool {
	fx := originX - centerX
	fy := originY - centerY
	a := vector.Dot(dirX, dirY, dirX, dirY)
	b := 2 * vector.Dot(fx, fy, dirX, dirY)
	c := vector.Dot(fx, fy, fx, fy) - radius*radius
	return b*b-4*a*c >= 0
}

// RayRay solves origin1 + t*dir1 = origin2 + u*dir2 and reports a hit when
// both t and u are non-negative. Parallel rays hit only when they share a
// line and one origin lies on the other ray. The contact is the intersection
// point, dir1 as normal and t as penetration.
func RayRay(a, b shape.Ray, hit *HitData) bool {
	return RayRayXY(a.Origin.X, a.Origin.Y, a.Direction.X, a.Direction.Y,
		b.Origin.X, b.Origin.Y, b.Direction.X, b.Direction.Y, hit)
}

func RayRayXY(x1, y1, dirX1, dirY1, x2, y2, dirX2, dirY2 float32, hit *HitData) bool {
	o1 := vector.Vec2{X: x1, Y: y1}
	d1 := vector.Vec2{X: dirX1, Y: dirY1}
	d2 := vector.Vec2{X: dirX2, Y: dirY2}
	w := vector.Vec2{X: x2 - x1, Y: y2 - y1}

	var t float32
	denom := d1.PseudoCross(d2)
	if nearlyParallel(d1, d2) {
		if !nearlyParallel(w, d1) {
			return false
		}
		along := w.Dot(d1)
		switch {
		case along >= 0:
			// second origin lies ahead on the first ray
			t = along / d1.SquaredLength()
		case d1.Dot(d2) > 0:
			// first origin lies ahead on the second ray
			t = 0
		default:
			return false
		}
	} else {
		t = w.PseudoCross(d2) / denom
		u := w.PseudoCross(d1) / denom
		if t < 0 || u < 0 {
			return false
		}
	}

	if hit != nil {
		hit.Set(o1.AddScaled(t, d1), d1, t)
	}
	return true
}

// SegmentSegment solves the two supporting lines and reports a hit when the
// crossing lies within both segments, ends included. Collinear segments hit
// when they overlap; the contact is then the first shared point along a. The
// normal is a's direction and the penetration the parameter along a.
// Segments must have non-zero length.
func SegmentSegment(a, b shape.Segment, hit *HitData) bool {
	return SegmentSegmentXY(a.Start.X, a.Start.Y, a.End.X, a.End.Y,
		b.Start.X, b.Start.Y, b.End.X, b.End.Y, hit)
}

func SegmentSegmentXY(x1, y1, x2, y2, x3, y3, x4, y4 float32, hit *HitData) bool {
	p1 := vector.Vec2{X: x1, Y: y1}
	d1 := vector.Vec2{X: x2 - x1, Y: y2 - y1}
	d2 := vector.Vec2{X: x4 - x3, Y: y4 - y3}
	w := vector.Vec2{X: x3 - x1, Y: y3 - y1}

	var t float32
	denom := d1.PseudoCross(d2)
	if nearlyParallel(d1, d2) {
		if !nearlyParallel(w, d1) {
			return false
		}
		sq := d1.SquaredLength()
		t3 := w.Dot(d1) / sq
		t4 := vector.Vec2{X: x4 - x1, Y: y4 - y1}.Dot(d1) / sq
		lo, hi := gmath.Min(t3, t4), gmath.Max(t3, t4)
		if hi < 0 || lo > 1 {
			return false
		}
		t = gmath.Max(0, lo)
	} else {
		t = w.PseudoCross(d2) / denom
		u := w.PseudoCross(d1) / denom
		if t < 0 || t > 1 || u < 0 || u > 1 {
			return false
		}
	}

	if hit != nil {
		hit.Set(p1.AddScaled(t, d1), d1, t)
	}
	return true
}

// nearlyParallel compares the sine of the angle between a and b against
// Epsilon, so the test does not depend on their lengths. A zero vector is
// parallel to everything.
func nearlyParallel(a, b vector.Vec2) bool {
	return gmath.IsNearlyZeroEps(a.PseudoCross(b), gmath.Epsilon*a.Length()*b.Length())
}
