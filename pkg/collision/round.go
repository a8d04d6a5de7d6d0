package collision

import (
	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/shape"
	"github.com/zeusync/geokit/pkg/vector"
)

// AABBCircle clamps the circle center onto the box and compares the distance
// to the radius. The normal points from the clamped point to the center and
// the contact point is the clamped point.
//
// A center inside the box has no such direction; the circle is then pushed
// out through the nearest face and the penetration includes the depth of the
// center below that face.
func AABBCircle(box shape.AABB, c shape.Circle, hit *HitData) bool {
	return AABBCircleXY(box.X, box.Y, box.Width, box.Height, c.Center.X, c.Center.Y, c.Radius, hit)
}

func AABBCircleXY(x, y, width, height, centerX, centerY, radius float32, hit *HitData) bool {
	clamped := vector.Vec2{
		X: gmath.Clamp(centerX, x, x+width),
		Y: gmath.Clamp(centerY, y, y+height),
	}
	d := vector.Vec2{X: centerX - clamped.X, Y: centerY - clamped.Y}
	if d.SquaredLength() > radius*radius {
		return false
	}
	if hit == nil {
		return true
	}

	if !d.IsNearlyZero() {
		hit.Set(clamped, d, radius-d.Length())
		return true
	}

	// nearest face: left, right, bottom, top
	depths := [4]float32{centerX - x, x + width - centerX, centerY - y, y + height - centerY}
	normals := [4]vector.Vec2{vector.NegXAxis, vector.XAxis, vector.NegYAxis, vector.YAxis}
	face := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] < depths[face] {
			face = i
		}
	}
	point := vector.Vec2{X: centerX, Y: centerY}.AddScaled(depths[face], normals[face])
	hit.Set(point, normals[face], radius+depths[face])
	return true
}

// CircleCircle compares the squared center distance with the squared sum of
// the radii. The normal points from a to b; coincident centers use +y. The
// contact point lies on the normal at distance (dist - rb) from a's center.
func CircleCircle(a, b shape.Circle, hit *HitData) bool {
	return CircleCircleXY(a.Center.X, a.Center.Y, a.Radius, b.Center.X, b.Center.Y, b.Radius, hit)
}

func CircleCircleXY(x1, y1, r1, x2, y2, r2 float32, hit *HitData) bool {
	d := vector.Vec2{X: x2 - x1, Y: y2 - y1}
	sum := r1 + r2
	sq := d.SquaredLength()
	if sq > sum*sum {
		return false
	}
	if hit == nil {
		return true
	}

	dist := gmath.Sqrt(sq)
	normal := vector.YAxis
	if !d.IsNearlyZero() {
		normal = d.Normalized()
	}
	point := vector.Vec2{X: x1, Y: y1}.AddScaled(dist-r2, normal)
	hit.Set(point, normal, sum-dist)
	return true
}

// AABBEllipsoid scales the y axis by width/height so the ellipsoid becomes a
// circle of radius width, then runs AABBCircle. The contact is mapped back:
// the point and the penetration vector are unscaled, and the penetration is
// the length of the unscaled vector. This is an approximation.
//
// An ellipsoid with a zero semi-axis is tested as the segment it
// degenerates to.
func AABBEllipsoid(box shape.AABB, e shape.Ellipsoid, hit *HitData) bool {
	return AABBEllipsoidXY(box.X, box.Y, box.Width, box.Height, e.Center.X, e.Center.Y, e.Width, e.Height, hit)
}

func AABBEllipsoidXY(x, y, width, height, centerX, centerY, ellipseWidth, ellipseHeight float32, hit *HitData) bool {
	if gmath.IsNearlyZero(ellipseHeight) {
		return AABBSegmentXY(x, y, width, height,
			centerX-ellipseWidth, centerY, centerX+ellipseWidth, centerY, hit)
	}
	if gmath.IsNearlyZero(ellipseWidth) {
		return AABBSegmentXY(x, y, width, height,
			centerX, centerY-ellipseHeight, centerX, centerY+ellipseHeight, hit)
	}

	scale := ellipseWidth / ellipseHeight
	var local HitData
	var h *HitData
	if hit != nil {
		h = &local
	}
	if !AABBCircleXY(x, y*scale, width, height*scale, centerX, centerY*scale, ellipseWidth, h) {
		return false
	}
	if hit == nil {
		return true
	}

	point := vector.Vec2{X: local.Point.X, Y: local.Point.Y / scale}
	push := local.Normal.Scale(local.Penetration)
	push.Y /= scale
	normal := local.Normal
	if !push.IsNearlyZero() {
		normal = push
	}
	hit.Set(point, normal, push.Length())
	return true
}
