package collision

import (
	"github.com/zeusync/geokit/pkg/shape"
	"github.com/zeusync/geokit/pkg/vector"
)

// AABBOverlapsAxis reports whether box overlaps the reference edge running
// from origin to origin+axis, measured along that edge's direction.
//
// The axis is scaled by 1/|axis|² instead of being normalized, so the
// reference edge projects onto [dot(origin), dot(origin)+1] and the box's
// corners are compared against that interval directly. Touching counts as
// overlap.
func AABBOverlapsAxis(origin, axis vector.Vec2, box shape.AABB) bool {
	return overlapsAxis(origin, axis, box.Corners())
}

// AABBOverlapsAxisXY is AABBOverlapsAxis on raw coordinates.
func AABBOverlapsAxisXY(originX, originY, axisX, axisY, x, y, width, height float32) bool {
	return AABBOverlapsAxis(
		vector.Vec2{X: originX, Y: originY},
		vector.Vec2{X: axisX, Y: axisY},
		shape.AABB{X: x, Y: y, Width: width, Height: height},
	)
}

// OBBOverlapsAxis is AABBOverlapsAxis for an oriented box. Its fourth corner
// is derived as UpperLeft + LowerRight - Origin.
func OBBOverlapsAxis(origin, axis vector.Vec2, box shape.OBB) bool {
	return overlapsAxis(origin, axis, box.Corners())
}

// A zero-length axis cannot separate anything and is reported as overlapping.
func overlapsAxis(origin, axis vector.Vec2, corners [4]vector.Vec2) bool {
	sq := axis.SquaredLength()
	if sq == 0 {
		return true
	}
	scaled := axis.Scale(1 / sq)

	lo := scaled.Dot(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		p := scaled.Dot(c)
		if p < lo {
			lo = p
		} else if p > hi {
			hi = p
		}
	}

	baseline := scaled.Dot(origin)
	return !(lo > 1+baseline || hi < baseline)
}
