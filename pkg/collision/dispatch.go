package collision

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/shape"
)

type pairKey struct {
	a, b shape.Kind
}

type predicate func(a, b shape.Shape, hit *HitData) bool

// predicates is keyed by the argument order of each pair function.
var predicates = map[pairKey]predicate{
	{shape.KindAABB, shape.KindAABB}: func(a, b shape.Shape, hit *HitData) bool {
		return AABBAABB(a.AABB, b.AABB, hit)
	},
	{shape.KindAABB, shape.KindOBB}: func(a, b shape.Shape, hit *HitData) bool {
		return AABBOBB(a.AABB, b.OBB, hit)
	},
	{shape.KindOBB, shape.KindOBB}: func(a, b shape.Shape, hit *HitData) bool {
		return OBBOBB(a.OBB, b.OBB, hit)
	},
	{shape.KindAABB, shape.KindCircle}: func(a, b shape.Shape, hit *HitData) bool {
		return AABBCircle(a.AABB, b.Circle, hit)
	},
	{shape.KindAABB, shape.KindEllipsoid}: func(a, b shape.Shape, hit *HitData) bool {
		return AABBEllipsoid(a.AABB, b.Ellipsoid, hit)
	},
	{shape.KindAABB, shape.KindSegment}: func(a, b shape.Shape, hit *HitData) bool {
		return AABBSegment(a.AABB, b.Segment, hit)
	},
	{shape.KindCircle, shape.KindCircle}: func(a, b shape.Shape, hit *HitData) bool {
		return CircleCircle(a.Circle, b.Circle, hit)
	},
	{shape.KindRay, shape.KindAABB}: func(a, b shape.Shape, hit *HitData) bool {
		return RayAABB(a.Ray, b.AABB, hit)
	},
	{shape.KindRay, shape.KindCircle}: func(a, b shape.Shape, _ *HitData) bool {
		return RayCircle(a.Ray, b.Circle)
	},
	{shape.KindRay, shape.KindRay}: func(a, b shape.Shape, hit *HitData) bool {
		return RayRay(a.Ray, b.Ray, hit)
	},
	{shape.KindSegment, shape.KindSegment}: func(a, b shape.Shape, hit *HitData) bool {
		return SegmentSegment(a.Segment, b.Segment, hit)
	},
}

var contactless = map[pairKey]bool{
	{shape.KindRay, shape.KindCircle}: true,
}

// Supports reports whether Intersect has a predicate for the two kinds, in
// either order.
func Supports(a, b shape.Kind) bool {
	_, direct := predicates[pairKey{a, b}]
	_, swapped := predicates[pairKey{b, a}]
	return direct || swapped
}

// Intersect dispatches on the kinds of a and b. When only the reversed pair
// has a predicate the arguments are swapped and the resulting normal flipped.
//
// The normal direction depends on the pair:
//
//	box, circle, ellipsoid and segment overlaps   from a toward b
//	ray versus box                                outward normal of the entered face, from b toward a
//	ray versus ray, segment versus segment        direction of a
//
// Swapping the arguments negates each of these. Ray versus circle computes no
// contact and leaves hit untouched.
func Intersect(a, b shape.Shape, hit *HitData) (bool, error) {
	if !known(a.Kind) {
		return false, fmt.Errorf("%w: %s", ErrUnknownKind, a.Kind)
	}
	if !known(b.Kind) {
		return false, fmt.Errorf("%w: %s", ErrUnknownKind, b.Kind)
	}

	var local HitData
	var h *HitData
	if hit != nil {
		local = *hit
		h = &local
	}

	var ok bool
	if fn, found := predicates[pairKey{a.Kind, b.Kind}]; found {
		ok = fn(a, b, h)
	} else if fn, found := predicates[pairKey{b.Kind, a.Kind}]; found {
		ok = fn(b, a, h)
		if ok && h != nil && !contactless[pairKey{b.Kind, a.Kind}] {
			h.Flip()
		}
	} else {
		return false, fmt.Errorf("%w: %s-%s", ErrUnsupportedPair, a.Kind, b.Kind)
	}

	if ok && hit != nil {
		*hit = local
	}
	return ok, nil
}

// ProducesContact reports whether a hit between the two kinds fills HitData.
func ProducesContact(a, b shape.Kind) bool {
	return Supports(a, b) && !contactless[pairKey{a, b}] && !contactless[pairKey{b, a}]
}

func known(k shape.Kind) bool {
	return k >= shape.KindAABB && k <= shape.KindRay
}
