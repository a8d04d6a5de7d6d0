// Package shape holds the geometric descriptors consumed by the collision
// suite: axis-aligned and oriented boxes, circles, ellipsoids, segments and
// rays. Descriptors are plain values; the collision code reads their numeric
// fields and never retains them.
package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zeusync/geokit/pkg/vector"
)

var ErrInvalidArgument = errors.New("invalid shape argument")

// Kind tags the concrete descriptor carried by a Shape.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindAABB
	KindOBB
	KindCircle
	KindEllipsoid
	KindSegment
	KindRay
)

var kindNames = map[Kind]string{
	KindAABB:      "aabb",
	KindOBB:       "obb",
	KindCircle:    "circle",
	KindEllipsoid: "ellipsoid",
	KindSegment:   "segment",
	KindRay:       "ray",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// ParseKind resolves a case-insensitive kind name such as "aabb" or "Circle".
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// Shape is a tagged variant over the descriptors. Only the field matching
// Kind is meaningful.
type Shape struct {
	Kind      Kind
	AABB      AABB
	OBB       OBB
	Circle    Circle
	Ellipsoid Ellipsoid
	Segment   Segment
	Ray       Ray
}

func FromAABB(b AABB) Shape { return Shape{Kind: KindAABB, AABB: b} }

func FromOBB(b OBB) Shape { return Shape{Kind: KindOBB, OBB: b} }

func FromCircle(c Circle) Shape { return Shape{Kind: KindCircle, Circle: c} }

func FromEllipsoid(e Ellipsoid) Shape { return Shape{Kind: KindEllipsoid, Ellipsoid: e} }

func FromSegment(s Segment) Shape { return Shape{Kind: KindSegment, Segment: s} }

func FromRay(r Ray) Shape { return Shape{Kind: KindRay, Ray: r} }

// Contains reports whether the point lies inside the shape, boundary
// included. Segments and rays contain no area and always report false.
func (s Shape) Contains(p vector.Vec2) bool {
	switch s.Kind {
	case KindAABB:
		return s.AABB.Contains(p)
	case KindOBB:
		return s.OBB.Contains(p)
	case KindCircle:
		return s.Circle.Contains(p)
	case KindEllipsoid:
		return s.Ellipsoid.Contains(p)
	default:
		return false
	}
}

// Bounds returns the axis-aligned box enclosing the shape. Rays are
// unbounded and report false.
func (s Shape) Bounds() (AABB, bool) {
	switch s.Kind {
	case KindAABB:
		return s.AABB, true
	case KindOBB:
		return s.OBB.Bounds(), true
	case KindCircle:
		return s.Circle.Bounds(), true
	case KindEllipsoid:
		return s.Ellipsoid.Bounds(), true
	case KindSegment:
		return s.Segment.Bounds(), true
	default:
		return AABB{}, false
	}
}

func (s Shape) String() string {
	switch s.Kind {
	case KindAABB:
		return s.AABB.String()
	case KindOBB:
		return s.OBB.String()
	case KindCircle:
		return s.Circle.String()
	case KindEllipsoid:
		return s.Ellipsoid.String()
	case KindSegment:
		return s.Segment.String()
	case KindRay:
		return s.Ray.String()
	default:
		return s.Kind.String()
	}
}

func nilArgument(ctor, field string) error {
	return fmt.Errorf("%w: %s with nil %s", ErrInvalidArgument, ctor, field)
}
