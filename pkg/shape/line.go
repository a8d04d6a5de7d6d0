package shape

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/vector"
)

type Segment struct {
	Start, End vector.Vec2
}

func NewSegment(x1, y1, x2, y2 float32) Segment {
	return Segment{Start: vector.Vec2{X: x1, Y: y1}, End: vector.Vec2{X: x2, Y: y2}}
}

func SegmentFrom(start, end *vector.Vec2) (Segment, error) {
	if start == nil {
		return Segment{}, nilArgument("Segment", "start")
	}
	if end == nil {
		return Segment{}, nilArgument("Segment", "end")
	}
	return Segment{Start: *start, End: *end}, nil
}

// Direction is End - Start.
func (s Segment) Direction() vector.Vec2 { return s.End.Sub(s.Start) }

func (s Segment) Length() float32 { return s.Direction().Length() }

func (s Segment) Bounds() AABB {
	return BoundsOf([]vector.Vec2{s.Start, s.End})
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%v -> %v)", s.Start, s.End)
}

// Ray starts at Origin and extends along Direction without bound. The
// direction need not be normalized.
type Ray struct {
	Origin, Direction vector.Vec2
}

func NewRay(x, y, dirX, dirY float32) Ray {
	return Ray{Origin: vector.Vec2{X: x, Y: y}, Direction: vector.Vec2{X: dirX, Y: dirY}}
}

func RayFrom(origin, direction *vector.Vec2) (Ray, error) {
	if origin == nil {
		return Ray{}, nilArgument("Ray", "origin")
	}
	if direction == nil {
		return Ray{}, nilArgument("Ray", "direction")
	}
	return Ray{Origin: *origin, Direction: *direction}, nil
}

// At returns Origin + Direction*t.
func (r Ray) At(t float32) vector.Vec2 {
	return r.Origin.AddScaled(t, r.Direction)
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(%v dir %v)", r.Origin, r.Direction)
}
