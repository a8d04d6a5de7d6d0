package shape

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/vector"
)

// OBB is an oriented box given by one vertex and its two neighbours. The
// fourth vertex is UpperLeft + LowerRight - Origin. The edges are expected to
// be perpendicular; the collision code does not check it.
type OBB struct {
	Origin     vector.Vec2
	UpperLeft  vector.Vec2
	LowerRight vector.Vec2
}

func NewOBB(origin, upperLeft, lowerRight vector.Vec2) OBB {
	return OBB{Origin: origin, UpperLeft: upperLeft, LowerRight: lowerRight}
}

func OBBFrom(origin, upperLeft, lowerRight *vector.Vec2) (OBB, error) {
	switch {
	case origin == nil:
		return OBB{}, nilArgument("OBB", "origin")
	case upperLeft == nil:
		return OBB{}, nilArgument("OBB", "upper left vertex")
	case lowerRight == nil:
		return OBB{}, nilArgument("OBB", "lower right vertex")
	}
	return NewOBB(*origin, *upperLeft, *lowerRight), nil
}

// RotatedBox builds the OBB of a width x height rectangle with its origin
// corner at origin, rotated counter-clockwise by radians around that corner.
func RotatedBox(origin vector.Vec2, width, height, radians float32) OBB {
	along := vector.Vec2{X: gmath.Abs(width)}.Rotate(radians)
	up := vector.Vec2{Y: gmath.Abs(height)}.Rotate(radians)
	return OBB{
		Origin:     origin,
		UpperLeft:  origin.Add(up),
		LowerRight: origin.Add(along),
	}
}

// UpperRight is the vertex opposite the origin.
func (b OBB) UpperRight() vector.Vec2 {
	return b.UpperLeft.Add(b.LowerRight).Sub(b.Origin)
}

// Axes returns the two edge vectors leaving the origin, un-normalized.
func (b OBB) Axes() [2]vector.Vec2 {
	return [2]vector.Vec2{b.LowerRight.Sub(b.Origin), b.UpperLeft.Sub(b.Origin)}
}

func (b OBB) Corners() [4]vector.Vec2 {
	return [4]vector.Vec2{b.Origin, b.LowerRight, b.UpperRight(), b.UpperLeft}
}

func (b OBB) Bounds() AABB {
	c := b.Corners()
	return BoundsOf(c[:])
}

// Contains projects p onto both edges; the point is inside when each
// projection falls within the edge, ends included.
func (b OBB) Contains(p vector.Vec2) bool {
	d := p.Sub(b.Origin)
	for _, axis := range b.Axes() {
		t := d.Dot(axis)
		if t < 0 || t > axis.SquaredLength() {
			return false
		}
	}
	return true
}

func (b OBB) Area() float32 {
	a := b.Axes()
	return gmath.Abs(a[0].PseudoCross(a[1]))
}

func (b OBB) Perimeter() float32 {
	a := b.Axes()
	return 2 * (a[0].Length() + a[1].Length())
}

func (b OBB) String() string {
	return fmt.Sprintf("OBB(origin=%v upperLeft=%v lowerRight=%v)", b.Origin, b.UpperLeft, b.LowerRight)
}
