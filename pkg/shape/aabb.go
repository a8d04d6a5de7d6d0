package shape

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/vector"
)

// AABB is an axis-aligned box given by its lower-left corner and a
// non-negative extent.
type AABB struct {
	X, Y          float32
	Width, Height float32
}

// NewAABB builds a box at (x, y). Negative extents are taken by magnitude.
func NewAABB(x, y, width, height float32) AABB {
	return AABB{X: x, Y: y, Width: gmath.Abs(width), Height: gmath.Abs(height)}
}

// AABBFrom builds a box from an origin and an extent vector.
func AABBFrom(origin, extent *vector.Vec2) (AABB, error) {
	if origin == nil {
		return AABB{}, nilArgument("AABB", "origin")
	}
	if extent == nil {
		return AABB{}, nilArgument("AABB", "extent")
	}
	return NewAABB(origin.X, origin.Y, extent.X, extent.Y), nil
}

// BoundsOf returns the smallest box enclosing every point. An empty input
// yields the zero box.
func BoundsOf(points []vector.Vec2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return AABB{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

func (b AABB) Origin() vector.Vec2 { return vector.Vec2{X: b.X, Y: b.Y} }

func (b AABB) Extent() vector.Vec2 { return vector.Vec2{X: b.Width, Y: b.Height} }

func (b AABB) Max() vector.Vec2 { return vector.Vec2{X: b.X + b.Width, Y: b.Y + b.Height} }

func (b AABB) Center() vector.Vec2 {
	return vector.Vec2{X: b.X + b.Width*0.5, Y: b.Y + b.Height*0.5}
}

// Corners in counter-clockwise order starting at the origin.
func (b AABB) Corners() [4]vector.Vec2 {
	return [4]vector.Vec2{
		{X: b.X, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y},
		{X: b.X + b.Width, Y: b.Y + b.Height},
		{X: b.X, Y: b.Y + b.Height},
	}
}

// Contains reports whether p lies in the box. Points on an edge are inside.
func (b AABB) Contains(p vector.Vec2) bool {
	return b.ContainsXY(p.X, p.Y)
}

func (b AABB) ContainsXY(x, y float32) bool {
	return x >= b.X && y >= b.Y && x <= b.X+b.Width && y <= b.Y+b.Height
}

func (b AABB) Area() float32 { return b.Width * b.Height }

func (b AABB) Perimeter() float32 { return 2*b.Width + 2*b.Height }

func (b AABB) Translate(dx, dy float32) AABB {
	b.X += dx
	b.Y += dy
	return b
}

func (b AABB) String() string {
	return fmt.Sprintf("AABB(origin=(%g,%g) extent=(%g,%g))", b.X, b.Y, b.Width, b.Height)
}
