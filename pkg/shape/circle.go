package shape

import (
	"fmt"

	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/vector"
)

type Circle struct {
	Center vector.Vec2
	Radius float32
}

func NewCircle(x, y, radius float32) Circle {
	return Circle{Center: vector.Vec2{X: x, Y: y}, Radius: gmath.Abs(radius)}
}

func CircleFrom(center *vector.Vec2, radius float32) (Circle, error) {
	if center == nil {
		return Circle{}, nilArgument("Circle", "center")
	}
	return NewCircle(center.X, center.Y, radius), nil
}

func (c Circle) Contains(p vector.Vec2) bool {
	return c.Center.SquaredDistance(p) <= c.Radius*c.Radius
}

func (c Circle) Bounds() AABB {
	return AABB{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, Width: 2 * c.Radius, Height: 2 * c.Radius}
}

func (c Circle) Area() float32 { return gmath.Pi * c.Radius * c.Radius }

func (c Circle) Perimeter() float32 { return gmath.TwoPi * c.Radius }

func (c Circle) String() string {
	return fmt.Sprintf("Circle(center=(%g,%g) r=%g)", c.Center.X, c.Center.Y, c.Radius)
}

// Ellipsoid is an axis-aligned ellipse. Width and Height are the semi-axes
// along x and y.
type Ellipsoid struct {
	Center        vector.Vec2
	Width, Height float32
}

func NewEllipsoid(x, y, width, height float32) Ellipsoid {
	return Ellipsoid{Center: vector.Vec2{X: x, Y: y}, Width: gmath.Abs(width), Height: gmath.Abs(height)}
}

func EllipsoidFrom(center *vector.Vec2, width, height float32) (Ellipsoid, error) {
	if center == nil {
		return Ellipsoid{}, nilArgument("Ellipsoid", "center")
	}
	return NewEllipsoid(center.X, center.Y, width, height), nil
}

// Contains tests ((x-cx)/w)² + ((y-cy)/h)² <= 1. A degenerate ellipse
// contains only its center.
func (e Ellipsoid) Contains(p vector.Vec2) bool {
	d := p.Sub(e.Center)
	if gmath.IsNearlyZero(e.Width) || gmath.IsNearlyZero(e.Height) {
		return d.IsNearlyZero()
	}
	nx := d.X / e.Width
	ny := d.Y / e.Height
	return nx*nx+ny*ny <= 1
}

func (e Ellipsoid) Bounds() AABB {
	return AABB{X: e.Center.X - e.Width, Y: e.Center.Y - e.Height, Width: 2 * e.Width, Height: 2 * e.Height}
}

func (e Ellipsoid) Area() float32 { return gmath.Pi * e.Width * e.Height }

// Perimeter uses Ramanujan's second approximation.
func (e Ellipsoid) Perimeter() float32 {
	a, b := e.Width, e.Height
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return gmath.Pi * (a + b) * (1 + 3*h/(10+gmath.Sqrt(4-3*h)))
}

func (e Ellipsoid) String() string {
	return fmt.Sprintf("Ellipsoid(center=(%g,%g) w=%g h=%g)", e.Center.X, e.Center.Y, e.Width, e.Height)
}
