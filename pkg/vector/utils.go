package vector

import (
	"github.com/chewxy/math32"
	"github.com/zeusync/geokit/pkg/gmath"
)

func Dot(x1, y1, x2, y2 float32) float32 {
	return x1*x2 + y1*y2
}

// PseudoCross is the z component of the 3D cross product of (x1,y1,0) and
// (x2,y2,0): the signed area of the spanned parallelogram. Positive when the
// second vector lies counter-clockwise of the first.
func PseudoCross(x1, y1, x2, y2 float32) float32 {
	return x1*y2 - x2*y1
}

func SquaredLength(x, y float32) float32 {
	return x*x + y*y
}

func Length(x, y float32) float32 {
	return math32.Sqrt(x*x + y*y)
}

// Angle returns the signed angle in (-π, π] that rotates (x1,y1) onto (x2,y2).
//
// Either vector nearly zero yields 0. Perpendicular vectors yield π/2, collinear
// vectors 0 or π depending on the sign of the dot product.
func Angle(x1, y1, x2, y2 float32) float32 {
	if gmath.IsNearlyZero(x1) && gmath.IsNearlyZero(y1) ||
		gmath.IsNearlyZero(x2) && gmath.IsNearlyZero(y2) {
		return 0
	}

	dot := Dot(x1, y1, x2, y2)
	if gmath.IsNearlyZero(dot) {
		return gmath.HalfPi
	}

	cross := PseudoCross(x1, y1, x2, y2)
	if gmath.IsNearlyZero(cross) {
		if dot < -gmath.Epsilon {
			return gmath.Pi
		}
		return 0
	}

	angle := gmath.Atan2(cross, dot)
	if angle <= -gmath.Pi {
		angle += gmath.TwoPi
	}
	return angle
}

// Slope returns y/x. A nearly vertical direction yields gmath.MaxFloat.
func Slope(x, y float32) float32 {
	if gmath.IsNearlyZero(x) {
		return gmath.MaxFloat
	}
	return y / x
}

func IsCollinear(x1, y1, x2, y2 float32) bool {
	return gmath.IsNearlyZero(PseudoCross(x1, y1, x2, y2))
}

func IsSameDirection(x1, y1, x2, y2 float32) bool {
	return IsCollinear(x1, y1, x2, y2) && Dot(x1, y1, x2, y2) > gmath.Epsilon
}

func IsOppositeDirection(x1, y1, x2, y2 float32) bool {
	return IsCollinear(x1, y1, x2, y2) && Dot(x1, y1, x2, y2) < -gmath.Epsilon
}

// Orientation returns the pseudo cross of (b-a) and (c-b): positive for a
// counter-clockwise (left) turn a→b→c, negative for a clockwise turn and zero
// for collinear points.
func Orientation(a, b, c Vec2) float32 {
	return PseudoCross(b.X-a.X, b.Y-a.Y, c.X-b.X, c.Y-b.Y)
}

// IsClockwise reports whether a→b→c turns right.
func IsClockwise(a, b, c Vec2) bool {
	return Orientation(a, b, c) < 0
}
