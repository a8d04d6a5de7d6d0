// Package vector implements 2D vector algebra on float32 coordinates.
//
// Vec2 is a plain value type: every method returns a new value and nothing is
// cached. MutableVec2 wraps a Vec2 for in-place updates. The coordinate
// functions (Dot, PseudoCross, Angle, ...) are the primitives both build on.
package vector

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/zeusync/geokit/pkg/gmath"
)

type Vec2 struct {
	X, Y float32
}

// Axis and origin vectors
var (
	Zero      = Vec2{}
	XAxis     = Vec2{1, 0}
	YAxis     = Vec2{0, 1}
	NegXAxis  = Vec2{-1, 0}
	NegYAxis  = Vec2{0, -1}
	UnitScale = Vec2{1, 1}
)

func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float32) Vec2 { return Vec2{v.X * f, v.Y * f} }

// ScaleXY multiplies each coordinate by its own factor.
func (v Vec2) ScaleXY(fx, fy float32) Vec2 { return Vec2{v.X * fx, v.Y * fy} }

// AddScaled returns v + o*f.
func (v Vec2) AddScaled(f float32, o Vec2) Vec2 {
	return Vec2{v.X + o.X*f, v.Y + o.Y*f}
}

func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }

// Perpendicular returns v rotated counter-clockwise by 90 degrees.
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Dot(o Vec2) float32 { return Dot(v.X, v.Y, o.X, o.Y) }

func (v Vec2) PseudoCross(o Vec2) float32 { return PseudoCross(v.X, v.Y, o.X, o.Y) }

func (v Vec2) Length() float32 { return Length(v.X, v.Y) }

func (v Vec2) SquaredLength() float32 { return SquaredLength(v.X, v.Y) }

func (v Vec2) Distance(o Vec2) float32 { return Length(v.X-o.X, v.Y-o.Y) }

func (v Vec2) SquaredDistance(o Vec2) float32 { return SquaredLength(v.X-o.X, v.Y-o.Y) }

// Angle returns the signed angle from v to o, see Angle.
func (v Vec2) Angle(o Vec2) float32 { return Angle(v.X, v.Y, o.X, o.Y) }

// Slope returns y/x, or gmath.MaxFloat when x is nearly zero.
func (v Vec2) Slope() float32 { return Slope(v.X, v.Y) }

func (v Vec2) IsNearlyZero() bool {
	return gmath.IsNearlyZero(v.X) && gmath.IsNearlyZero(v.Y)
}

// IsNormalized reports whether the length is 1 within epsilon.
func (v Vec2) IsNormalized() bool {
	return gmath.IsNearlyEqualEps(v.SquaredLength(), 1, 2*gmath.Epsilon)
}

func (v Vec2) NearlyEquals(o Vec2) bool {
	return v.NearlyEqualsEps(o, gmath.Epsilon)
}

func (v Vec2) NearlyEqualsEps(o Vec2, epsilon float32) bool {
	return gmath.IsNearlyEqualEps(v.X, o.X, epsilon) && gmath.IsNearlyEqualEps(v.Y, o.Y, epsilon)
}

func (v Vec2) IsCollinear(o Vec2) bool { return IsCollinear(v.X, v.Y, o.X, o.Y) }

func (v Vec2) IsSameDirection(o Vec2) bool { return IsSameDirection(v.X, v.Y, o.X, o.Y) }

func (v Vec2) IsOppositeDirection(o Vec2) bool { return IsOppositeDirection(v.X, v.Y, o.X, o.Y) }

// Normalized returns v scaled to unit length. A nearly zero vector has no
// direction and is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	if v.IsNearlyZero() {
		return v
	}
	inv := 1 / math32.Sqrt(v.X*v.X+v.Y*v.Y)
	return Vec2{v.X * inv, v.Y * inv}
}

// Rotate rotates v counter-clockwise by radians using the lookup sin/cos.
func (v Vec2) Rotate(radians float32) Vec2 {
	cos := gmath.Cos(radians)
	sin := gmath.Sin(radians)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

func (v Vec2) RotateDegrees(degrees float32) Vec2 {
	return v.Rotate(gmath.ToRadians(degrees))
}

// Rotate90 turns v by a quarter turn without trigonometry.
func (v Vec2) Rotate90(clockwise bool) Vec2 {
	if clockwise {
		return Vec2{v.Y, -v.X}
	}
	return Vec2{-v.Y, v.X}
}

// Lerp interpolates linearly from v towards o.
func (v Vec2) Lerp(o Vec2, alpha float32) Vec2 {
	return Vec2{gmath.Lerp(v.X, o.X, alpha), gmath.Lerp(v.Y, o.Y, alpha)}
}

func (v Vec2) Min(o Vec2) Vec2 { return Vec2{gmath.Min(v.X, o.X), gmath.Min(v.Y, o.Y)} }

func (v Vec2) Max(o Vec2) Vec2 { return Vec2{gmath.Max(v.X, o.X), gmath.Max(v.Y, o.Y)} }

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g,%g)", v.X, v.Y)
}
