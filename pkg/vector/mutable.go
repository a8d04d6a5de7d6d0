package vector

// MutableVec2 updates a Vec2 in place. It holds no derived state, so the
// length is always computed from the current coordinates.
//
// A MutableVec2 must not be mutated from several goroutines at once.
type MutableVec2 struct {
	v Vec2
}

func NewMutable(x, y float32) *MutableVec2 {
	return &MutableVec2{v: Vec2{x, y}}
}

func MutableFrom(v Vec2) *MutableVec2 {
	return &MutableVec2{v: v}
}

// Vec returns a copy of the current value.
func (m *MutableVec2) Vec() Vec2 { return m.v }

func (m *MutableVec2) X() float32 { return m.v.X }

func (m *MutableVec2) Y() float32 { return m.v.Y }

func (m *MutableVec2) Length() float32 { return m.v.Length() }

func (m *MutableVec2) SetX(x float32) { m.v.X = x }

func (m *MutableVec2) SetY(y float32) { m.v.Y = y }

func (m *MutableVec2) Set(x, y float32) { m.v = Vec2{x, y} }

func (m *MutableVec2) SetVec(v Vec2) { m.v = v }

// Translate moves the vector by (dx, dy).
func (m *MutableVec2) Translate(dx, dy float32) {
	m.v.X += dx
	m.v.Y += dy
}

func (m *MutableVec2) Add(o Vec2) { m.Translate(o.X, o.Y) }

func (m *MutableVec2) Sub(o Vec2) { m.Translate(-o.X, -o.Y) }

// AddScaled adds o*f.
func (m *MutableVec2) AddScaled(f float32, o Vec2) { m.v = m.v.AddScaled(f, o) }

func (m *MutableVec2) Scale(fx, fy float32) { m.v = m.v.ScaleXY(fx, fy) }

func (m *MutableVec2) UniformScale(f float32) { m.v = m.v.Scale(f) }

func (m *MutableVec2) Rotate(radians float32) { m.v = m.v.Rotate(radians) }

func (m *MutableVec2) RotateDegrees(degrees float32) { m.v = m.v.RotateDegrees(degrees) }

func (m *MutableVec2) Rotate90(clockwise bool) { m.v = m.v.Rotate90(clockwise) }

func (m *MutableVec2) Rotate180() { m.v = m.v.Negate() }

// Normalize scales the vector to unit length. Nearly zero vectors are left
// untouched.
func (m *MutableVec2) Normalize() { m.v = m.v.Normalized() }

func (m *MutableVec2) Lerp(o Vec2, alpha float32) { m.v = m.v.Lerp(o, alpha) }

func (m *MutableVec2) String() string { return m.v.String() }
