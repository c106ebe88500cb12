package grove

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions, velocities, sizes, and offsets.
// Value methods return a new vector; pointer methods mutate in place.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient of v and o.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// AddScalar returns v with s added to both components.
func (v Vec2) AddScalar(s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }

// SubScalar returns v with s subtracted from both components.
func (v Vec2) SubScalar(s float64) Vec2 { return Vec2{v.X - s, v.Y - s} }

// Scale returns v multiplied uniformly by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// DivScalar returns v divided uniformly by s.
func (v Vec2) DivScalar(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// AddTo adds o to v in place.
func (v *Vec2) AddTo(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// SubFrom subtracts o from v in place.
func (v *Vec2) SubFrom(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

// MulWith multiplies v by o component-wise in place.
func (v *Vec2) MulWith(o Vec2) {
	v.X *= o.X
	v.Y *= o.Y
}

// DivBy divides v by o component-wise in place.
func (v *Vec2) DivBy(o Vec2) {
	v.X /= o.X
	v.Y /= o.Y
}

// ScaleBy multiplies both components of v by s in place.
func (v *Vec2) ScaleBy(s float64) {
	v.X *= s
	v.Y *= s
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize scales v in place to unit length. The zero vector stays zero.
func (v *Vec2) Normalize() {
	l := v.Len()
	if l == 0 {
		return
	}
	v.X /= l
	v.Y /= l
}

// Unit returns a unit-length copy of v.
func (v Vec2) Unit() Vec2 {
	v.Normalize()
	return v
}

// Equals reports whether both components match exactly.
func (v Vec2) Equals(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

// IsZero reports whether v is the zero vector.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
