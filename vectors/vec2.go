package vectors

import (
	"fmt"

	"github.com/echoflaresat/vecmath/scalar"
)

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

// NewVec2 creates a vector from individual components.
func NewVec2(x, y float32) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Vec2FromSlice creates a vector from the leading components of s.
// Short slices leave the trailing components at zero; extra components are
// ignored. The shape of s is never validated.
func Vec2FromSlice(s []float32) *Vec2 {
	v := &Vec2{}
	switch {
	case len(s) >= 2:
		v.X, v.Y = s[0], s[1]
	case len(s) == 1:
		v.X = s[0]
	}
	return v
}

func Vec2Zero() *Vec2  { return &Vec2{} }
func Vec2One() *Vec2   { return &Vec2{X: 1, Y: 1} }
func Vec2Up() *Vec2    { return &Vec2{Y: 1} }
func Vec2Down() *Vec2  { return &Vec2{Y: -1} }
func Vec2Left() *Vec2  { return &Vec2{X: -1} }
func Vec2Right() *Vec2 { return &Vec2{X: 1} }

func pick2(dst []*Vec2, fallback *Vec2) *Vec2 {
	if len(dst) > 0 {
		return dst[0]
	}
	return fallback
}

// At returns the component at index i (0 = X, 1 = Y).
func (v *Vec2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("vectors: Vec2 index out of range")
}

// Set assigns both components and returns v.
func (v *Vec2) Set(x, y float32) *Vec2 {
	v.X, v.Y = x, y
	return v
}

// Copy writes v's components into dst, or into a new vector if dst is
// omitted. The copy shares no state with v.
func (v *Vec2) Copy(dst ...*Vec2) *Vec2 {
	out := pick2(dst, &Vec2{})
	out.X, out.Y = v.X, v.Y
	return out
}

// Reset zeroes all components in place.
func (v *Vec2) Reset() *Vec2 {
	v.X, v.Y = 0, 0
	return v
}

// Length returns the Euclidean length of v.
func (v *Vec2) Length() float32 {
	return scalar.Sqrt(v.SquaredLength())
}

// SquaredLength returns the squared Euclidean length of v.
func (v *Vec2) SquaredLength() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Add computes v + o into dst (the receiver if omitted). o is not mutated.
func (v *Vec2) Add(o *Vec2, dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	x, y := v.X+o.X, v.Y+o.Y
	out.X, out.Y = x, y
	return out
}

// Subtract computes v - o into dst (the receiver if omitted).
func (v *Vec2) Subtract(o *Vec2, dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	x, y := v.X-o.X, v.Y-o.Y
	out.X, out.Y = x, y
	return out
}

// Multiply computes the component-wise product v * o into dst (the
// receiver if omitted).
func (v *Vec2) Multiply(o *Vec2, dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	x, y := v.X*o.X, v.Y*o.Y
	out.X, out.Y = x, y
	return out
}

// Divide computes the component-wise quotient v / o into dst (the
// receiver if omitted).
func (v *Vec2) Divide(o *Vec2, dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	x, y := v.X/o.X, v.Y/o.Y
	out.X, out.Y = x, y
	return out
}

// Negate computes -v into dst (the receiver if omitted).
func (v *Vec2) Negate(dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	x, y := -v.X, -v.Y
	out.X, out.Y = x, y
	return out
}

// Scale computes v * s into dst (the receiver if omitted).
func (v *Vec2) Scale(s float32, dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	x, y := v.X*s, v.Y*s
	out.X, out.Y = x, y
	return out
}

// Normalize scales v to unit length, writing into dst (the receiver if
// omitted). A vector of length exactly 1 is copied through unchanged; the
// zero vector normalizes to the zero vector rather than dividing by zero.
func (v *Vec2) Normalize(dst ...*Vec2) *Vec2 {
	out := pick2(dst, v)
	switch l := v.Length(); l {
	case 1:
		v.Copy(out)
	case 0:
		out.Reset()
	default:
		v.Scale(1/l, out)
	}
	return out
}

// Equals reports whether every component pair is within tolerance
// (scalar.Epsilon if omitted) under the scalar.Equals rule.
func (v *Vec2) Equals(o *Vec2, tolerance ...float32) bool {
	return scalar.Equals(v.X, o.X, tolerance...) &&
		scalar.Equals(v.Y, o.Y, tolerance...)
}

// String formats v as "(x, y)".
func (v *Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Sum2 computes a + b into dst (a fresh vector if omitted).
// Neither operand is mutated.
func Sum2(a, b *Vec2, dst ...*Vec2) *Vec2 {
	return a.Add(b, pick2(dst, &Vec2{}))
}

// Difference2 computes a - b into dst (a fresh vector if omitted).
func Difference2(a, b *Vec2, dst ...*Vec2) *Vec2 {
	return a.Subtract(b, pick2(dst, &Vec2{}))
}

// Product2 computes the component-wise product a * b into dst (a fresh
// vector if omitted).
func Product2(a, b *Vec2, dst ...*Vec2) *Vec2 {
	return a.Multiply(b, pick2(dst, &Vec2{}))
}

// Quotient2 computes the component-wise quotient a / b into dst (a fresh
// vector if omitted).
func Quotient2(a, b *Vec2, dst ...*Vec2) *Vec2 {
	return a.Divide(b, pick2(dst, &Vec2{}))
}

// Lerp2 interpolates component-wise from a to b by amount into dst (a
// fresh vector if omitted). Amounts outside [0, 1] extrapolate.
func Lerp2(a, b *Vec2, amount float32, dst ...*Vec2) *Vec2 {
	out := pick2(dst, &Vec2{})
	x := scalar.Lerp(a.X, b.X, amount)
	y := scalar.Lerp(a.Y, b.Y, amount)
	out.X, out.Y = x, y
	return out
}

// Direction2 computes the unit vector pointing from b toward a into dst
// (a fresh vector if omitted). Coincident points yield the zero vector.
func Direction2(a, b *Vec2, dst ...*Vec2) *Vec2 {
	out := pick2(dst, &Vec2{})
	a.Subtract(b, out)
	return out.Normalize()
}

// Distance2 returns the Euclidean distance between a and b.
func Distance2(a, b *Vec2) float32 {
	return scalar.Sqrt(SquaredDistance2(a, b))
}

// SquaredDistance2 returns the squared Euclidean distance between a and b.
func SquaredDistance2(a, b *Vec2) float32 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Dot2 returns the dot product a · b.
func Dot2(a, b *Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Cross2 computes the 2D cross product of a and b embedded in 3-space:
// the result is (0, 0, a.X*b.Y - a.Y*b.X), the out-of-plane z component,
// written into dst (a fresh Vec3 if omitted).
func Cross2(a, b *Vec2, dst ...*Vec3) *Vec3 {
	out := pick3(dst, &Vec3{})
	z := a.X*b.Y - a.Y*b.X
	out.X, out.Y, out.Z = 0, 0, z
	return out
}
