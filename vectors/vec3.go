package vectors

import (
	"fmt"

	"github.com/echoflaresat/vecmath/scalar"
)

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a vector from individual components.
func NewVec3(x, y, z float32) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// Vec3FromSlice creates a vector from the leading components of s.
// Short slices leave the trailing components at zero; extra components are
// ignored. The shape of s is never validated.
func Vec3FromSlice(s []float32) *Vec3 {
	v := &Vec3{}
	switch {
	case len(s) >= 3:
		v.X, v.Y, v.Z = s[0], s[1], s[2]
	case len(s) == 2:
		v.X, v.Y = s[0], s[1]
	case len(s) == 1:
		v.X = s[0]
	}
	return v
}

func Vec3Zero() *Vec3     { return &Vec3{} }
func Vec3One() *Vec3      { return &Vec3{X: 1, Y: 1, Z: 1} }
func Vec3Up() *Vec3       { return &Vec3{Y: 1} }
func Vec3Down() *Vec3     { return &Vec3{Y: -1} }
func Vec3Left() *Vec3     { return &Vec3{X: -1} }
func Vec3Right() *Vec3    { return &Vec3{X: 1} }
func Vec3Forward() *Vec3  { return &Vec3{Z: -1} }
func Vec3Backward() *Vec3 { return &Vec3{Z: 1} }

func pick3(dst []*Vec3, fallback *Vec3) *Vec3 {
	if len(dst) > 0 {
		return dst[0]
	}
	return fallback
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z).
func (v *Vec3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vectors: Vec3 index out of range")
}

// Set assigns all three components and returns v.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Copy writes v's components into dst, or into a new vector if dst is
// omitted. The copy shares no state with v.
func (v *Vec3) Copy(dst ...*Vec3) *Vec3 {
	out := pick3(dst, &Vec3{})
	out.X, out.Y, out.Z = v.X, v.Y, v.Z
	return out
}

// Reset zeroes all components in place.
func (v *Vec3) Reset() *Vec3 {
	v.X, v.Y, v.Z = 0, 0, 0
	return v
}

// Length returns the Euclidean length of v.
func (v *Vec3) Length() float32 {
	return scalar.Sqrt(v.SquaredLength())
}

// SquaredLength returns the squared Euclidean length of v.
func (v *Vec3) SquaredLength() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Add computes v + o into dst (the receiver if omitted). o is not mutated.
func (v *Vec3) Add(o *Vec3, dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
	x, y, z := v.X+o.X, v.Y+o.Y, v.Z+o.Z
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Subtract computes v - o into dst (the receiver if omitted).
func (v *Vec3) Subtract(o *Vec3, dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
	x, y, z := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Multiply computes the component-wise product v * o into dst (the
// receiver if omitted).
func (v *Vec3) Multiply(o *Vec3, dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
	x, y, z := v.X*o.X, v.Y*o.Y, v.Z*o.Z
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Divide computes the component-wise quotient v / o into dst (the
// receiver if omitted).
func (v *Vec3) Divide(o *Vec3, dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
	x, y, z := v.X/o.X, v.Y/o.Y, v.Z/o.Z
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Negate computes -v into dst (the receiver if omitted).
func (v *Vec3) Negate(dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
	x, y, z := -v.X, -v.Y, -v.Z
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Scale computes v * s into dst (the receiver if omitted).
func (v *Vec3) Scale(s float32, dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
	x, y, z := v.X*s, v.Y*s, v.Z*s
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Normalize scales v to unit length, writing into dst (the receiver if
// omitted). A vector of length exactly 1 is copied through unchanged; the
// zero vector normalizes to the zero vector rather than dividing by zero.
func (v *Vec3) Normalize(dst ...*Vec3) *Vec3 {
	out := pick3(dst, v)
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
func (v *Vec3) Equals(o *Vec3, tolerance ...float32) bool {
	return scalar.Equals(v.X, o.X, tolerance...) &&
		scalar.Equals(v.Y, o.Y, tolerance...) &&
		scalar.Equals(v.Z, o.Z, tolerance...)
}

// String formats v as "(x, y, z)".
func (v *Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Sum3 computes a + b into dst (a fresh vector if omitted).
// Neither operand is mutated.
func Sum3(a, b *Vec3, dst ...*Vec3) *Vec3 {
	return a.Add(b, pick3(dst, &Vec3{}))
}

// Difference3 computes a - b into dst (a fresh vector if omitted).
func Difference3(a, b *Vec3, dst ...*Vec3) *Vec3 {
	return a.Subtract(b, pick3(dst, &Vec3{}))
}

// Product3 computes the component-wise product a * b into dst (a fresh
// vector if omitted).
func Product3(a, b *Vec3, dst ...*Vec3) *Vec3 {
	return a.Multiply(b, pick3(dst, &Vec3{}))
}

// Quotient3 computes the component-wise quotient a / b into dst (a fresh
// vector if omitted).
func Quotient3(a, b *Vec3, dst ...*Vec3) *Vec3 {
	return a.Divide(b, pick3(dst, &Vec3{}))
}

// Lerp3 interpolates component-wise from a to b by amount into dst (a
// fresh vector if omitted). Amounts outside [0, 1] extrapolate.
func Lerp3(a, b *Vec3, amount float32, dst ...*Vec3) *Vec3 {
	out := pick3(dst, &Vec3{})
	x := scalar.Lerp(a.X, b.X, amount)
	y := scalar.Lerp(a.Y, b.Y, amount)
	z := scalar.Lerp(a.Z, b.Z, amount)
	out.X, out.Y, out.Z = x, y, z
	return out
}

// Direction3 computes the unit vector pointing from b toward a into dst
// (a fresh vector if omitted). Coincident points yield the zero vector.
func Direction3(a, b *Vec3, dst ...*Vec3) *Vec3 {
	out := pick3(dst, &Vec3{})
	a.Subtract(b, out)
	return out.Normalize()
}

// Distance3 returns the Euclidean distance between a and b.
func Distance3(a, b *Vec3) float32 {
	return scalar.Sqrt(SquaredDistance3(a, b))
}

// SquaredDistance3 returns the squared Euclidean distance between a and b.
func SquaredDistance3(a, b *Vec3) float32 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// Dot3 returns the dot product a · b.
func Dot3(a, b *Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross3 computes the cross product a × b into dst (a fresh vector if
// omitted).
func Cross3(a, b *Vec3, dst ...*Vec3) *Vec3 {
	out := pick3(dst, &Vec3{})
	x := a.Y*b.Z - a.Z*b.Y
	y := a.Z*b.X - a.X*b.Z
	z := a.X*b.Y - a.Y*b.X
	out.X, out.Y, out.Z = x, y, z
	return out
}
