package vectors

import (
	"fmt"

	"github.com/echoflaresat/vecmath/scalar"
)

// Vec4 is a 4-component float32 vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewVec4 creates a vector from individual components.
func NewVec4(x, y, z, w float32) *Vec4 {
	return &Vec4{X: x, Y: y, Z: z, W: w}
}

// Vec4FromSlice creates a vector from the leading components of s.
// Short slices leave the trailing components at zero; extra components are
// ignored. The shape of s is never validated.
func Vec4FromSlice(s []float32) *Vec4 {
	v := &Vec4{}
	switch {
	case len(s) >= 4:
		v.X, v.Y, v.Z, v.W = s[0], s[1], s[2], s[3]
	case len(s) == 3:
		v.X, v.Y, v.Z = s[0], s[1], s[2]
	case len(s) == 2:
		v.X, v.Y = s[0], s[1]
	case len(s) == 1:
		v.X = s[0]
	}
	return v
}

func Vec4Zero() *Vec4  { return &Vec4{} }
func Vec4One() *Vec4   { return &Vec4{X: 1, Y: 1, Z: 1, W: 1} }
func Vec4UnitX() *Vec4 { return &Vec4{X: 1} }
func Vec4UnitY() *Vec4 { return &Vec4{Y: 1} }
func Vec4UnitZ() *Vec4 { return &Vec4{Z: 1} }
func Vec4UnitW() *Vec4 { return &Vec4{W: 1} }

func pick4(dst []*Vec4, fallback *Vec4) *Vec4 {
	if len(dst) > 0 {
		return dst[0]
	}
	return fallback
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z, 3 = W).
func (v *Vec4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("vectors: Vec4 index out of range")
}

// Set assigns all four components and returns v.
func (v *Vec4) Set(x, y, z, w float32) *Vec4 {
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// Copy writes v's components into dst, or into a new vector if dst is
// omitted. The copy shares no state with v.
func (v *Vec4) Copy(dst ...*Vec4) *Vec4 {
	out := pick4(dst, &Vec4{})
	out.X, out.Y, out.Z, out.W = v.X, v.Y, v.Z, v.W
	return out
}

// Reset zeroes all components in place.
func (v *Vec4) Reset() *Vec4 {
	v.X, v.Y, v.Z, v.W = 0, 0, 0, 0
	return v
}

// Length returns the Euclidean length of v.
func (v *Vec4) Length() float32 {
	return scalar.Sqrt(v.SquaredLength())
}

// SquaredLength returns the squared Euclidean length of v.
func (v *Vec4) SquaredLength() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Add computes v + o into dst (the receiver if omitted). o is not mutated.
func (v *Vec4) Add(o *Vec4, dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
	x, y, z, w := v.X+o.X, v.Y+o.Y, v.Z+o.Z, v.W+o.W
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Subtract computes v - o into dst (the receiver if omitted).
func (v *Vec4) Subtract(o *Vec4, dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
	x, y, z, w := v.X-o.X, v.Y-o.Y, v.Z-o.Z, v.W-o.W
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Multiply computes the component-wise product v * o into dst (the
// receiver if omitted).
func (v *Vec4) Multiply(o *Vec4, dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
	x, y, z, w := v.X*o.X, v.Y*o.Y, v.Z*o.Z, v.W*o.W
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Divide computes the component-wise quotient v / o into dst (the
// receiver if omitted).
func (v *Vec4) Divide(o *Vec4, dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
	x, y, z, w := v.X/o.X, v.Y/o.Y, v.Z/o.Z, v.W/o.W
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Negate computes -v into dst (the receiver if omitted).
func (v *Vec4) Negate(dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
	x, y, z, w := -v.X, -v.Y, -v.Z, -v.W
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Scale computes v * s into dst (the receiver if omitted).
func (v *Vec4) Scale(s float32, dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
	x, y, z, w := v.X*s, v.Y*s, v.Z*s, v.W*s
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Normalize scales v to unit length, writing into dst (the receiver if
// omitted). A vector of length exactly 1 is copied through unchanged; the
// zero vector normalizes to the zero vector rather than dividing by zero.
func (v *Vec4) Normalize(dst ...*Vec4) *Vec4 {
	out := pick4(dst, v)
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
func (v *Vec4) Equals(o *Vec4, tolerance ...float32) bool {
	return scalar.Equals(v.X, o.X, tolerance...) &&
		scalar.Equals(v.Y, o.Y, tolerance...) &&
		scalar.Equals(v.Z, o.Z, tolerance...) &&
		scalar.Equals(v.W, o.W, tolerance...)
}

// String formats v as "(x, y, z, w)".
func (v *Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Sum4 computes a + b into dst (a fresh vector if omitted).
// Neither operand is mutated.
func Sum4(a, b *Vec4, dst ...*Vec4) *Vec4 {
	return a.Add(b, pick4(dst, &Vec4{}))
}

// Difference4 computes a - b into dst (a fresh vector if omitted).
func Difference4(a, b *Vec4, dst ...*Vec4) *Vec4 {
	return a.Subtract(b, pick4(dst, &Vec4{}))
}

// Product4 computes the component-wise product a * b into dst (a fresh
// vector if omitted).
func Product4(a, b *Vec4, dst ...*Vec4) *Vec4 {
	return a.Multiply(b, pick4(dst, &Vec4{}))
}

// Quotient4 computes the component-wise quotient a / b into dst (a fresh
// vector if omitted).
func Quotient4(a, b *Vec4, dst ...*Vec4) *Vec4 {
	return a.Divide(b, pick4(dst, &Vec4{}))
}

// Lerp4 interpolates component-wise from a to b by amount into dst (a
// fresh vector if omitted). Amounts outside [0, 1] extrapolate.
func Lerp4(a, b *Vec4, amount float32, dst ...*Vec4) *Vec4 {
	out := pick4(dst, &Vec4{})
	x := scalar.Lerp(a.X, b.X, amount)
	y := scalar.Lerp(a.Y, b.Y, amount)
	z := scalar.Lerp(a.Z, b.Z, amount)
	w := scalar.Lerp(a.W, b.W, amount)
	out.X, out.Y, out.Z, out.W = x, y, z, w
	return out
}

// Direction4 computes the unit vector pointing from b toward a into dst
// (a fresh vector if omitted). Coincident points yield the zero vector.
func Direction4(a, b *Vec4, dst ...*Vec4) *Vec4 {
	out := pick4(dst, &Vec4{})
	a.Subtract(b, out)
	return out.Normalize()
}

// Distance4 returns the Euclidean distance between a and b.
func Distance4(a, b *Vec4) float32 {
	return scalar.Sqrt(SquaredDistance4(a, b))
}

// SquaredDistance4 returns the squared Euclidean distance between a and b.
func SquaredDistance4(a, b *Vec4) float32 {
	dx, dy, dz, dw := a.X-b.X, a.Y-b.Y, a.Z-b.Z, a.W-b.W
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// Dot4 returns the dot product a · b.
func Dot4(a, b *Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}
