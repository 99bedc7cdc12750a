package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoflaresat/vecmath/scalar"
)

func TestVec3Constructors(t *testing.T) {
	assert.Equal(t, &Vec3{X: 1, Y: 2, Z: 3}, NewVec3(1, 2, 3))
	assert.Equal(t, &Vec3{}, Vec3Zero())
	assert.Equal(t, &Vec3{X: 1, Y: 1, Z: 1}, Vec3One())
	assert.Equal(t, &Vec3{Y: 1}, Vec3Up())
	assert.Equal(t, &Vec3{Z: -1}, Vec3Forward())
}

func TestVec3FromSlice(t *testing.T) {
	tests := []struct {
		name     string
		input    []float32
		expected *Vec3
	}{
		{"Exact length", []float32{1, 2, 3}, NewVec3(1, 2, 3)},
		{"Extra components ignored", []float32{1, 2, 3, 4, 5}, NewVec3(1, 2, 3)},
		{"Short slice leaves trailing zero", []float32{7}, NewVec3(7, 0, 0)},
		{"Two components", []float32{7, 8}, NewVec3(7, 8, 0)},
		{"Empty", nil, Vec3Zero()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Vec3FromSlice(tc.input))
		})
	}
}

func TestVec3At(t *testing.T) {
	v := NewVec3(4, 5, 6)
	assert.Equal(t, float32(4), v.At(0))
	assert.Equal(t, float32(5), v.At(1))
	assert.Equal(t, float32(6), v.At(2))
	assert.Panics(t, func() { v.At(3) })
}

func TestVec3FreeOpsDoNotMutateOperands(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	sum := Sum3(a, b)
	require.Equal(t, NewVec3(5, 7, 9), sum)
	assert.Equal(t, NewVec3(1, 2, 3), a)
	assert.Equal(t, NewVec3(4, 5, 6), b)

	assert.Equal(t, NewVec3(-3, -3, -3), Difference3(a, b))
	assert.Equal(t, NewVec3(4, 10, 18), Product3(a, b))
	assert.Equal(t, NewVec3(0.25, 0.4, 0.5), Quotient3(a, b))
	assert.Equal(t, NewVec3(1, 2, 3), a)
	assert.Equal(t, NewVec3(4, 5, 6), b)
}

func TestVec3FreeOpsExplicitDestination(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)
	out := Vec3Zero()

	got := Sum3(a, b, out)
	assert.Same(t, out, got)
	assert.Equal(t, NewVec3(5, 7, 9), out)
	assert.Equal(t, NewVec3(1, 2, 3), a)
}

func TestVec3InstanceOpsMutateReceiver(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	got := a.Add(b)
	assert.Same(t, a, got)
	assert.Equal(t, NewVec3(5, 7, 9), a)
	assert.Equal(t, NewVec3(4, 5, 6), b)

	a.Subtract(b)
	assert.Equal(t, NewVec3(1, 2, 3), a)
}

func TestVec3InstanceOpsExplicitDestination(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)
	out := Vec3Zero()

	got := a.Add(b, out)
	assert.Same(t, out, got)
	assert.Equal(t, NewVec3(5, 7, 9), out)
	// Receiver untouched when a destination is supplied.
	assert.Equal(t, NewVec3(1, 2, 3), a)
}

func TestVec3SelfAliasing(t *testing.T) {
	a := NewVec3(1, 2, 3)
	a.Add(a)
	assert.Equal(t, NewVec3(2, 4, 6), a)

	b := NewVec3(1, 2, 3)
	b.Add(b, b)
	assert.Equal(t, NewVec3(2, 4, 6), b)

	c := NewVec3(2, 3, 4)
	c.Multiply(c, c)
	assert.Equal(t, NewVec3(4, 9, 16), c)

	d := NewVec3(1, 0, 0)
	e := NewVec3(0, 1, 0)
	Cross3(d, e, d)
	assert.Equal(t, NewVec3(0, 0, 1), d)
	assert.Equal(t, NewVec3(0, 1, 0), e)
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	got := v.Normalize()
	assert.Same(t, v, got)
	assert.True(t, scalar.Equals(1, v.Length()))
	// Direction preserved.
	assert.True(t, v.Equals(NewVec3(0.6, 0.8, 0)))

	// Unit vectors pass through unchanged.
	u := NewVec3(1, 0, 0)
	assert.Equal(t, NewVec3(1, 0, 0), u.Normalize())

	// The zero vector stays zero instead of going NaN.
	z := Vec3Zero()
	z.Normalize()
	assert.Equal(t, Vec3Zero(), z)
}

func TestVec3NormalizeExplicitDestination(t *testing.T) {
	v := NewVec3(0, 0, 5)
	out := Vec3Zero()
	v.Normalize(out)
	assert.Equal(t, NewVec3(0, 0, 1), out)
	assert.Equal(t, NewVec3(0, 0, 5), v)
}

func TestVec3Direction(t *testing.T) {
	a := NewVec3(10, 0, 0)
	b := NewVec3(4, 0, 0)

	// Direction points from b toward a.
	assert.Equal(t, NewVec3(1, 0, 0), Direction3(a, b))
	assert.Equal(t, NewVec3(-1, 0, 0), Direction3(b, a))

	// Coincident points resolve to zero.
	assert.Equal(t, Vec3Zero(), Direction3(a, a))
}

func TestVec3Lerp(t *testing.T) {
	a := NewVec3(0, 2, -4)
	b := NewVec3(10, 4, 4)

	assert.Equal(t, a, Lerp3(a, b, 0))
	assert.Equal(t, b, Lerp3(a, b, 1))
	assert.Equal(t, NewVec3(5, 3, 0), Lerp3(a, b, 0.5))
	// Extrapolation is allowed.
	assert.Equal(t, NewVec3(20, 6, 12), Lerp3(a, b, 2))
}

func TestVec3DotCrossDistance(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, float32(32), Dot3(a, b))
	assert.Equal(t, NewVec3(0, 0, 1), Cross3(NewVec3(1, 0, 0), NewVec3(0, 1, 0)))
	assert.Equal(t, NewVec3(-3, 6, -3), Cross3(a, b))

	assert.Equal(t, float32(27), SquaredDistance3(a, b))
	assert.True(t, scalar.Equals(5, Distance3(NewVec3(0, 0, 0), NewVec3(3, 4, 0))))
}

func TestVec3NegateScaleDivide(t *testing.T) {
	v := NewVec3(1, -2, 3)
	v.Negate()
	assert.Equal(t, NewVec3(-1, 2, -3), v)

	out := Vec3Zero()
	v.Negate(out)
	assert.Equal(t, NewVec3(1, -2, 3), out)
	assert.Equal(t, NewVec3(-1, 2, -3), v)

	s := NewVec3(1, 2, 3)
	s.Scale(2)
	assert.Equal(t, NewVec3(2, 4, 6), s)

	s.Divide(NewVec3(2, 2, 2))
	assert.Equal(t, NewVec3(1, 2, 3), s)
}

func TestVec3CopyAndReset(t *testing.T) {
	v := NewVec3(1, 2, 3)
	c := v.Copy()

	require.NotSame(t, v, c)
	assert.True(t, c.Equals(v))

	// Mutating the copy leaves the original alone.
	c.Set(9, 9, 9)
	assert.Equal(t, NewVec3(1, 2, 3), v)

	v.Reset()
	assert.Equal(t, Vec3Zero(), v)
}

func TestVec3Equals(t *testing.T) {
	v := NewVec3(1, 2, 3)
	assert.True(t, v.Equals(v))
	assert.True(t, NewVec3(1000000, 2, 3).Equals(NewVec3(1000005, 2, 3)))
	assert.False(t, NewVec3(0.0001, 2, 3).Equals(NewVec3(0.00015, 2, 3)))
	assert.True(t, v.Equals(NewVec3(1.4, 2, 3), 0.5))
	assert.False(t, v.Equals(NewVec3(1.4, 2, 3)))
}

func TestVec3String(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", NewVec3(1, 2.5, -3).String())
	assert.Equal(t, "(0, 0, 0)", Vec3Zero().String())
}
