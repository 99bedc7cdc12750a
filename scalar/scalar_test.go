package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name             string
		min, max, value  float32
		expected         float32
	}{
		{"Below range", 0, 1, -0.5, 0},
		{"Above range", 0, 1, 1.5, 1},
		{"Inside range", 0, 1, 0.25, 0.25},
		{"At min", -2, 2, -2, -2},
		{"At max", -2, 2, 2, 2},
		{"Negative range", -10, -5, 0, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clamp(tc.min, tc.max, tc.value))
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name             string
		min, max, amount float32
		expected         float32
	}{
		{"At zero", 2, 6, 0, 2},
		{"At one", 2, 6, 1, 6},
		{"Midpoint", 2, 6, 0.5, 4},
		{"Extrapolate above", 2, 6, 2, 10},
		{"Extrapolate below", 2, 6, -0.5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Lerp(tc.min, tc.max, tc.amount))
		})
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, float32(3), Distance(5, 2))
	assert.Equal(t, float32(3), Distance(2, 5))
	assert.Equal(t, float32(7), Distance(-3, 4))
	assert.Equal(t, float32(0), Distance(1.5, 1.5))
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float32
		expected bool
	}{
		{"Identical", 1.5, 1.5, true},
		{"Within absolute bound", 0.5, 0.5000001, true},
		{"Outside absolute bound", 0.0001, 0.00015, false},
		{"Small magnitudes use absolute bound", 0.0000001, 0.0000021, true},
		{"Large magnitudes scale relatively", 1000000, 1000005, true},
		{"Large magnitudes still bounded", 1000000, 1000100, false},
		{"Zero vs zero", 0, 0, true},
		{"Sign flip", 1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Equals(tc.a, tc.b))
		})
	}
}

func TestEqualsExplicitTolerance(t *testing.T) {
	assert.True(t, Equals(1, 1.05, 0.1))
	assert.False(t, Equals(1, 1.05, 0.01))
	// Tolerance scales with magnitude above 1.
	assert.True(t, Equals(100, 104, 0.05))
	assert.False(t, Equals(100, 110, 0.05))
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, Pi, ToRadians(180), 1e-6)
	assert.InDelta(t, HalfPi, ToRadians(90), 1e-6)
	assert.InDelta(t, 180, ToDegrees(Pi), 1e-4)
	assert.InDelta(t, 360, ToDegrees(TwoPi), 1e-4)

	// Round trip within float32 rounding.
	assert.True(t, Equals(42, ToDegrees(ToRadians(42))))
}

func TestFloat32Wrappers(t *testing.T) {
	assert.Equal(t, float32(3), Sqrt(9))
	assert.Equal(t, float32(2.5), Abs(-2.5))
	assert.Equal(t, float32(2.5), Abs(2.5))
	assert.Equal(t, float32(1), Floor(1.75))
	assert.Equal(t, float32(1), Mod(7, 3))
}
