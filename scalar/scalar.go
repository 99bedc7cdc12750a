// Package scalar provides the float32 scalar helpers shared by the vector
// types: angle constants, interpolation, and the tolerance-based equality
// rule used as the default comparison threshold across the library.
package scalar

import "math"

const (
	// Epsilon is the default tolerance for Equals.
	Epsilon = 0.00001

	Pi     = math.Pi
	TwoPi  = 2 * math.Pi
	HalfPi = math.Pi / 2

	// DegToRad and RadToDeg are the multiplicative conversion factors
	// between degrees and radians.
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// Clamp restricts value to the inclusive range [min, max].
// Assumes min <= max; the bounds are not validated.
func Clamp(min, max, value float32) float32 {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

// Lerp linearly interpolates between min and max by amount.
// Amounts outside [0, 1] extrapolate.
func Lerp(min, max, amount float32) float32 {
	return min + amount*(max-min)
}

// Distance returns the absolute difference |a - b|.
func Distance(a, b float32) float32 {
	return Abs(a - b)
}

// Equals reports whether a and b differ by at most the given tolerance
// (Epsilon if omitted), scaled by max(1, |a|, |b|). Small magnitudes are
// therefore compared against an absolute bound while large magnitudes are
// compared relatively.
func Equals(a, b float32, tolerance ...float32) bool {
	tol := float32(Epsilon)
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	scale := float32(1)
	if aa := Abs(a); aa > scale {
		scale = aa
	}
	if ab := Abs(b); ab > scale {
		scale = ab
	}
	return Abs(a-b) <= tol*scale
}

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * DegToRad
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * RadToDeg
}

// Sqrt is a float32 wrapper over math.Sqrt.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Abs returns |x|.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sin is a float32 wrapper over math.Sin.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos is a float32 wrapper over math.Cos.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Tan is a float32 wrapper over math.Tan.
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Pow is a float32 wrapper over math.Pow.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Exp is a float32 wrapper over math.Exp.
func Exp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// Floor is a float32 wrapper over math.Floor.
func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Mod is a float32 wrapper over math.Mod.
func Mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
