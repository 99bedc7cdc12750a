package colors

import (
	"image/color"

	"github.com/echoflaresat/vecmath/scalar"
)

// Color4 is a linear RGBA color with float32 components in [0,1].
type Color4 struct {
	R, G, B, A float32
}

func New(r, g, b, a float32) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

func (c Color4) RGBA() (r, g, b, a uint32) {
	rf := scalar.Clamp(0, 1, c.R)
	gf := scalar.Clamp(0, 1, c.G)
	bf := scalar.Clamp(0, 1, c.B)
	af := scalar.Clamp(0, 1, c.A)

	// Convert to pre-multiplied 16-bit values
	return uint32(rf * af * 65535),
		uint32(gf * af * 65535),
		uint32(bf * af * 65535),
		uint32(af * 65535)
}

func FromStandardColor(c color.Color) Color4 {
	// Fast path: already a Color4
	if c4, ok := c.(Color4); ok {
		return c4
	}

	r16, g16, b16, a16 := c.RGBA()
	if a16 == 0 {
		return Color4{}
	}

	// De-premultiply and normalize to [0,1]
	invA := float32(0xFFFF) / float32(a16)
	return Color4{
		R: float32(r16) * invA / 65535.0,
		G: float32(g16) * invA / 65535.0,
		B: float32(b16) * invA / 65535.0,
		A: float32(a16) / 65535.0,
	}
}

func From8BitRgb(r, g, b, a byte) Color4 {
	return Color4{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

func Red() Color4 {
	return Color4{R: 1, A: 1}
}

func Green() Color4 {
	return Color4{G: 1, A: 1}
}

func Blue() Color4 {
	return Color4{B: 1, A: 1}
}

func White() Color4 {
	return Color4{R: 1, G: 1, B: 1, A: 1}
}

func Black() Color4 {
	return Color4{A: 1}
}

// Add returns c + o (component-wise).
func (c Color4) Add(o Color4) Color4 {
	return Color4{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns c * o (component-wise).
func (c Color4) Mul(o Color4) Color4 {
	return Color4{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale returns c * s (scalar).
func (c Color4) Scale(s float32) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A * s}
}

func (c Color4) BoostSaturation(factor float32) Color4 {
	avg := (c.R + c.G + c.B) / 3
	return Color4{
		R: avg + (c.R-avg)*factor,
		G: avg + (c.G-avg)*factor,
		B: avg + (c.B-avg)*factor,
		A: c.A,
	}
}

func (c Color4) CompositeOverBlack() Color4 {
	return Color4{c.R * c.A, c.G * c.A, c.B * c.A, 1.0}
}

func (c Color4) MulAlpha(a float32) Color4 {
	return Color4{R: c.R, G: c.G, B: c.B, A: c.A * a}
}

func (c Color4) WithAlpha(a float32) Color4 {
	return Color4{R: c.R, G: c.G, B: c.B, A: a}
}

func (c Color4) Pow(gamma float32) Color4 {
	return Color4{
		R: scalar.Pow(c.R, gamma),
		G: scalar.Pow(c.G, gamma),
		B: scalar.Pow(c.B, gamma),
		A: c.A, // leave alpha untouched
	}
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func (c Color4) Mix(o Color4, t float32) Color4 {
	return Color4{
		R: scalar.Lerp(c.R, o.R, t),
		G: scalar.Lerp(c.G, o.G, t),
		B: scalar.Lerp(c.B, o.B, t),
		A: scalar.Lerp(c.A, o.A, t),
	}
}

// MixAlpha returns the mix of c and o with weight t,
// taking o.A (alpha) into account. If o is fully transparent,
// the result is just c. If o is fully opaque, it's a normal
// linear interpolation between c and o.
func (c Color4) MixAlpha(o Color4, t float32) Color4 {
	w := t * o.A // effective weight of o
	return Color4{
		R: scalar.Lerp(c.R, o.R, w),
		G: scalar.Lerp(c.G, o.G, w),
		B: scalar.Lerp(c.B, o.B, w),
		A: scalar.Lerp(c.A, o.A, w),
	}
}

// Clamp01 clamps each component into [0,1].
func (c Color4) Clamp01() Color4 {
	return Color4{
		R: scalar.Clamp(0, 1, c.R),
		G: scalar.Clamp(0, 1, c.G),
		B: scalar.Clamp(0, 1, c.B),
		A: scalar.Clamp(0, 1, c.A),
	}
}

// ToNRGBA returns the color as 8-bit NRGBA, truncating toward zero.
func (c Color4) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		to8bit(c.A),
	}
}

// --- helpers ---

func to8bit(x float32) uint8 {
	return uint8(255.0 * scalar.Clamp(0, 1, x))
}
