package render

import (
	"github.com/echoflaresat/vecmath/earth"
	"github.com/echoflaresat/vecmath/scalar"
	"github.com/echoflaresat/vecmath/vectors"
)

// Camera models a pinhole camera in ECEF coordinates.
type Camera struct {
	FOVDeg     float32
	TanHalfFOV float32
	Position   *vectors.Vec3
	Forward    *vectors.Vec3
	Right      *vectors.Vec3
	Up         *vectors.Vec3
}

// NewCamera constructs a camera from geodetic lat/lon (deg), altitude (km),
// field of view (deg), an additional tilt about the camera's Right axis
// (deg) and a yaw about its Up axis (deg).
func NewCamera(latDeg, lonDeg, altKm, fovDeg, tiltDeg, yawDeg float64) Camera {
	pos := earth.GeodeticToECEF(latDeg, lonDeg, altKm)

	// FOV
	tanHalf := scalar.Tan(scalar.ToRadians(float32(fovDeg)) / 2)

	// Basis vectors
	fwd := pos.Copy().Normalize().Scale(-1) // look toward Earth center
	globalUp := vectors.NewVec3(0, 0, 1)
	right := vectors.Cross3(fwd, globalUp)
	if right.Length() < 1e-6 {
		right.Set(1, 0, 0) // fallback if near poles / parallel
	}
	right.Normalize()
	up := vectors.Cross3(right, fwd).Normalize()

	fwd, right, up = tiltCamera(fwd, right, up, 90)

	if yawDeg != 0 {
		fwd, right, up = yawCamera(fwd, right, up, float32(yawDeg))
	}

	fwd, right, up = tiltCamera(fwd, right, up, -90)

	if tiltDeg != 0 {
		fwd, right, up = tiltCamera(fwd, right, up, float32(tiltDeg))
	}
	return Camera{
		FOVDeg:     float32(fovDeg),
		TanHalfFOV: tanHalf,
		Position:   pos,
		Forward:    fwd,
		Right:      right,
		Up:         up,
	}
}

// rotateVec applies Rodrigues' rotation formula: rotate v around axis by (cosT, sinT).
func rotateVec(v, axis *vectors.Vec3, cosT, sinT float32) *vectors.Vec3 {
	// v*cos + (axis x v)*sin + axis*(axis·v)*(1-cos)
	out := v.Scale(cosT, vectors.Vec3Zero())
	tmp := vectors.Cross3(axis, v)
	out.Add(tmp.Scale(sinT))
	out.Add(axis.Scale(vectors.Dot3(axis, v)*(1-cosT), tmp))
	return out
}

// tiltCamera rotates forward/up around the Right axis by tiltDeg.
func tiltCamera(fwd, right, up *vectors.Vec3, tiltDeg float32) (*vectors.Vec3, *vectors.Vec3, *vectors.Vec3) {
	theta := scalar.ToRadians(tiltDeg)
	c, s := scalar.Cos(theta), scalar.Sin(theta)

	fwdNew := rotateVec(fwd, right, c, s).Normalize()
	upNew := rotateVec(up, right, c, s).Normalize()
	return fwdNew, right, upNew
}

// yawCamera rotates forward/right around the Up axis by yawDeg.
// This is a left-right (horizontal) camera pan.
func yawCamera(fwd, right, up *vectors.Vec3, yawDeg float32) (*vectors.Vec3, *vectors.Vec3, *vectors.Vec3) {
	theta := scalar.ToRadians(yawDeg)
	c, s := scalar.Cos(theta), scalar.Sin(theta)

	fwdNew := rotateVec(fwd, up, c, s).Normalize()
	rightNew := rotateVec(right, up, c, s).Normalize()
	return fwdNew, rightNew, up
}

// ComputeRay writes the normalized viewing direction for pixel (i,j) into
// dst (a fresh vector if omitted), given the image dimensions. i,j can be
// fractional (for supersampling). Passing a destination keeps the
// per-pixel loop allocation-free.
func (c Camera) ComputeRay(i, j float32, width, height int, dst ...*vectors.Vec3) *vectors.Vec3 {
	out := vectors.Vec3Zero()
	if len(dst) > 0 {
		out = dst[0]
	}

	w := float32(width)
	h := float32(height)

	// NDC in [-1, +1] (centered), flip Y to make +up in screen space.
	xNDC := (i - (w-1)/2.0) / ((w - 1) / 2.0)
	yNDC := -((j - (h-1)/2.0) / ((h - 1) / 2.0))

	xPlane := xNDC * c.TanHalfFOV
	yPlane := yNDC * c.TanHalfFOV

	// dir = right*x + up*y + forward
	var tmp vectors.Vec3
	c.Right.Scale(xPlane, out)
	out.Add(c.Up.Scale(yPlane, &tmp))
	out.Add(c.Forward)

	return out.Normalize()
}
