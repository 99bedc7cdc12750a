package render

import (
	"github.com/echoflaresat/vecmath/earth"
	"github.com/echoflaresat/vecmath/scalar"
	"github.com/echoflaresat/vecmath/texture"
	"github.com/echoflaresat/vecmath/vectors"
)

// RayContext carries per-ray state and constants needed by the shader.
// It owns its vectors and reuses them across rays, so a single context
// must not be shared between concurrent workers.
type RayContext struct {
	Origin            *vectors.Vec3
	SunDir            *vectors.Vec3
	AltitudeKm        float32
	RayDirection      *vectors.Vec3
	DistToCenter      float32
	T                 float32
	HitPoint          *vectors.Vec3
	SurfaceNormal     *vectors.Vec3
	RimLightFactor    float32
	SunLightIntensity float32
	ViewDotNormal     float32
	theme             Theme
	TexDay            texture.Texture
	TexNight          texture.Texture
	TexClouds         texture.Texture

	scratch vectors.Vec3
}

func NewRayContext(
	origin *vectors.Vec3,
	sunDir *vectors.Vec3,
	altitudeKm float32,
	theme Theme,
	texDay texture.Texture,
	texNight texture.Texture,
	texClouds texture.Texture,
) *RayContext {
	return &RayContext{
		Origin:        origin,
		SunDir:        sunDir,
		AltitudeKm:    altitudeKm,
		RayDirection:  vectors.Vec3Zero(),
		HitPoint:      vectors.Vec3Zero(),
		SurfaceNormal: vectors.Vec3Zero(),
		theme:         theme,
		TexDay:        texDay,
		TexNight:      texNight,
		TexClouds:     texClouds,
	}
}

// SetRayDirection updates the per-ray fields for the given view direction.
// All intermediate vectors land in preallocated destinations; nothing
// escapes to the heap per ray.
func (c *RayContext) SetRayDirection(rayDirection *vectors.Vec3) {
	rayDirection.Copy(c.RayDirection)

	// Closest approach of the ray to the origin (Earth center).
	dotOriginRay := vectors.Dot3(c.Origin, c.RayDirection)
	closest := c.RayDirection.Scale(dotOriginRay, &c.scratch)
	c.Origin.Subtract(closest, closest)
	c.DistToCenter = closest.Length()

	// Rim light factor = cosine between sunDir and normalized closest vector.
	if c.DistToCenter > 0 {
		c.RimLightFactor = vectors.Dot3(closest.Scale(1/c.DistToCenter), c.SunDir)
	} else {
		c.RimLightFactor = 0
	}

	// Ray–sphere intersection with Earth (spherical).
	c.T = intersectSphere(c.Origin, c.RayDirection, earth.Radius)

	// Hit point and surface normal (normalized even if T<0, so the rim
	// shader sees a well-defined direction).
	c.RayDirection.Scale(c.T, c.HitPoint)
	c.HitPoint.Add(c.Origin)
	c.HitPoint.Normalize(c.SurfaceNormal)

	// Lighting cosines used by the shader.
	c.SunLightIntensity = vectors.Dot3(c.SurfaceNormal, c.SunDir)
	c.ViewDotNormal = -vectors.Dot3(c.SurfaceNormal, c.RayDirection)
}

// intersectSphere calculates the intersection of a ray (O + t*D) with a
// sphere of radius r centered at the origin. Returns the closest positive
// t, or -1.0 if there is no intersection.
func intersectSphere(O, D *vectors.Vec3, r float32) float32 {
	// b = 2*O·D, c = O·O - r^2, solve t^2 + b t + c = 0
	OdotD := vectors.Dot3(O, D)
	b := 2 * OdotD
	c := vectors.Dot3(O, O) - r*r

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return -1.0
	}

	sqrtDisc := scalar.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / 2
	t2 := (-b + sqrtDisc) / 2

	if t1 > 0 && t2 > 0 {
		if t1 < t2 {
			return t1
		}
		return t2
	}
	if t1 > 0 {
		return t1
	}
	if t2 > 0 {
		return t2
	}
	return -1.0
}

// intersectSphereFull is like intersectSphere but reports both crossing
// parameters, letting the atmosphere shader clip a segment to the sphere.
func intersectSphereFull(O, D *vectors.Vec3, r float32) (bool, float32, float32) {
	b := 2 * vectors.Dot3(O, D)
	c := vectors.Dot3(O, O) - r*r

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return false, 0, 0
	}

	sqrtDisc := scalar.Sqrt(discriminant)
	tEntry := (-b - sqrtDisc) / 2
	tExit := (-b + sqrtDisc) / 2
	return true, tEntry, tExit
}
