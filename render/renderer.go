package render

import (
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/vecmath/colors"
	"github.com/echoflaresat/vecmath/earth"
	"github.com/echoflaresat/vecmath/scalar"
	"github.com/echoflaresat/vecmath/texture"
	"github.com/echoflaresat/vecmath/vectors"
)

// Theme bundles the rim/warmth colors and texture paths for a scene.
type Theme struct {
	DayRim   colors.Color4
	NightRim colors.Color4
	Warm     colors.Color4
	Day      string
	Night    string
	Clouds   string
}

// Default theme colors.
var (
	DayRim   = colors.New(0.25, 0.60, 1.00, 1.0)
	NightRim = colors.New(0.05, 0.07, 0.20, 0.5)
	Warm     = colors.New(1.02, 1.00, 0.98, 1.0)
)

// Smoothstep performs a Hermite interpolation between 0 and 1 across [edge0, edge1].
// Returns 0 if x < edge0, 1 if x > edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	// Avoid division by zero
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}

	t := scalar.Clamp(0, 1, (x-edge0)/(edge1-edge0))
	return t * t * (3 - 2*t)
}

// BlendNightDayEnergyConserving blends day and night colors using an
// energy-conserving root-sum-square method to ensure a smooth transition.
func BlendNightDayEnergyConserving(CDay, CNight colors.Color4, light float32) colors.Color4 {
	r := scalar.Sqrt((1-light)*CNight.R*CNight.R + light*CDay.R*CDay.R)
	g := scalar.Sqrt((1-light)*CNight.G*CNight.G + light*CDay.G*CDay.G)
	b := scalar.Sqrt((1-light)*CNight.B*CNight.B + light*CDay.B*CDay.B)
	return colors.Color4{R: r, G: g, B: b, A: 1}
}

// RenderEarthSurface renders the visible surface color at the intersection point.
// It blends day/night textures, clouds, specular, glow, and rim lighting.
func RenderEarthSurface(ctx *RayContext) colors.Color4 {
	CDay := ctx.TexDay.Sample(ctx.HitPoint)
	CNight := ctx.TexNight.Sample(ctx.HitPoint)
	CClouds := ctx.TexClouds.Sample(ctx.HitPoint)

	// Compute how much sunlight is hitting the surface (soft transition)
	light := Smoothstep(-0.1, 0.1, ctx.SunLightIntensity)

	// 1. Blend day and night
	CBlended := BlendNightDayEnergyConserving(CDay, CNight, light)

	// 2. Blend clouds
	CBlended = BlendClouds(CBlended, CClouds, light, 2.0)

	// 3. Specular highlight (glint on oceans)
	CBlended = ApplySpecularHighlight(ctx, CBlended, CDay)

	return CBlended
}

// BlendClouds overlays cloud RGB texture onto the base surface color using inferred alpha.
// 'light' is the sunlight factor (0..1), 'boost' increases cloud visibility.
func BlendClouds(C, CCloud colors.Color4, light, boost float32) colors.Color4 {
	brightness := (CCloud.R + CCloud.G + CCloud.B) / 3
	cloudAlpha := brightness * light * boost

	r := C.R + (1-C.R)*CCloud.R*cloudAlpha
	g := C.G + (1-C.G)*CCloud.G*cloudAlpha
	b := C.B + (1-C.B)*CCloud.B*cloudAlpha
	a := C.A // preserve base alpha

	return colors.Color4{R: r, G: g, B: b, A: a}
}

// IsOcean returns true if the color is likely an ocean pixel,
// determined by whether blue is dominant relative to red and green.
func IsOcean(color colors.Color4, blueThreshold float32) bool {
	return (color.B > color.R*blueThreshold) && (color.B > color.G*blueThreshold)
}

// ApplySpecularHighlight adds a sun glint via a Blinn-Phong style specular model.
// Returns the adjusted RGB color (alpha unchanged).
func ApplySpecularHighlight(ctx *RayContext, Crgb, Cday colors.Color4) colors.Color4 {
	if ctx.SunLightIntensity <= 0 {
		return Crgb
	}

	var view, light, halfVec vectors.Vec3
	ctx.RayDirection.Negate(&view)
	view.Normalize()
	ctx.SunDir.Normalize(&light)
	vectors.Sum3(&view, &light, &halfVec)
	halfVec.Normalize()

	specAngle := scalar.Clamp(0, 1, vectors.Dot3(ctx.SurfaceNormal, &halfVec))
	specular := scalar.Pow(specAngle, 30)
	oceanFactor := scalar.Clamp(0, 1, (Cday.B-0.5*(Cday.R+Cday.G))*10)
	fresnel := scalar.Pow(1-ctx.ViewDotNormal, 2)

	reflectivity := oceanFactor

	strength := specular * reflectivity * (0.2 + 0.8*fresnel)

	sunColor := colors.New(1.0, 0.97, 0.9, 1.0)
	return Crgb.Add(sunColor.Scale(strength))
}

// GenerateSupersamplingOffsets returns n×n offsets in [-0.5, +0.5] for
// supersampling, as (dx, dy) pairs with pixel-center spacing.
func GenerateSupersamplingOffsets(n int) []vectors.Vec2 {
	if n <= 0 {
		return nil
	}
	step := 1 / float32(n)
	out := make([]vectors.Vec2, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := (float32(i)+0.5)*step - 0.5
			dy := (float32(j)+0.5)*step - 0.5
			out = append(out, vectors.Vec2{X: dx, Y: dy})
		}
	}
	return out
}

// ApplyAtmosphereOverlay simulates atmospheric scattering along the view ray.
// It accounts for Rayleigh scattering, Earth's shadow, backlighting, and rays
// passing through thin air.
func ApplyAtmosphereOverlay(ctx *RayContext, base colors.Color4) colors.Color4 {
	const H = 25.0          // scale height (km)
	const maxHeight = 120.0 // max atmosphere extent (km)
	const rayleighStrength = 0.008

	atmoRadius := float32(earth.Radius + maxHeight)

	// Step 1: Ray-atmosphere intersection
	hitAtmo, tEntryAtmo, tExitAtmo := intersectSphereFull(ctx.Origin, ctx.RayDirection, atmoRadius)
	if !hitAtmo || tExitAtmo < 0 {
		return base
	}

	// Step 2: Ray-ground intersection
	hitEarth, tEntryEarth, _ := intersectSphereFull(ctx.Origin, ctx.RayDirection, earth.Radius)

	// Clip to visible atmosphere
	tMin := tEntryAtmo
	if tMin < 0 {
		tMin = 0
	}
	tMax := tExitAtmo
	if hitEarth && tEntryEarth > 0 && tEntryEarth < tMax {
		tMax = tEntryEarth
	}
	if tMax <= tMin {
		return base
	}

	// Step 3: Shadow intersection
	hitShadow, tShadowEntry, tShadowExit := IntersectShadowCylinder(ctx.Origin, ctx.RayDirection, ctx.SunDir, earth.Radius)

	// Step 4: Compute total lit length
	litLen := tMax - tMin
	if hitShadow {
		shadowStart := max(tMin, tShadowEntry)
		shadowEnd := min(tMax, tShadowExit)
		if shadowEnd > shadowStart {
			litLen -= shadowEnd - shadowStart
		}
	}
	if litLen <= 0 {
		return base
	}

	// Step 5: Estimate average altitude
	tMid := (tMin + tMax) * 0.5
	var midPoint vectors.Vec3
	ctx.RayDirection.Scale(tMid, &midPoint)
	midPoint.Add(ctx.Origin)
	avgHeight := midPoint.Length() - earth.Radius
	avgDensity := scalar.Exp(-avgHeight / H)

	amount := scalar.Clamp(0, 1, litLen*avgDensity*rayleighStrength)

	// Rim color follows the sunlight at the closest approach.
	rimLight := Smoothstep(-0.1, 0.1, ctx.RimLightFactor)
	rim := ctx.theme.NightRim.Mix(ctx.theme.DayRim, rimLight)

	return base.Mix(rim, amount)
}

// IntersectShadowCylinder intersects the ray with the Earth's cylindrical
// shadow volume (axis opposite the sun direction). Returns the entry and
// exit parameters, clipped to the forward half of the ray.
func IntersectShadowCylinder(rayOrigin, rayDir, sunDir *vectors.Vec3, earthRadius float32) (bool, float32, float32) {
	var axis, dPerp, coPerp, tmp vectors.Vec3
	sunDir.Normalize(&axis)
	axis.Negate()

	// Project ray and offset onto the plane perpendicular to the axis
	dDotV := vectors.Dot3(rayDir, &axis)
	rayDir.Subtract(axis.Scale(dDotV, &tmp), &dPerp)

	coDotV := vectors.Dot3(rayOrigin, &axis)
	rayOrigin.Subtract(axis.Scale(coDotV, &tmp), &coPerp)

	a := vectors.Dot3(&dPerp, &dPerp)
	b := 2 * vectors.Dot3(&dPerp, &coPerp)
	c := vectors.Dot3(&coPerp, &coPerp) - earthRadius*earthRadius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return false, 0, 0
	}

	sqrtD := scalar.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	if t1 < 0 {
		return false, 0, 0
	}

	// The shadow extends only on the anti-sun side.
	rayDir.Scale(t0, &tmp)
	tmp.Add(rayOrigin)
	if vectors.Dot3(&tmp, &axis) < 0 {
		return false, 0, 0
	}

	entry := t0
	if entry < 0 {
		entry = 0
	}
	return true, entry, t1
}

// RenderScene loads the theme textures and raytraces the frame, splitting
// the image into row bands across numWorkers goroutines. Each worker owns
// its RayContext, so rendering shares no mutable vector state.
func RenderScene(
	camera Camera,
	sunDir *vectors.Vec3,
	outSize int,
	supersampling int,
	theme Theme,
	numWorkers int,
) (*image.NRGBA, error) {
	texDay, err := texture.Load(theme.Day)
	if err != nil {
		return nil, err
	}
	texNight, err := texture.Load(theme.Night)
	if err != nil {
		return nil, err
	}
	texClouds, err := texture.Load(theme.Clouds)
	if err != nil {
		return nil, err
	}

	if numWorkers < 1 {
		numWorkers = 1
	}
	if supersampling < 1 {
		supersampling = 1
	}

	origin := camera.Position
	altitudeKm := origin.Length() - earth.Radius

	newContext := func() *RayContext {
		return NewRayContext(origin, sunDir, altitudeKm, theme, texDay, texNight, texClouds)
	}
	return raytraceScenePixels(newContext, camera, outSize, supersampling, numWorkers), nil
}

func raytraceScenePixels(newContext func() *RayContext, camera Camera, outSize, supersampling, numWorkers int) *image.NRGBA {
	W, H := outSize, outSize
	offsets := GenerateSupersamplingOffsets(supersampling)
	N := float32(len(offsets))

	img := image.NewNRGBA(image.Rect(0, 0, W, H))

	var g errgroup.Group
	bandSize := (H + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		y0 := w * bandSize
		y1 := min(y0+bandSize, H)
		if y0 >= y1 {
			break
		}
		g.Go(func() error {
			ctx := newContext()
			var rayDir vectors.Vec3
			for y := y0; y < y1; y++ {
				for x := 0; x < W; x++ {
					colorAccum := colors.Color4{}
					for _, off := range offsets {
						camera.ComputeRay(float32(x)+off.X, float32(y)+off.Y, W, H, &rayDir)
						ctx.SetRayDirection(&rayDir)

						c := colors.Black()
						if ctx.T > 0 {
							c = RenderEarthSurface(ctx)
						}

						c = ApplyAtmosphereOverlay(ctx, c)
						colorAccum = colorAccum.Add(c)
					}

					colorOut := colorAccum.Scale(1 / N)

					// Warmth
					colorOut = colorOut.Mul(ctx.theme.Warm)

					// Gentle saturation boost
					colorOut = colorOut.BoostSaturation(1.5)

					colorOut = colorOut.CompositeOverBlack()
					img.SetNRGBA(x, y, colorOut.ToNRGBA())
				}
			}
			return nil
		})
	}
	// Workers only write disjoint rows; no error paths inside.
	_ = g.Wait()
	return img
}
