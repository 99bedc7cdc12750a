package earth

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/echoflaresat/vecmath/vectors"
)

const Radius = 6371.0 // Earth radius in km (spherical approximation)

// SunDirectionECEF returns the unit vector pointing from the Earth's
// center toward the Sun in ECEF coordinates at time t.
func SunDirectionECEF(t time.Time) *vectors.Vec3 {
	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Step 1: Apparent RA/Dec of the Sun (in radians)
	ra, dec := solar.ApparentEquatorial(jd)

	// Step 2: Unit vector in ECI (Earth-centered inertial)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Step 3: Rotate ECI → ECEF using GMST
	gmst := sidereal.Apparent0UT(jd)
	cosGMST := gmst.Angle().Cos()
	sinGMST := gmst.Angle().Sin()

	xe := x*cosGMST + y*sinGMST
	ye := -x*sinGMST + y*cosGMST
	ze := z

	return vectors.NewVec3(float32(xe), float32(ye), float32(ze))
}

// GeodeticToECEF converts geodetic lat/lon (degrees) and altitude (km) to
// an ECEF position on the spherical Earth model.
func GeodeticToECEF(latDeg, lonDeg, altKm float64) *vectors.Vec3 {
	lat := unit.AngleFromDeg(latDeg)
	lon := unit.AngleFromDeg(lonDeg)

	r := Radius + altKm
	x := r * lat.Cos() * lon.Cos()
	y := r * lat.Cos() * lon.Sin()
	z := r * lat.Sin()

	return vectors.NewVec3(float32(x), float32(y), float32(z))
}
