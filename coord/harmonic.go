package coord

import (
	"math"

	"github.com/astroforma/refbody/body"
)

// GeodeticToEllipsoidalHarmonic converts a geodetic latitude (degrees) and
// ellipsoidal height (meters) to ellipsoidal-harmonic coordinates on the
// datum defined by e: the reduced latitude β (degrees) and the semiminor
// axis u (meters) of the confocal ellipsoid passing through the point.
//
// Points on the surface (height exactly zero) use the direct relation
//
//	tan β = (b/a)·tan φ,  u = b,
//
// which avoids the 0/0 cancellation of the general form. Off the surface the
// confocal ellipsoid through the point is found from the D and R
// intermediate terms expressed in the squared linear eccentricity, following
// the variable naming of Li & Götze (2001).
//
// Longitude is not an argument: the (β, u) coordinates of a rotationally
// symmetric body do not depend on it.
func GeodeticToEllipsoidalHarmonic(e *body.Ellipsoid, latitude, height float64) (reducedLatitude, u float64) {
	a := e.SemimajorAxis()
	b := e.SemiminorAxis()

	if height == 0 {
		reducedLatitude = degrees(math.Atan(b / a * math.Tan(radians(latitude))))

		return reducedLatitude, b
	}

	sinlat := math.Sin(radians(latitude))
	coslat := math.Sqrt(1 - sinlat*sinlat)
	bigE := e.LinearEccentricity()
	bigE2 := bigE * bigE

	// Reduced latitude of the projection of the point on the surface.
	beta0 := math.Atan2(b*sinlat, a*coslat)
	sinbeta0 := math.Sin(beta0)
	cosbeta0 := math.Sqrt(1 - sinbeta0*sinbeta0)

	// Squared distances to the equatorial plane and to the spin axis.
	zp2 := (b*sinbeta0 + height*sinlat) * (b*sinbeta0 + height*sinlat)
	rp2 := (a*cosbeta0 + height*coslat) * (a*cosbeta0 + height*coslat)

	bigD := (rp2 - zp2) / bigE2
	bigR := (rp2 + zp2) / bigE2

	// Squared cosine of the reduced latitude of the computation point.
	cosbeta2 := 0.5 + bigR/2 - math.Sqrt(0.25+bigR*bigR/4-bigD/2)
	// Guard against tiny negative round-off before the square roots.
	if cosbeta2 < 0 {
		cosbeta2 = 0
	} else if cosbeta2 > 1 {
		cosbeta2 = 1
	}

	u = math.Sqrt(rp2 + zp2 - bigE2*cosbeta2)
	reducedLatitude = math.Copysign(degrees(math.Acos(math.Sqrt(cosbeta2))), latitude)

	return reducedLatitude, u
}

// EllipsoidalHarmonicToGeodetic converts ellipsoidal-harmonic coordinates
// (reduced latitude β in degrees, confocal semiminor axis u in meters) back
// to a geodetic latitude (degrees) and ellipsoidal height (meters) on the
// datum defined by e.
func EllipsoidalHarmonicToGeodetic(e *body.Ellipsoid, reducedLatitude, u float64) (latitude, height float64) {
	a := e.SemimajorAxis()
	bigE := e.LinearEccentricity()
	ecc2 := e.FirstEccentricity() * e.FirstEccentricity()

	beta := radians(reducedLatitude)
	sinbeta, cosbeta := math.Sin(beta), math.Cos(beta)

	// Semimajor axis of the confocal ellipsoid through the point.
	ap := math.Sqrt(u*u + bigE*bigE)
	latitude = degrees(math.Atan2(ap*sinbeta, u*cosbeta))

	// Cylindrical coordinates of the point, then the height along the normal.
	zp := u * sinbeta
	rp := ap * cosbeta
	sinlat := math.Sin(radians(latitude))
	coslat := math.Cos(radians(latitude))
	height = rp*coslat + zp*sinlat - a*math.Sqrt(1-ecc2*sinlat*sinlat)

	return latitude, height
}
