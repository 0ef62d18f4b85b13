package gravity

import (
	"math"

	"github.com/astroforma/refbody/body"
	"github.com/astroforma/refbody/coord"
)

// emm returns the auxiliary quantity m = ω²·a²·b / GM used by the closed
// forms for gravity at the equator and at the poles.
func emm(e *body.Ellipsoid) float64 {
	omega := e.AngularVelocity()

	return omega * omega * e.SemimajorAxis() * e.SemimajorAxis() *
		e.SemiminorAxis() / e.GeocentricGravConst()
}

// legendreQ evaluates the Legendre-type auxiliary function
//
//	q(u) = ½·[ (1 + 3u²/E²)·atan(E/u) − 3u/E ]
//
// of the closed-form normal gravitational potential.
func legendreQ(u, bigE float64) float64 {
	return 0.5 * ((1+3*u*u/(bigE*bigE))*math.Atan2(bigE, u) - 3*u/bigE)
}

// legendreQPrime evaluates the companion function
//
//	q′(u) = 3·(1 + u²/E²)·[1 − (u/E)·atan(E/u)] − 1
//
// of the closed-form normal gravity.
func legendreQPrime(u, bigE float64) float64 {
	return 3*(1+u*u/(bigE*bigE))*(1-u/bigE*math.Atan2(bigE, u)) - 1
}

// GravityEquator returns the norm of the gravity acceleration vector
// (gravitational + centrifugal) at the equator on the surface of the
// ellipsoid. Always SI: m/s².
func GravityEquator(e *body.Ellipsoid) float64 {
	b := e.SemiminorAxis()
	bigE := e.LinearEccentricity()
	ratio := b / bigE
	arctan := math.Atan2(bigE, b)
	m := emm(e)
	aux := e.SecondEccentricity() *
		(3*(1+ratio*ratio)*(1-ratio*arctan) - 1) /
		(3 * ((1+3*ratio*ratio)*arctan - 3*ratio))

	return e.GeocentricGravConst() * (1 - m - m*aux) / (e.SemimajorAxis() * b)
}

// GravityPole returns the norm of the gravity acceleration vector
// (gravitational + centrifugal) at the poles on the surface of the
// ellipsoid. Always SI: m/s².
func GravityPole(e *body.Ellipsoid) float64 {
	b := e.SemiminorAxis()
	bigE := e.LinearEccentricity()
	ratio := b / bigE
	arctan := math.Atan2(bigE, b)
	m := emm(e)
	aux := e.SecondEccentricity() *
		(3*(1+ratio*ratio)*(1-ratio*arctan) - 1) /
		(1.5 * ((1+3*ratio*ratio)*arctan - 3*ratio))

	a := e.SemimajorAxis()

	return e.GeocentricGravConst() * (1 + m*aux) / (a * a)
}

// ellipsoidNormalGravity computes the magnitude of the gradient of the
// gravity potential of the ellipsoid at a geodetic latitude (degrees) and
// ellipsoidal height (meters), using the closed form of Lakshmanan (1991) as
// corrected by Li & Götze (2001). The expression lives in ellipsoidal-
// harmonic coordinates (β, u) of the confocal ellipsoid through the point
// and requires no free-air correction.
func ellipsoidNormalGravity(e *body.Ellipsoid, latitude, height float64, opts *Options) (float64, error) {
	beta, u := coord.GeodeticToEllipsoidalHarmonic(e, latitude, height)

	a := e.SemimajorAxis()
	b := e.SemiminorAxis()
	bigE := e.LinearEccentricity()
	bigE2 := bigE * bigE
	omega := e.AngularVelocity()

	sinbeta := math.Sin(radians(beta))
	sinbeta2 := sinbeta * sinbeta
	cosbeta2 := 1 - sinbeta2

	u2E2 := u*u + bigE2
	q0 := legendreQ(b, bigE)
	qp := legendreQPrime(u, bigE)
	bigW := math.Sqrt((u*u + bigE2*sinbeta2) / u2E2)

	// Three terms: pure attraction, centrifugal correction of the potential
	// flattening, and the direct centrifugal pull.
	term1 := e.GeocentricGravConst() / u2E2
	term2 := (0.5*sinbeta2 - 1.0/6.0) *
		(a * a * bigE * qp * omega * omega / (u2E2 * q0))
	term3 := -cosbeta2 * u * omega * omega

	gamma := (term1 + term2 + term3) / bigW

	return toUnits(gamma, opts), heightAdvisory(height)
}

// ellipsoidNormalGravityPotential evaluates the gravity potential
// U(β, u) = V + Φ, constant and equal to U0 everywhere on the surface.
func ellipsoidNormalGravityPotential(e *body.Ellipsoid, latitude, height float64) (float64, error) {
	v, _ := ellipsoidNormalGravitationalPotential(e, latitude, height)
	phi, _ := ellipsoidCentrifugalPotential(e, latitude, height)

	return v + phi, heightAdvisory(height)
}

// ellipsoidNormalGravitationalPotential evaluates the gravitational part
//
//	V(β, u) = GM/E·atan(E/u) + ½·ω²a²·(q/q0)·(sin²β − ⅓).
func ellipsoidNormalGravitationalPotential(e *body.Ellipsoid, latitude, height float64) (float64, error) {
	beta, u := coord.GeodeticToEllipsoidalHarmonic(e, latitude, height)

	a := e.SemimajorAxis()
	b := e.SemiminorAxis()
	bigE := e.LinearEccentricity()
	omega := e.AngularVelocity()
	sinbeta := math.Sin(radians(beta))

	v := e.GeocentricGravConst()/bigE*math.Atan2(bigE, u) +
		0.5*omega*omega*a*a*legendreQ(u, bigE)/legendreQ(b, bigE)*
			(sinbeta*sinbeta-1.0/3.0)

	return v, heightAdvisory(height)
}

// ellipsoidCentrifugalPotential evaluates Φ(β, u) = ½·ω²·(u² + E²)·cos²β.
func ellipsoidCentrifugalPotential(e *body.Ellipsoid, latitude, height float64) (float64, error) {
	beta, u := coord.GeodeticToEllipsoidalHarmonic(e, latitude, height)

	bigE := e.LinearEccentricity()
	omega := e.AngularVelocity()
	sinbeta := math.Sin(radians(beta))
	cosbeta2 := 1 - sinbeta*sinbeta

	return 0.5 * omega * omega * (u*u + bigE*bigE) * cosbeta2, heightAdvisory(height)
}
