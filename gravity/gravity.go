package gravity

import (
	"fmt"

	"github.com/astroforma/refbody/body"
)

// NormalGravity computes the magnitude of the gradient of the gravity
// potential (gravitational + centrifugal) of b at the given latitude
// (degrees; geodetic for an Ellipsoid, spherical for a Sphere) and height
// above the surface (meters).
//
// The result is in mGal by default and in m/s² with Options.SIUnits; a nil
// opts selects the defaults. A negative height returns the computed value
// together with the advisory ErrBelowSurface. Triaxial ellipsoids return
// ErrUnsupportedBody.
//
// Example:
//
//	gamma, err := gravity.NormalGravity(wgs84, 45, 0, nil) // mGal
func NormalGravity(b body.Body, latitude, height float64, opts *Options) (float64, error) {
	switch v := b.(type) {
	case *body.Sphere:
		return sphereNormalGravity(v, latitude, height, opts)
	case *body.Ellipsoid:
		return ellipsoidNormalGravity(v, latitude, height, opts)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedBody, b)
	}
}

// NormalGravityPotential computes the gravity potential U = V + Φ of b at
// the given latitude (degrees) and height (meters). Always SI: m²/s².
//
// For an Ellipsoid the value at height zero is the constant U0 over the
// whole surface; for a Sphere it varies with latitude. Triaxial ellipsoids
// return ErrUnsupportedBody; a negative height returns the value together
// with the advisory ErrBelowSurface.
func NormalGravityPotential(b body.Body, latitude, height float64) (float64, error) {
	switch v := b.(type) {
	case *body.Sphere:
		return sphereNormalGravityPotential(v, latitude, height)
	case *body.Ellipsoid:
		return ellipsoidNormalGravityPotential(v, latitude, height)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedBody, b)
	}
}

// NormalGravitationalPotential computes the gravitational part V of the
// potential of b, excluding the centrifugal term. Always SI: m²/s².
//
// Triaxial ellipsoids return ErrUnsupportedBody; a negative height returns
// the value together with the advisory ErrBelowSurface.
func NormalGravitationalPotential(b body.Body, latitude, height float64) (float64, error) {
	switch v := b.(type) {
	case *body.Sphere:
		return sphereNormalGravitationalPotential(v, latitude, height)
	case *body.Ellipsoid:
		return ellipsoidNormalGravitationalPotential(v, latitude, height)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedBody, b)
	}
}

// CentrifugalPotential computes the centrifugal part Φ of the potential of
// b at the given latitude (degrees) and height (meters). Always SI: m²/s².
//
// Triaxial ellipsoids return ErrUnsupportedBody; a negative height returns
// the value together with the advisory ErrBelowSurface.
func CentrifugalPotential(b body.Body, latitude, height float64) (float64, error) {
	switch v := b.(type) {
	case *body.Sphere:
		return sphereCentrifugalPotential(v, latitude, height)
	case *body.Ellipsoid:
		return ellipsoidCentrifugalPotential(v, latitude, height)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedBody, b)
	}
}
