package gravity

import (
	"math"

	"github.com/astroforma/refbody/body"
)

// sphereNormalGravity computes the norm of the gradient of the gravity
// potential of a rotating sphere at a spherical latitude (degrees) and
// height above the surface (meters).
//
// The gradient is the vector sum of the purely radial attraction and the
// centrifugal acceleration, with radial and latitudinal components
//
//	g_r = -GM/(R+h)²,            g_θ = 0,
//	f_r = ω²(R+h)cos²θ,          f_θ = ω²(R+h)cosθ·sinθ,
//
// whose combined magnitude collapses to
//
//	γ(θ, h) = √( g² + (ω²r − 2g)·ω²r·cos²θ ),  g = GM/r²,  r = R+h,
//
// evaluated with cos²θ = 1 − sin²θ for accuracy near the poles.
func sphereNormalGravity(s *body.Sphere, latitude, height float64, opts *Options) (float64, error) {
	r := s.Radius() + height
	g := s.GeocentricGravConst() / (r * r)
	omega := s.AngularVelocity()
	sinlat := math.Sin(radians(latitude))

	gamma := math.Sqrt(g*g + (omega*omega*r-2*g)*omega*omega*r*(1-sinlat*sinlat))

	return toUnits(gamma, opts), heightAdvisory(height)
}

// SphereNormalGravitation computes the magnitude of the gradient of the
// gravitational potential alone (no centrifugal term) of a sphere at the
// given height above its surface:
//
//	γ(h) = GM/(R+h)².
//
// Latitude plays no role. Returned in mGal by default, m/s² with
// Options.SIUnits. A negative height yields the value plus ErrBelowSurface.
func SphereNormalGravitation(s *body.Sphere, height float64, opts *Options) (float64, error) {
	r := s.Radius() + height

	return toUnits(s.GeocentricGravConst()/(r*r), opts), heightAdvisory(height)
}

// sphereNormalGravityPotential evaluates U = V + Φ for the sphere. The
// potential is not constant over the surface: a rotating sphere is not in
// hydrostatic equilibrium.
func sphereNormalGravityPotential(s *body.Sphere, latitude, height float64) (float64, error) {
	v, _ := sphereNormalGravitationalPotential(s, latitude, height)
	phi, _ := sphereCentrifugalPotential(s, latitude, height)

	return v + phi, heightAdvisory(height)
}

// sphereNormalGravitationalPotential evaluates V = GM/(R+h).
func sphereNormalGravitationalPotential(s *body.Sphere, _ /* latitude */, height float64) (float64, error) {
	return s.GeocentricGravConst() / (s.Radius() + height), heightAdvisory(height)
}

// sphereCentrifugalPotential evaluates Φ = ½·ω²·(R+h)²·cos²θ, with
// cos²θ = 1 − sin²θ for accuracy near the poles.
func sphereCentrifugalPotential(s *body.Sphere, latitude, height float64) (float64, error) {
	r := s.Radius() + height
	omega := s.AngularVelocity()
	sinlat := math.Sin(radians(latitude))

	return 0.5 * omega * omega * r * r * (1 - sinlat*sinlat), heightAdvisory(height)
}
