package body

import (
	"fmt"
	"math"
)

// Sphere is a rotating sphere (zero-flattening reference body).
//
// It is defined by three parameters: radius, geocentric gravitational
// constant, and angular velocity. The internal density structure can be
// homogeneous or vary radially. Unlike the oblate Ellipsoid, a rotating
// sphere is not in hydrostatic equilibrium: its gravity potential is not
// constant over its surface.
//
// The record is read-only; all parameters are SI.
type Sphere struct {
	radius   float64
	gm       float64
	omega    float64
	meta     metadata
	warnings []string
}

// NewSphere validates the parameters and constructs an immutable Sphere.
//
// Fatal: radius ≤ 0 (ErrInvalidRadius).
// Advisory (recorded, construction succeeds): GM < 0.
//
// Example:
//
//	moon, err := body.NewSphere(1737151, 4.90280007e12, 2.6617073e-6,
//	    body.WithName("MOON"))
func NewSphere(radius, geocentricGravConst, angularVelocity float64, opts ...Option) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}

	s := &Sphere{
		radius: radius,
		gm:     geocentricGravConst,
		omega:  angularVelocity,
		meta:   applyOptions(opts).meta,
	}
	if geocentricGravConst < 0 {
		s.warnings = append(s.warnings,
			fmt.Sprintf("the geocentric gravitational constant is negative: %v", geocentricGravConst))
	}

	return s, nil
}

// Name returns the short name of the sphere.
func (s *Sphere) Name() string { return s.meta.name }

// LongName returns the descriptive name of the sphere.
func (s *Sphere) LongName() string { return s.meta.longName }

// Reference returns the citation for the parameter values.
func (s *Sphere) Reference() string { return s.meta.reference }

// Comments returns the free-form remarks attached to the record.
func (s *Sphere) Comments() string { return s.meta.comments }

// Warnings returns a copy of the advisory conditions recorded at construction.
func (s *Sphere) Warnings() []string { return append([]string(nil), s.warnings...) }

// Radius returns the radius R. Units: m.
func (s *Sphere) Radius() float64 { return s.radius }

// GeocentricGravConst returns GM. Units: m³·s⁻².
func (s *Sphere) GeocentricGravConst() float64 { return s.gm }

// AngularVelocity returns ω. Units: rad·s⁻¹.
func (s *Sphere) AngularVelocity() float64 { return s.omega }

// SemimajorAxis equals the radius. Defined for compatibility with the
// ellipsoid accessors. Definition: a = R. Units: m.
func (s *Sphere) SemimajorAxis() float64 { return s.radius }

// SemiminorAxis equals the radius. Definition: b = R. Units: m.
func (s *Sphere) SemiminorAxis() float64 { return s.radius }

// Flattening of a sphere is identically zero.
func (s *Sphere) Flattening() float64 { return 0 }

// ThirdFlattening of a sphere is identically zero.
func (s *Sphere) ThirdFlattening() float64 { return 0 }

// LinearEccentricity of a sphere is identically zero. Units: m.
func (s *Sphere) LinearEccentricity() float64 { return 0 }

// FirstEccentricity of a sphere is identically zero.
func (s *Sphere) FirstEccentricity() float64 { return 0 }

// SecondEccentricity of a sphere is identically zero.
func (s *Sphere) SecondEccentricity() float64 { return 0 }

// Eccentricity is an alias for FirstEccentricity.
func (s *Sphere) Eccentricity() float64 { return 0 }

// GeocentricRadius returns the distance from the center to the surface, which
// for a sphere is the radius at every latitude. Units: m.
func (s *Sphere) GeocentricRadius(latitude float64) float64 { return s.radius }

// MeanRadius returns the degree-0 mean radius, equal to the radius. Units: m.
func (s *Sphere) MeanRadius() float64 { return s.radius }

// ArithmeticMeanRadius returns the radius. Units: m.
func (s *Sphere) ArithmeticMeanRadius() float64 { return s.radius }

// VolumeEquivalentRadius returns the radius of the sphere with the same
// volume, which is the radius itself. Units: m.
func (s *Sphere) VolumeEquivalentRadius() float64 { return s.radius }

// AreaEquivalentRadius returns the radius of the sphere with the same surface
// area, which is the radius itself. Units: m.
func (s *Sphere) AreaEquivalentRadius() float64 { return s.radius }

// Volume returns the volume bounded by the sphere.
// Definition: V = 4/3·π·R³. Units: m³.
func (s *Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.radius * s.radius * s.radius
}

// Area returns the surface area of the sphere.
// Definition: A = 4·π·R². Units: m².
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

// Mass returns GM divided by the gravitational constant G. Units: kg.
func (s *Sphere) Mass() float64 { return s.gm / GravitationalConstant }

// MeanDensity returns the mass divided by the volume. Units: kg·m⁻³.
func (s *Sphere) MeanDensity() float64 { return s.Mass() / s.Volume() }
