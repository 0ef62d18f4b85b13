package body

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// meanRadiusQuadratureOrder is the Gauss–Legendre order used for the
// degree-0 mean radius integral over latitude. Order 50 reaches machine
// precision for flattenings up to ~0.5, far beyond any real planetary body.
const meanRadiusQuadratureOrder = 50

// flatteningWarnThreshold is the advisory limit below which a non-zero
// flattening is numerically risky (division by near-zero eccentricity).
const flatteningWarnThreshold = 1e-7

// Ellipsoid is a rotating oblate (biaxial) ellipsoid.
//
// It is defined by four parameters: semimajor axis, flattening, geocentric
// gravitational constant, and angular velocity. It spins around its semiminor
// axis and has constant gravity potential at its surface; the internal
// density structure is unspecified but must satisfy the constant-potential
// condition.
//
// The record is read-only; all parameters are SI.
//
// Use Sphere for zero flattening: several closed forms here divide by the
// eccentricity and are singular at f = 0.
type Ellipsoid struct {
	a        float64
	f        float64
	gm       float64
	omega    float64
	meta     metadata
	warnings []string
}

// NewEllipsoid validates the parameters and constructs an immutable Ellipsoid.
//
// Fatal:
//   - semimajor axis ≤ 0 (ErrInvalidSemimajorAxis);
//   - flattening < 0 or ≥ 1 (ErrInvalidFlattening);
//   - flattening == 0 (ErrZeroFlattening — use Sphere instead).
//
// Advisory (recorded, construction succeeds): 0 < flattening < 1e-7; GM < 0.
//
// Example:
//
//	wgs84, err := body.NewEllipsoid(6378137, 1/298.257223563, 3986004.418e8, 7292115e-11,
//	    body.WithName("WGS84"),
//	    body.WithLongName("World Geodetic System 1984"))
func NewEllipsoid(semimajorAxis, flattening, geocentricGravConst, angularVelocity float64, opts ...Option) (*Ellipsoid, error) {
	// Stage 1: semimajor axis.
	if !(semimajorAxis > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSemimajorAxis, semimajorAxis)
	}
	// Stage 2: flattening range, then the singular zero case.
	if flattening < 0 || flattening >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFlattening, flattening)
	}
	if flattening == 0 {
		return nil, ErrZeroFlattening
	}

	e := &Ellipsoid{
		a:     semimajorAxis,
		f:     flattening,
		gm:    geocentricGravConst,
		omega: angularVelocity,
		meta:  applyOptions(opts).meta,
	}
	if flattening < flatteningWarnThreshold {
		e.warnings = append(e.warnings,
			fmt.Sprintf("flattening is too close to zero (%v); expect inaccurate results and division-by-zero hazards, use Sphere instead", flattening))
	}
	if geocentricGravConst < 0 {
		e.warnings = append(e.warnings,
			fmt.Sprintf("the geocentric gravitational constant is negative: %v", geocentricGravConst))
	}

	return e, nil
}

// Name returns the short name of the ellipsoid.
func (e *Ellipsoid) Name() string { return e.meta.name }

// LongName returns the descriptive name of the ellipsoid.
func (e *Ellipsoid) LongName() string { return e.meta.longName }

// Reference returns the citation for the parameter values.
func (e *Ellipsoid) Reference() string { return e.meta.reference }

// Comments returns the free-form remarks attached to the record.
func (e *Ellipsoid) Comments() string { return e.meta.comments }

// Warnings returns a copy of the advisory conditions recorded at construction.
func (e *Ellipsoid) Warnings() []string { return append([]string(nil), e.warnings...) }

// SemimajorAxis returns the equatorial (large) radius a. Units: m.
func (e *Ellipsoid) SemimajorAxis() float64 { return e.a }

// Flattening returns the first flattening.
// Definition: f = (a − b)/a.
func (e *Ellipsoid) Flattening() float64 { return e.f }

// GeocentricGravConst returns GM. Units: m³·s⁻².
func (e *Ellipsoid) GeocentricGravConst() float64 { return e.gm }

// AngularVelocity returns ω. Units: rad·s⁻¹.
func (e *Ellipsoid) AngularVelocity() float64 { return e.omega }

// SemiminorAxis returns the polar (small) radius, always derived and never
// stored. Definition: b = a(1 − f). Units: m.
func (e *Ellipsoid) SemiminorAxis() float64 { return e.a * (1 - e.f) }

// ThirdFlattening returns the third flattening, used in geodetic series.
// Definition: f″ = (a − b)/(a + b).
func (e *Ellipsoid) ThirdFlattening() float64 {
	b := e.SemiminorAxis()

	return (e.a - b) / (e.a + b)
}

// LinearEccentricity returns the distance between the center and a focus.
// Definition: E = √(a² − b²). Units: m.
func (e *Ellipsoid) LinearEccentricity() float64 {
	b := e.SemiminorAxis()

	return math.Sqrt(e.a*e.a - b*b)
}

// FirstEccentricity returns the ratio between the linear eccentricity and the
// semimajor axis. Definition: e = √(2f − f²).
func (e *Ellipsoid) FirstEccentricity() float64 {
	return math.Sqrt(2*e.f - e.f*e.f)
}

// SecondEccentricity returns the ratio between the linear eccentricity and
// the semiminor axis. Definition: e′ = √(2f − f²)/(1 − f).
func (e *Ellipsoid) SecondEccentricity() float64 {
	return e.FirstEccentricity() / (1 - e.f)
}

// Eccentricity is an alias for FirstEccentricity.
func (e *Ellipsoid) Eccentricity() float64 { return e.FirstEccentricity() }

// PrimeVerticalRadius returns the prime vertical radius of curvature N for a
// given geodetic latitude.
//
// The input is sin(latitude) rather than the latitude itself, so callers that
// already hold the sine avoid a redundant trigonometric call.
//
// Definition: N(φ) = a / √(1 − e²·sin²φ). Units: m.
func (e *Ellipsoid) PrimeVerticalRadius(sinlat float64) float64 {
	e2 := 2*e.f - e.f*e.f // first eccentricity squared

	return e.a / math.Sqrt(1-e2*sinlat*sinlat)
}

// GeocentricRadius returns the radial distance from the center of the
// ellipsoid to its surface at the given latitude in degrees.
//
// With geodetic=true the latitude is interpreted as a geodetic latitude:
//
//	R(φ) = √( ((a²cosφ)² + (b²sinφ)²) / ((a·cosφ)² + (b·sinφ)²) )
//
// With geodetic=false it is a geocentric spherical latitude:
//
//	R(θ) = 1 / √( (cosθ/a)² + (sinθ/b)² )
//
// The spherical form is useful when the spherical latitudes are already in
// hand (e.g. spherical-harmonic synthesis) and the conversion route is not
// available. No elevation is taken into account. Units: m.
func (e *Ellipsoid) GeocentricRadius(latitude float64, geodetic bool) float64 {
	lat := radians(latitude)
	coslat, sinlat := math.Cos(lat), math.Sin(lat)
	b := e.SemiminorAxis()
	if geodetic {
		a2c := e.a * e.a * coslat
		b2s := b * b * sinlat

		return math.Sqrt((a2c*a2c + b2s*b2s) /
			((e.a*coslat)*(e.a*coslat) + (b*sinlat)*(b*sinlat)))
	}

	return math.Sqrt(1 / ((coslat/e.a)*(coslat/e.a) + (sinlat/b)*(sinlat/b)))
}

// ArithmeticMeanRadius returns the arithmetic mean radius R1 (Moritz, 2000).
// Definition: R1 = (2a + b)/3. Units: m.
func (e *Ellipsoid) ArithmeticMeanRadius() float64 {
	return (2*e.a + e.SemiminorAxis()) / 3
}

// MeanRadius returns the spherical-harmonic degree-0 mean radius: the mean of
// the geocentric surface radius over the sphere,
//
//	R0 = 1/(4π) ∫ R(θ) dΩ = 1/2 ∫₋₁¹ R(asin u) du,
//
// evaluated by order-50 Gauss–Legendre quadrature over the sine of the
// geocentric spherical latitude. Rotational symmetry reduces the integral to
// one dimension. Units: m.
func (e *Ellipsoid) MeanRadius() float64 {
	integral := quad.Fixed(func(u float64) float64 {
		return e.GeocentricRadius(degrees(math.Asin(u)), false)
	}, -1, 1, meanRadiusQuadratureOrder, quad.Legendre{}, 0)

	return integral / 2
}

// Volume returns the volume bounded by the ellipsoid.
// Definition: V = 4/3·π·a²·b. Units: m³.
func (e *Ellipsoid) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * e.a * e.a * e.SemiminorAxis()
}

// Area returns the surface area of the ellipsoid.
// Definition: A = 2πa²·(1 + (1 − e²)·artanh(e)/e). Units: m².
func (e *Ellipsoid) Area() float64 {
	ecc := e.FirstEccentricity()

	return 2 * math.Pi * e.a * e.a *
		(1 + (1-ecc*ecc)*math.Atanh(ecc)/ecc)
}

// VolumeEquivalentRadius returns the radius of the sphere with the same
// volume. Definition: R = (3V/4π)^(1/3). Units: m.
func (e *Ellipsoid) VolumeEquivalentRadius() float64 {
	return math.Cbrt(3 * e.Volume() / (4 * math.Pi))
}

// AreaEquivalentRadius returns the radius of the sphere with the same surface
// area. Definition: R = √(A/4π). Units: m.
func (e *Ellipsoid) AreaEquivalentRadius() float64 {
	return math.Sqrt(e.Area() / (4 * math.Pi))
}

// Mass returns GM divided by the gravitational constant G. Units: kg.
func (e *Ellipsoid) Mass() float64 { return e.gm / GravitationalConstant }

// MeanDensity returns the mass divided by the volume. Units: kg·m⁻³.
func (e *Ellipsoid) MeanDensity() float64 { return e.Mass() / e.Volume() }

// ReferenceNormalGravityPotential returns the constant value U0 of the normal
// gravity potential on the surface of the ellipsoid.
// Definition: U0 = GM/E·atan(E/b) + ω²a²/3. Units: m²·s⁻².
func (e *Ellipsoid) ReferenceNormalGravityPotential() float64 {
	bigE := e.LinearEccentricity()
	b := e.SemiminorAxis()

	return e.gm/bigE*math.Atan2(bigE, b) + e.omega*e.omega*e.a*e.a/3
}
