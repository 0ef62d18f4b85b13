package body

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mathext"
)

// meanRadiusLongitudeOrder is the Gauss–Legendre order used for the longitude
// dimension of the triaxial degree-0 mean radius integral. The triaxial
// surface has no rotational symmetry, so the longitude cannot be integrated
// out analytically as it is for the oblate ellipsoid.
const meanRadiusLongitudeOrder = 100

// TriaxialEllipsoid is a rotating ellipsoid with three distinct semi-axes
// a ≥ b ≥ c. It spins around its smallest axis (the largest moment of
// inertia). The orientation of the semimajor axis in the equatorial plane is
// given by SemimajorAxisLongitude (degrees, default 0).
//
// Gravity calculations are not implemented for triaxial ellipsoids; the
// gravity package reports them as unsupported. Biaxial eccentricities are
// deliberately not defined on this type, since they have no meaning for three
// distinct axes.
//
// The record is read-only; all parameters are SI.
type TriaxialEllipsoid struct {
	a        float64
	b        float64
	c        float64
	gm       float64
	omega    float64
	aAxisLon float64
	meta     metadata
	warnings []string
}

// NewTriaxialEllipsoid validates the parameters and constructs an immutable
// TriaxialEllipsoid.
//
// Fatal:
//   - any semi-axis ≤ 0 (ErrInvalidAxis);
//   - axes not ordered semimajor ≥ semimedium ≥ semiminor (ErrAxisOrder),
//     reported on the first violation found.
//
// Advisory (recorded, construction succeeds): GM < 0.
//
// Example:
//
//	vesta, err := body.NewTriaxialEllipsoid(286300, 278600, 223200,
//	    1.729094e10, 326.71050958367e-6,
//	    body.WithName("VESTA"))
func NewTriaxialEllipsoid(semimajorAxis, semimediumAxis, semiminorAxis, geocentricGravConst, angularVelocity float64, opts ...Option) (*TriaxialEllipsoid, error) {
	// Stage 1: positivity of every axis.
	if !(semimajorAxis > 0) {
		return nil, fmt.Errorf("%w: semimajor axis %v", ErrInvalidAxis, semimajorAxis)
	}
	if !(semimediumAxis > 0) {
		return nil, fmt.Errorf("%w: semimedium axis %v", ErrInvalidAxis, semimediumAxis)
	}
	if !(semiminorAxis > 0) {
		return nil, fmt.Errorf("%w: semiminor axis %v", ErrInvalidAxis, semiminorAxis)
	}
	// Stage 2: ordering, cross-checked over the full record.
	if semimediumAxis > semimajorAxis || semiminorAxis > semimediumAxis {
		return nil, fmt.Errorf("%w: major=%v medium=%v minor=%v",
			ErrAxisOrder, semimajorAxis, semimediumAxis, semiminorAxis)
	}

	o := applyOptions(opts)
	t := &TriaxialEllipsoid{
		a:        semimajorAxis,
		b:        semimediumAxis,
		c:        semiminorAxis,
		gm:       geocentricGravConst,
		omega:    angularVelocity,
		aAxisLon: o.semimajorAxisLongitude,
		meta:     o.meta,
	}
	if geocentricGravConst < 0 {
		t.warnings = append(t.warnings,
			fmt.Sprintf("the geocentric gravitational constant is negative: %v", geocentricGravConst))
	}

	return t, nil
}

// Name returns the short name of the ellipsoid.
func (t *TriaxialEllipsoid) Name() string { return t.meta.name }

// LongName returns the descriptive name of the ellipsoid.
func (t *TriaxialEllipsoid) LongName() string { return t.meta.longName }

// Reference returns the citation for the parameter values.
func (t *TriaxialEllipsoid) Reference() string { return t.meta.reference }

// Comments returns the free-form remarks attached to the record.
func (t *TriaxialEllipsoid) Comments() string { return t.meta.comments }

// Warnings returns a copy of the advisory conditions recorded at construction.
func (t *TriaxialEllipsoid) Warnings() []string { return append([]string(nil), t.warnings...) }

// SemimajorAxis returns the largest semi-axis a. Units: m.
func (t *TriaxialEllipsoid) SemimajorAxis() float64 { return t.a }

// SemimediumAxis returns the middle semi-axis b. Units: m.
func (t *TriaxialEllipsoid) SemimediumAxis() float64 { return t.b }

// SemiminorAxis returns the smallest semi-axis c. Units: m.
func (t *TriaxialEllipsoid) SemiminorAxis() float64 { return t.c }

// SemimajorAxisLongitude returns the longitude of the semimajor axis in the
// equatorial plane, in degrees.
func (t *TriaxialEllipsoid) SemimajorAxisLongitude() float64 { return t.aAxisLon }

// GeocentricGravConst returns GM. Units: m³·s⁻².
func (t *TriaxialEllipsoid) GeocentricGravConst() float64 { return t.gm }

// AngularVelocity returns ω. Units: rad·s⁻¹.
func (t *TriaxialEllipsoid) AngularVelocity() float64 { return t.omega }

// EquatorialFlattening returns the flattening of the equatorial cross
// section. Definition: fb = (a − b)/a.
func (t *TriaxialEllipsoid) EquatorialFlattening() float64 {
	return (t.a - t.b) / t.a
}

// MeridionalFlattening returns the flattening of the meridian through the
// semimajor axis. Definition: fc = (a − c)/a.
func (t *TriaxialEllipsoid) MeridionalFlattening() float64 {
	return (t.a - t.c) / t.a
}

// GeocentricRadius returns the radial distance from the center of the
// ellipsoid to its surface at the given geocentric spherical latitude and
// longitude, both in degrees (Pěč & Martinec, 1983):
//
//	r(θ, λ) = a / √( 1 + (1/(1−fc)² − 1)·sin²θ
//	                   + (1/(1−fb)² − 1)·cos²θ·sin²(λ − λa) )
//
// where fb and fc are the equatorial and meridional flattenings and λa is the
// longitude of the semimajor axis. Units: m.
func (t *TriaxialEllipsoid) GeocentricRadius(longitude, latitude float64) float64 {
	lat := radians(latitude)
	dlon := radians(longitude - t.aAxisLon)
	coslat, sinlat := math.Cos(lat), math.Sin(lat)
	sindlon := math.Sin(dlon)

	fb := 1 / (1 - t.EquatorialFlattening())
	fc := 1 / (1 - t.MeridionalFlattening())

	return t.a / math.Sqrt(1+
		(fc*fc-1)*sinlat*sinlat+
		(fb*fb-1)*coslat*coslat*sindlon*sindlon)
}

// ArithmeticMeanRadius returns the arithmetic mean of the three semi-axes.
// Definition: R = (a + b + c)/3. Units: m.
func (t *TriaxialEllipsoid) ArithmeticMeanRadius() float64 {
	return (t.a + t.b + t.c) / 3
}

// MeanRadius returns the spherical-harmonic degree-0 mean radius,
//
//	R0 = 1/(4π) ∫₀^{2π} ∫₋₁¹ r(asin u, λ) du dλ,
//
// evaluated by a 2-D Gauss–Legendre quadrature: order 50 over the sine of the
// latitude and order 100 over the longitude rescaled from [−1, 1] to
// [0, 2π]. Units: m.
func (t *TriaxialEllipsoid) MeanRadius() float64 {
	integral := quad.Fixed(func(u float64) float64 {
		lat := degrees(math.Asin(u))

		return quad.Fixed(func(lon float64) float64 {
			return t.GeocentricRadius(degrees(lon), lat)
		}, 0, 2*math.Pi, meanRadiusLongitudeOrder, quad.Legendre{}, 0)
	}, -1, 1, meanRadiusQuadratureOrder, quad.Legendre{}, 0)

	return integral / (4 * math.Pi)
}

// Volume returns the volume bounded by the ellipsoid.
// Definition: V = 4/3·π·a·b·c. Units: m³.
func (t *TriaxialEllipsoid) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * t.a * t.b * t.c
}

// Area returns the surface area of the ellipsoid,
//
//	A = 3V·R_G(1/a², 1/b², 1/c²),
//
// where R_G is the symmetric elliptic integral of the second kind. It is
// evaluated in the equivalent Legendre form,
//
//	A = 2πc² + (2πab/sinφ)·(E(φ|m)·sin²φ + F(φ|m)·cos²φ),
//	cosφ = c/a,  m = a²(b² − c²) / (b²(a² − c²)),
//
// which degenerates to 4πa² when all axes coincide. The oblate case a = b
// puts m at 1, outside the domain of the elliptic integrals, and is served by
// the arctanh closed form instead. Units: m².
func (t *TriaxialEllipsoid) Area() float64 {
	if t.a == t.c {
		// All three axes equal (a ≥ b ≥ c forces b = a = c).
		return 4 * math.Pi * t.a * t.a
	}
	if t.a == t.b {
		// Oblate: rotational symmetry around the smallest axis.
		ecc := math.Sqrt(1 - t.c*t.c/(t.a*t.a))

		return 2 * math.Pi * t.a * t.a * (1 + (1-ecc*ecc)*math.Atanh(ecc)/ecc)
	}
	phi := math.Acos(t.c / t.a)
	sinphi := math.Sin(phi)
	cosphi := t.c / t.a
	m := t.a * t.a * (t.b*t.b - t.c*t.c) / (t.b * t.b * (t.a*t.a - t.c*t.c))

	return 2*math.Pi*t.c*t.c + 2*math.Pi*t.a*t.b/sinphi*
		(mathext.EllipticE(phi, m)*sinphi*sinphi+
			mathext.EllipticF(phi, m)*cosphi*cosphi)
}

// VolumeEquivalentRadius returns the radius of the sphere with the same
// volume. Definition: R = (abc)^(1/3). Units: m.
func (t *TriaxialEllipsoid) VolumeEquivalentRadius() float64 {
	return math.Cbrt(t.a * t.b * t.c)
}

// AreaEquivalentRadius returns the radius of the sphere with the same surface
// area. Definition: R = √(A/4π). Units: m.
func (t *TriaxialEllipsoid) AreaEquivalentRadius() float64 {
	return math.Sqrt(t.Area() / (4 * math.Pi))
}

// Mass returns GM divided by the gravitational constant G. Units: kg.
func (t *TriaxialEllipsoid) Mass() float64 { return t.gm / GravitationalConstant }

// MeanDensity returns the mass divided by the volume. Units: kg·m⁻³.
func (t *TriaxialEllipsoid) MeanDensity() float64 { return t.Mass() / t.Volume() }
