// This file declares the Body capability interface, the shared metadata
// record with its functional options, the sentinel errors, and the
// process-wide gravitational constant.

package body

import (
	"errors"
	"math"
)

// GravitationalConstant is the 2018 CODATA recommended value of the universal
// gravitational constant G.
// Units: m³·kg⁻¹·s⁻².
//
// Reference: Tiesinga, E., Mohr, P. J., Newell, D. B., & Taylor, B. N.
// (2019). The 2018 CODATA Recommended Values of the Fundamental Physical
// Constants (Web Version 8.1), NIST.
const GravitationalConstant = 6.67430e-11

// Sentinel errors for parameter validation.
var (
	// ErrInvalidRadius indicates a sphere radius that is not greater than zero.
	ErrInvalidRadius = errors.New("body: radius must be greater than zero")

	// ErrInvalidSemimajorAxis indicates a semimajor axis that is not greater than zero.
	ErrInvalidSemimajorAxis = errors.New("body: semimajor axis must be greater than zero")

	// ErrInvalidFlattening indicates a flattening outside the open interval (0, 1).
	ErrInvalidFlattening = errors.New("body: flattening must be greater than zero and lower than 1")

	// ErrZeroFlattening indicates a flattening of exactly zero, which makes the
	// normal gravity closed form singular. Use Sphere for zero-flattening bodies.
	ErrZeroFlattening = errors.New("body: zero flattening leads to singular normal gravity, use Sphere instead")

	// ErrInvalidAxis indicates a triaxial semi-axis that is not greater than zero.
	ErrInvalidAxis = errors.New("body: all semi-axes must be greater than zero")

	// ErrAxisOrder indicates triaxial axes that are not ordered major ≥ medium ≥ minor.
	ErrAxisOrder = errors.New("body: triaxial axes must satisfy semimajor ≥ semimedium ≥ semiminor")
)

// Body is the capability set shared by all three shape variants. It covers
// identification, the defining physical constants, and the geometric derived
// quantities that are meaningful for every variant.
//
// Eccentricities and flattening-based accessors are deliberately not part of
// Body: they exist on Sphere (identically zero) and Ellipsoid only, because a
// biaxial eccentricity has no meaning for three distinct axes.
type Body interface {
	// Name returns the short identifier, e.g. "WGS84".
	Name() string
	// LongName returns the descriptive name, e.g. "World Geodetic System 1984".
	LongName() string
	// Reference returns the citation for the parameter values.
	Reference() string

	// GeocentricGravConst returns GM, the product of the body mass and the
	// gravitational constant. Units: m³·s⁻².
	GeocentricGravConst() float64
	// AngularVelocity returns the rotation rate ω. Units: rad·s⁻¹.
	AngularVelocity() float64

	// MeanRadius returns the spherical-harmonic degree-0 mean radius, i.e. the
	// mean of the geocentric surface radius over the unit sphere. Units: m.
	MeanRadius() float64
	// ArithmeticMeanRadius returns the arithmetic mean of the semi-axes. Units: m.
	ArithmeticMeanRadius() float64
	// Volume returns the volume bounded by the surface. Units: m³.
	Volume() float64
	// Area returns the surface area. Units: m².
	Area() float64
	// Mass returns GM divided by the gravitational constant G. Units: kg.
	Mass() float64
	// MeanDensity returns Mass divided by Volume. Units: kg·m⁻³.
	MeanDensity() float64

	// Warnings returns the advisory conditions recorded at construction time.
	// The returned slice is a copy; an empty result means a clean construction.
	Warnings() []string
}

// Compile-time checks that every shape variant satisfies Body.
var (
	_ Body = (*Sphere)(nil)
	_ Body = (*Ellipsoid)(nil)
	_ Body = (*TriaxialEllipsoid)(nil)
)

// metadata holds the optional descriptive attributes shared by all variants.
type metadata struct {
	name      string
	longName  string
	reference string
	comments  string
}

// options collects everything the functional options may set before
// validation runs: descriptive metadata plus the optional orientation
// parameter of the triaxial variant.
type options struct {
	meta metadata

	// semimajorAxisLongitude orients the semimajor axis of a
	// TriaxialEllipsoid in the equatorial plane, in degrees. Default 0.
	semimajorAxisLongitude float64
}

// Option configures optional attributes on a record under construction.
// Options never affect validation.
type Option func(*options)

// WithName sets the short name of the body, for example "WGS84".
func WithName(name string) Option {
	return func(o *options) { o.meta.name = name }
}

// WithLongName sets the descriptive name of the body, for example
// "World Geodetic System 1984".
func WithLongName(longName string) Option {
	return func(o *options) { o.meta.longName = longName }
}

// WithReference sets the citation for the parameter values.
func WithReference(reference string) Option {
	return func(o *options) { o.meta.reference = reference }
}

// WithComments attaches free-form remarks to the record.
func WithComments(comments string) Option {
	return func(o *options) { o.meta.comments = comments }
}

// WithSemimajorAxisLongitude sets the longitude of the semimajor axis of a
// TriaxialEllipsoid, in degrees. Ignored by Sphere and Ellipsoid, which are
// rotationally symmetric.
func WithSemimajorAxisLongitude(longitude float64) Option {
	return func(o *options) { o.semimajorAxisLongitude = longitude }
}

// applyOptions folds the options into a fresh options value.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// degrees converts radians to degrees.
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
