// Package coord converts coordinates between the geodetic, geocentric
// spherical, and ellipsoidal-harmonic representations defined by an oblate
// reference ellipsoid.
//
// Two closed-form (non-iterative) conversion pairs are provided:
//
//   - GeodeticToSpherical / SphericalToGeodetic — the Vermeille (2002)
//     algebraic inversion. Composing the two is an identity to floating-point
//     tolerance for any height, including negative (below-surface) heights.
//
//   - GeodeticToEllipsoidalHarmonic / EllipsoidalHarmonicToGeodetic — the
//     (β, u) coordinates on confocal ellipsoids used by closed-form normal
//     gravity. Points on the surface (height exactly zero) take a simple
//     arctangent special case with u equal to the semiminor axis, avoiding
//     the cancellation-prone general form.
//
// Longitude plays no role in any of the formulas — the ellipsoid is
// rotationally symmetric — so it passes through unchanged where present and
// may be omitted entirely in the slice forms (pass nil).
//
// Angles are degrees, lengths are meters. All functions are pure and safe
// for concurrent use.
//
// Errors:
//
//	ErrLengthMismatch - elementwise slice inputs have differing lengths.
package coord
