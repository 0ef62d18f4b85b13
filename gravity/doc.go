// Package gravity computes normal gravity and the associated potentials of
// the reference-body variants defined in package body.
//
// Each operation dispatches on the concrete shape variant:
//
//   - Sphere — vector sum of the radial attraction GM/(R+h)² and the
//     centrifugal acceleration. A rotating sphere is not its own
//     equipotential surface: its gravity potential varies with latitude.
//
//   - Ellipsoid — the Lakshmanan (1991) / Li & Götze (2001) closed form in
//     ellipsoidal-harmonic coordinates (β, u), obtained from package coord.
//     No free-air correction is needed; the form is exact at any height on
//     or above the surface. An ellipsoid in hydrostatic rotational
//     equilibrium has constant potential at its surface, so normal gravity
//     at height zero reduces to Somigliana's equation.
//
//   - TriaxialEllipsoid — gravity is not implemented; every operation fails
//     with ErrUnsupportedBody rather than returning a silent zero or NaN.
//
// The decomposition U = V + Φ (gravity potential = gravitational potential +
// centrifugal potential) holds exactly for Sphere and Ellipsoid.
//
// Units: normal gravity is returned in mGal by default and in m/s² with
// Options.SIUnits; potentials are always SI (m²/s²); latitudes are degrees
// (geodetic for the ellipsoid, spherical for the sphere); heights are
// meters.
//
// Heights below the surface are accepted but extrapolate the formulas
// outside their validated domain: the functions then return the computed
// value together with the non-fatal sentinel ErrBelowSurface, which callers
// may inspect with errors.Is and ignore.
//
// Errors:
//
//	ErrUnsupportedBody - gravity requested for a variant without an
//	                     implementation (triaxial ellipsoid).
//	ErrBelowSurface    - advisory: height < 0, value still returned.
package gravity
