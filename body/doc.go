// Package body defines the three immutable reference-body parameter records —
// Sphere, Ellipsoid and TriaxialEllipsoid — together with their
// construction-time validation and every closed-form geometric derived
// quantity (eccentricities, radii, volume, surface area, mass, density).
//
// All records are read-only: constructors validate the fully-populated
// parameter set once and never expose a mutator, so values can be shared
// freely across goroutines. Derived quantities are pure functions of the
// stored parameters, recomputed on each call.
//
// Validation has two severities:
//
//   - fatal  — the constructor returns a sentinel error and no record
//     (non-positive axes, out-of-range or zero flattening, axis-order
//     violations);
//   - advisory — the record is produced and the condition is retained as a
//     warning string (negative GM, flattening suspiciously close to zero),
//     retrievable via Warnings().
//
// Errors:
//
//	ErrInvalidRadius        - sphere radius is not positive.
//	ErrInvalidSemimajorAxis - ellipsoid semimajor axis is not positive.
//	ErrInvalidFlattening    - flattening outside the open interval (0, 1).
//	ErrZeroFlattening       - flattening exactly zero (use Sphere instead).
//	ErrInvalidAxis          - a triaxial semi-axis is not positive.
//	ErrAxisOrder            - triaxial axes not in major ≥ medium ≥ minor order.
//
// Units: all parameters and derived attributes are SI; angles are degrees.
package body
