// Package refbody is a library of reference-body geometry models — sphere,
// rotating oblate ellipsoid, triaxial ellipsoid — for geodesy and planetary
// science.
//
// 🌍 What is refbody?
//
//	A pure-computation library with no I/O, no state, and no goroutines:
//		• Parameter records: immutable Sphere, Ellipsoid, TriaxialEllipsoid
//		• Derived geometry: eccentricities, radii, volume, area, mass
//		• Coordinate conversions: geodetic ↔ geocentric spherical (Vermeille 2002),
//		  geodetic ↔ ellipsoidal-harmonic
//		• Normal gravity: closed-form Lakshmanan/Li–Götze for the ellipsoid,
//		  vector-sum formula for the rotating sphere
//		• Catalog: ready-made bodies (WGS84, GRS80, EGM96, Moon, Mars, Vesta…)
//
// ✨ Why choose refbody?
//
//   - Closed-form only – no iterative solvers, deterministic results
//   - Read-only records – validate once at construction, never mutate
//   - Referentially transparent – safe from any number of goroutines
//
// Everything is organized under four subpackages:
//
//	body/    — parameter records, validation & geometric derived quantities
//	coord/   — geodetic, geocentric-spherical and ellipsoidal-harmonic conversions
//	gravity/ — normal gravity, gravitational & centrifugal potentials
//	catalog/ — named preset bodies with provenance citations
//
// Units: SI everywhere, except angles (degrees) and normal gravity
// (mGal by default, m/s² via gravity.Options).
//
//	go get github.com/astroforma/refbody
package refbody
