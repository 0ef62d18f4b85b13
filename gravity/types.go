package gravity

import (
	"errors"
	"math"
)

// Sentinel errors for gravity computations.
var (
	// ErrUnsupportedBody indicates a gravity operation on a shape variant with
	// no implementation. Triaxial-ellipsoid gravity is deliberately
	// unimplemented: failing loudly beats returning a wrong number.
	ErrUnsupportedBody = errors.New("gravity: operation not implemented for this body variant")

	// ErrBelowSurface is advisory, not fatal: the computed value is returned
	// alongside it. The closed forms are validated for points on or above the
	// surface; below it they are extrapolations of unknown accuracy.
	ErrBelowSurface = errors.New("gravity: height is below the surface, result is an extrapolation")
)

// mGalPerSI converts an acceleration from m/s² to milligal.
const mGalPerSI = 1e5

// Options configures unit handling for normal gravity values.
//
// Fields:
//   - SIUnits — return accelerations in m/s² instead of the default mGal.
//
// A nil *Options behaves like DefaultOptions().
type Options struct {
	SIUnits bool
}

// DefaultOptions returns the default configuration: results in mGal.
func DefaultOptions() Options {
	return Options{SIUnits: false}
}

// toUnits applies the unit convention of opts to an acceleration in m/s².
func toUnits(gammaSI float64, opts *Options) float64 {
	if opts != nil && opts.SIUnits {
		return gammaSI
	}

	return gammaSI * mGalPerSI
}

// heightAdvisory returns the non-fatal below-surface sentinel for negative
// heights and nil otherwise.
func heightAdvisory(height float64) error {
	if height < 0 {
		return ErrBelowSurface
	}

	return nil
}

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }
