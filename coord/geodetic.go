package coord

import (
	"errors"
	"fmt"
	"math"

	"github.com/astroforma/refbody/body"
)

// ErrLengthMismatch indicates elementwise slice inputs of differing lengths.
var ErrLengthMismatch = errors.New("coord: slice inputs must have the same length")

// GeodeticToSpherical converts geodetic coordinates (longitude, latitude in
// degrees, ellipsoidal height in meters) to geocentric spherical coordinates
// (longitude, spherical latitude in degrees, radius in meters) on the datum
// defined by e, following Vermeille (2002).
//
// The longitude is returned unchanged: the conversion does not depend on it.
// Valid for any height, including negative (below-surface) points.
func GeodeticToSpherical(e *body.Ellipsoid, longitude, latitude, height float64) (lon, sphericalLatitude, radius float64) {
	sinlat := math.Sin(radians(latitude))
	coslat := math.Sqrt(1 - sinlat*sinlat)
	primeRadius := e.PrimeVerticalRadius(sinlat)
	ecc2 := e.FirstEccentricity() * e.FirstEccentricity()

	// Only the projection on the XY plane is needed, not X and Y themselves:
	// xyProjection = sqrt(X² + Y²).
	xyProjection := (height + primeRadius) * coslat
	zCartesian := (height + (1-ecc2)*primeRadius) * sinlat
	radius = math.Hypot(xyProjection, zCartesian)
	sphericalLatitude = degrees(math.Asin(zCartesian / radius))

	return longitude, sphericalLatitude, radius
}

// SphericalToGeodetic converts geocentric spherical coordinates (longitude,
// spherical latitude in degrees, radius in meters) to geodetic coordinates
// (longitude, latitude in degrees, ellipsoidal height in meters) on the
// datum defined by e, following Vermeille (2002).
//
// The quartic at the heart of the inversion is solved through an
// intermediate cubic; the helper terms p0…w0 and k below follow the paper's
// notation, each depending on the previous ones, and the same k recovers
// both the D term and the height.
func SphericalToGeodetic(e *body.Ellipsoid, longitude, sphericalLatitude, radius float64) (lon, latitude, height float64) {
	a := e.SemimajorAxis()
	ecc := e.FirstEccentricity()
	ecc2 := ecc * ecc
	ecc4 := ecc2 * ecc2

	sinlat := math.Sin(radians(sphericalLatitude))
	coslat := math.Sqrt(1 - sinlat*sinlat)
	bigZ := radius * sinlat

	p0 := radius * radius * coslat * coslat / (a * a)
	q0 := (1 - ecc2) / (a * a) * bigZ * bigZ
	r0 := (p0 + q0 - ecc4) / 6
	s0 := ecc4 * p0 * q0 / (4 * r0 * r0 * r0)
	t0 := math.Cbrt(1 + s0 + math.Sqrt(2*s0+s0*s0))
	u0 := r0 * (1 + t0 + 1/t0)
	v0 := math.Sqrt(u0*u0 + q0*ecc4)
	w0 := ecc2 * (u0 + v0 - q0) / (2 * v0)
	k := math.Sqrt(u0+v0+w0*w0) - w0

	bigD := k * radius * coslat / (k + ecc2)
	hypotDZ := math.Hypot(bigD, bigZ)
	latitude = degrees(2 * math.Atan2(bigZ, bigD+hypotDZ))
	height = (k + ecc2 - 1) / k * hypotDZ

	return longitude, latitude, height
}

// GeodeticToSphericalSlice is the elementwise form of GeodeticToSpherical.
//
// latitude and height must have the same length. longitude may be nil (the
// conversion never uses it); when present it must match the other lengths
// and is returned unchanged. A nil longitude yields a nil longitude result.
func GeodeticToSphericalSlice(e *body.Ellipsoid, longitude, latitude, height []float64) (lon, sphericalLatitude, radius []float64, err error) {
	if err = checkLengths(longitude, latitude, height); err != nil {
		return nil, nil, nil, err
	}

	sphericalLatitude = make([]float64, len(latitude))
	radius = make([]float64, len(latitude))
	if longitude != nil {
		lon = append([]float64(nil), longitude...)
	}
	for i := range latitude {
		_, sphericalLatitude[i], radius[i] = GeodeticToSpherical(e, 0, latitude[i], height[i])
	}

	return lon, sphericalLatitude, radius, nil
}

// SphericalToGeodeticSlice is the elementwise form of SphericalToGeodetic.
//
// sphericalLatitude and radius must have the same length. longitude may be
// nil; when present it must match the other lengths and is returned
// unchanged.
func SphericalToGeodeticSlice(e *body.Ellipsoid, longitude, sphericalLatitude, radius []float64) (lon, latitude, height []float64, err error) {
	if err = checkLengths(longitude, sphericalLatitude, radius); err != nil {
		return nil, nil, nil, err
	}

	latitude = make([]float64, len(sphericalLatitude))
	height = make([]float64, len(sphericalLatitude))
	if longitude != nil {
		lon = append([]float64(nil), longitude...)
	}
	for i := range sphericalLatitude {
		_, latitude[i], height[i] = SphericalToGeodetic(e, 0, sphericalLatitude[i], radius[i])
	}

	return lon, latitude, height, nil
}

// checkLengths verifies that the two mandatory slices match and that the
// optional longitude slice, when non-nil, matches them as well.
func checkLengths(longitude, first, second []float64) error {
	if len(first) != len(second) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(first), len(second))
	}
	if longitude != nil && len(longitude) != len(first) {
		return fmt.Errorf("%w: longitude %d vs %d", ErrLengthMismatch, len(longitude), len(first))
	}

	return nil
}

// radians converts degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// degrees converts radians to degrees.
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
