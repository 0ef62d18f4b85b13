package coord_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/astroforma/refbody/coord"
	"github.com/stretchr/testify/assert"
)

// TestGeodeticToEllipsoidalHarmonic_OnSurface verifies the height-zero branch:
// u must be exactly the semiminor axis and β the classic reduced latitude
// tan β = (1 − f)·tan φ.
func TestGeodeticToEllipsoidalHarmonic_OnSurface(t *testing.T) {
	e := newWGS84(t)
	oneMinusF := 1 - e.Flattening()

	for _, lat := range []float64{-75, -30, 0, 12.5, 45, 80} {
		beta, u := coord.GeodeticToEllipsoidalHarmonic(e, lat, 0)
		assert.Equal(t, e.SemiminorAxis(), u, "surface points lie on the datum itself")

		want := math.Atan(oneMinusF*math.Tan(lat*math.Pi/180)) * 180 / math.Pi
		assert.InDelta(t, want, beta, 1e-12, "reduced latitude at lat %v", lat)
	}
}

// TestGeodeticToEllipsoidalHarmonic_PreservesHemisphere verifies the sign
// convention of β off the surface.
func TestGeodeticToEllipsoidalHarmonic_PreservesHemisphere(t *testing.T) {
	e := newWGS84(t)

	north, _ := coord.GeodeticToEllipsoidalHarmonic(e, 40, 1000)
	south, _ := coord.GeodeticToEllipsoidalHarmonic(e, -40, 1000)
	assert.Positive(t, north)
	assert.Negative(t, south)
	assert.InDelta(t, north, -south, 1e-12, "β is antisymmetric in the latitude")
}

// TestEllipsoidalHarmonicRoundTrip converts geodetic points above and below
// the surface to (β, u) and back.
func TestEllipsoidalHarmonicRoundTrip(t *testing.T) {
	e := newWGS84(t)

	for _, lat := range []float64{-90, -62.5, -15, 0, 30, 77, 90} {
		for _, h := range []float64{-5000, 1000, 450000} {
			name := fmt.Sprintf("lat=%v/h=%v", lat, h)
			beta, u := coord.GeodeticToEllipsoidalHarmonic(e, lat, h)
			backLat, backH := coord.EllipsoidalHarmonicToGeodetic(e, beta, u)

			assert.InDelta(t, lat, backLat, 1e-8, name)
			assert.InDelta(t, h, backH, 1e-5, name)
		}
	}
}

// TestEllipsoidalHarmonicToGeodetic_SurfaceInverse verifies that feeding the
// datum itself (u = b) back through the inverse lands on the surface.
func TestEllipsoidalHarmonicToGeodetic_SurfaceInverse(t *testing.T) {
	e := newWGS84(t)

	for _, lat := range []float64{-60, 0, 35, 89} {
		beta, u := coord.GeodeticToEllipsoidalHarmonic(e, lat, 0)
		backLat, backH := coord.EllipsoidalHarmonicToGeodetic(e, beta, u)
		assert.InDelta(t, lat, backLat, 1e-10, "surface latitude round-trip")
		assert.InDelta(t, 0, backH, 1e-7, "surface height must come back as zero")
	}
}
