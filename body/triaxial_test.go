package body_test

import (
	"math"
	"testing"

	"github.com/astroforma/refbody/body"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newVesta builds the Vesta triaxial fixture (Russell et al., 2012).
func newVesta(t *testing.T) *body.TriaxialEllipsoid {
	t.Helper()
	v, err := body.NewTriaxialEllipsoid(286300, 278600, 223200, 1.729094e10, 326.71050958367e-6,
		body.WithName("VESTA"))
	require.NoError(t, err)

	return v
}

// TestNewTriaxialEllipsoid_RejectsNonPositiveAxes verifies the per-axis
// positivity checks.
func TestNewTriaxialEllipsoid_RejectsNonPositiveAxes(t *testing.T) {
	_, err := body.NewTriaxialEllipsoid(0, 1, 1, 1, 0)
	assert.ErrorIs(t, err, body.ErrInvalidAxis, "zero semimajor axis")

	_, err = body.NewTriaxialEllipsoid(3, -2, 1, 1, 0)
	assert.ErrorIs(t, err, body.ErrInvalidAxis, "negative semimedium axis")

	_, err = body.NewTriaxialEllipsoid(3, 2, 0, 1, 0)
	assert.ErrorIs(t, err, body.ErrInvalidAxis, "zero semiminor axis")
}

// TestNewTriaxialEllipsoid_RejectsUnorderedAxes verifies the construction-time
// ordering cross-check a ≥ b ≥ c.
func TestNewTriaxialEllipsoid_RejectsUnorderedAxes(t *testing.T) {
	_, err := body.NewTriaxialEllipsoid(1, 2, 3, 1, 0)
	assert.ErrorIs(t, err, body.ErrAxisOrder, "increasing axes must be rejected")

	_, err = body.NewTriaxialEllipsoid(3, 1, 2, 1, 0)
	assert.ErrorIs(t, err, body.ErrAxisOrder, "minor above medium must be rejected")

	// Equal axes satisfy a ≥ b ≥ c and must construct.
	_, err = body.NewTriaxialEllipsoid(1, 1, 1, 1, 0)
	assert.NoError(t, err, "equal axes are a valid degenerate triaxial ellipsoid")
}

// TestNewTriaxialEllipsoid_NegativeGMIsAdvisory verifies the non-fatal GM
// warning.
func TestNewTriaxialEllipsoid_NegativeGMIsAdvisory(t *testing.T) {
	v, err := body.NewTriaxialEllipsoid(3, 2, 1, -1, 0)
	require.NoError(t, err)
	assert.Len(t, v.Warnings(), 1, "negative GM must record one warning")
}

// TestTriaxialEllipsoid_Flattenings verifies the equatorial and meridional
// flattening definitions.
func TestTriaxialEllipsoid_Flattenings(t *testing.T) {
	v := newVesta(t)
	assert.InEpsilon(t, (286300.0-278600.0)/286300.0, v.EquatorialFlattening(), 1e-12)
	assert.InEpsilon(t, (286300.0-223200.0)/286300.0, v.MeridionalFlattening(), 1e-12)
}

// TestTriaxialEllipsoid_GeocentricRadiusAtAxes verifies that the Pěč closed
// form recovers each semi-axis along its own direction.
func TestTriaxialEllipsoid_GeocentricRadiusAtAxes(t *testing.T) {
	v := newVesta(t)

	assert.InDelta(t, v.SemimajorAxis(), v.GeocentricRadius(0, 0), 1e-6,
		"radius along the semimajor axis")
	assert.InDelta(t, v.SemimediumAxis(), v.GeocentricRadius(90, 0), 1e-6,
		"radius along the semimedium axis")
	assert.InDelta(t, v.SemiminorAxis(), v.GeocentricRadius(0, 90), 1e-6,
		"radius along the rotation axis")
	assert.InDelta(t, v.SemiminorAxis(), v.GeocentricRadius(123, -90), 1e-6,
		"south pole radius is longitude-free")
}

// TestTriaxialEllipsoid_GeocentricRadiusHonorsAxisLongitude verifies the
// orientation of the semimajor axis in the equatorial plane.
func TestTriaxialEllipsoid_GeocentricRadiusHonorsAxisLongitude(t *testing.T) {
	v, err := body.NewTriaxialEllipsoid(3, 2, 1, 1, 0,
		body.WithSemimajorAxisLongitude(45))
	require.NoError(t, err)

	assert.Equal(t, 45.0, v.SemimajorAxisLongitude())
	assert.InDelta(t, 3.0, v.GeocentricRadius(45, 0), 1e-12,
		"semimajor axis now points at longitude 45")
	assert.InDelta(t, 2.0, v.GeocentricRadius(135, 0), 1e-12,
		"semimedium axis is 90 degrees away")
}

// TestTriaxialEllipsoid_VolumeAndArithmeticMeanRadius checks the Vesta
// reference values.
func TestTriaxialEllipsoid_VolumeAndArithmeticMeanRadius(t *testing.T) {
	v := newVesta(t)
	assert.InDelta(t, 262700, v.ArithmeticMeanRadius(), 1e-6, "Vesta (a+b+c)/3")
	assert.InEpsilon(t, 74573626e9, v.Volume(), 1e-6, "Vesta volume")
}

// TestTriaxialEllipsoid_DegenerateOblateMatchesEllipsoid verifies that with
// a == b the triaxial mean radius and area collapse to the oblate closed
// forms of Ellipsoid.
func TestTriaxialEllipsoid_DegenerateOblateMatchesEllipsoid(t *testing.T) {
	const a, c = 6378137.0, 6356752.314245179
	tri, err := body.NewTriaxialEllipsoid(a, a, c, 3986004.418e8, 7292115e-11)
	require.NoError(t, err)
	obl, err := body.NewEllipsoid(a, (a-c)/a, 3986004.418e8, 7292115e-11)
	require.NoError(t, err)

	assert.InEpsilon(t, obl.MeanRadius(), tri.MeanRadius(), 1e-10,
		"2-D quadrature must collapse to the 1-D result for a rotationally symmetric body")
	assert.InEpsilon(t, obl.Area(), tri.Area(), 1e-10,
		"elliptic-integral area must collapse to the arctanh closed form")
	assert.InEpsilon(t, obl.Volume(), tri.Volume(), 1e-12, "volumes must agree")
}

// TestTriaxialEllipsoid_SphereDegenerateArea verifies the equal-axes branch.
func TestTriaxialEllipsoid_SphereDegenerateArea(t *testing.T) {
	v, err := body.NewTriaxialEllipsoid(2, 2, 2, 1, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 16*math.Pi, v.Area(), 1e-12, "4πr² for equal axes")
	assert.InEpsilon(t, 2.0, v.MeanRadius(), 1e-14, "degree-0 mean radius of a sphere is its radius")
}

// TestTriaxialEllipsoid_AreaNearThomsenApproximation checks the
// elliptic-integral surface area of Vesta against the Thomsen approximation
// A ≈ 4π·((aᵖbᵖ + aᵖcᵖ + bᵖcᵖ)/3)^(1/p) with p = 1.6075, whose worst-case
// relative error is about 1.1%.
func TestTriaxialEllipsoid_AreaNearThomsenApproximation(t *testing.T) {
	v := newVesta(t)
	const p = 1.6075
	ap := math.Pow(v.SemimajorAxis(), p)
	bp := math.Pow(v.SemimediumAxis(), p)
	cp := math.Pow(v.SemiminorAxis(), p)
	approx := 4 * math.Pi * math.Pow((ap*bp+ap*cp+bp*cp)/3, 1/p)

	assert.InEpsilon(t, approx, v.Area(), 0.015, "Vesta surface area")
	assert.Greater(t, v.AreaEquivalentRadius(), v.SemiminorAxis())
	assert.Less(t, v.AreaEquivalentRadius(), v.SemimajorAxis())
}

// TestTriaxialEllipsoid_MeanRadiusBounds verifies that the quadrature mean
// radius of Vesta lies strictly between the smallest and largest semi-axes.
func TestTriaxialEllipsoid_MeanRadiusBounds(t *testing.T) {
	v := newVesta(t)
	r0 := v.MeanRadius()
	assert.Greater(t, r0, v.SemiminorAxis())
	assert.Less(t, r0, v.SemimajorAxis())
}
