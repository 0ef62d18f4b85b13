package coord_test

import (
	"fmt"

	"github.com/astroforma/refbody/body"
	"github.com/astroforma/refbody/coord"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGeodeticToSpherical
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Convert two surface points on the WGS84 datum — one on the equator, one
//	at the north pole — to geocentric spherical coordinates. The surface
//	radius is the semimajor axis at the equator and the semiminor axis at
//	the pole.
//
// ExampleGeodeticToSpherical demonstrates the geodetic to spherical conversion.
func ExampleGeodeticToSpherical() {
	wgs84, err := body.NewEllipsoid(6378137, 1/298.257223563, 3986004.418e8, 7292115e-11)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_, sphlat, radius := coord.GeodeticToSpherical(wgs84, 0, 0, 0)
	fmt.Printf("equator: latitude=%.1f radius=%.4f m\n", sphlat, radius)

	_, sphlat, radius = coord.GeodeticToSpherical(wgs84, 0, 90, 0)
	fmt.Printf("pole:    latitude=%.1f radius=%.4f m\n", sphlat, radius)
	// Output:
	// equator: latitude=0.0 radius=6378137.0000 m
	// pole:    latitude=90.0 radius=6356752.3142 m
}
