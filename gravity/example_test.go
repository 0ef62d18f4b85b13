package gravity_test

import (
	"fmt"

	"github.com/astroforma/refbody/body"
	"github.com/astroforma/refbody/gravity"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNormalGravity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate the normal gravity of the WGS84 ellipsoid on its surface at the
//	equator and at the pole, in SI units.
//
// ExampleNormalGravity demonstrates closed-form normal gravity on a datum.
func ExampleNormalGravity() {
	wgs84, err := body.NewEllipsoid(6378137, 1/298.257223563, 3986004.418e8, 7292115e-11,
		body.WithName("WGS84"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := gravity.DefaultOptions()
	opts.SIUnits = true

	equator, _ := gravity.NormalGravity(wgs84, 0, 0, &opts)
	pole, _ := gravity.NormalGravity(wgs84, 90, 0, &opts)
	fmt.Printf("gravity at the equator = %.10f m/s2\n", equator)
	fmt.Printf("gravity at the pole    = %.10f m/s2\n", pole)
	// Output:
	// gravity at the equator = 9.7803253359 m/s2
	// gravity at the pole    = 9.8321849379 m/s2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNormalGravity_sphere
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A rotating unit sphere (R = 1 m, GM = 2 m³/s², ω = 0.5 rad/s) whose
//	gravity values are exact, in the default mGal convention.
//
// ExampleNormalGravity_sphere demonstrates the spherical variant and the
// default unit convention.
func ExampleNormalGravity_sphere() {
	s, err := body.NewSphere(1, 2, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	equator, _ := gravity.NormalGravity(s, 0, 0, nil)
	pole, _ := gravity.NormalGravity(s, 90, 0, nil)
	fmt.Printf("equator = %.2f mGal\n", equator)
	fmt.Printf("pole    = %.2f mGal\n", pole)
	// Output:
	// equator = 175000.00 mGal
	// pole    = 200000.00 mGal
}
