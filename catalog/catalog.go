package catalog

import (
	"errors"
	"fmt"

	"github.com/astroforma/refbody/body"
)

// ErrUnknownBody indicates a lookup for a name not present in the catalog.
var ErrUnknownBody = errors.New("catalog: unknown body name")

// hofmannMoritz2006 is the citation shared by the classic geodetic reference
// systems.
const hofmannMoritz2006 = "Hofmann-Wellenhof, B., & Moritz, H. (2006). Physical Geodesy " +
	"(2nd, corr. ed. 2006 edition ed.). Wien; New York: Springer."

// wieczorek2015 is the citation shared by the terrestrial-planet spheroids.
const wieczorek2015 = "Wieczorek, MA (2015). 10.05 - Gravity and Topography of the Terrestrial " +
	"Planets, Treatise of Geophysics (Second Edition); Elsevier. " +
	"doi:10.1016/B978-0-444-53802-4.00169-X"

// Geodetic reference ellipsoids for the Earth.
var (
	// WGS84 is the World Geodetic System 1984 ellipsoid.
	WGS84 = mustEllipsoid(6378137, 1/298.257223563, 3986004.418e8, 7292115e-11,
		body.WithName("WGS84"),
		body.WithLongName("World Geodetic System 1984"),
		body.WithReference(hofmannMoritz2006),
	)

	// GRS80 is the Geodetic Reference System 1980 ellipsoid.
	GRS80 = mustEllipsoid(6378137, 1/298.257222101, 3986005.0e8, 7292115e-11,
		body.WithName("GRS80"),
		body.WithLongName("Geodetic Reference System 1980"),
		body.WithReference(hofmannMoritz2006),
	)

	// EGM96 is the ellipsoid of the Earth Gravitational Model 1996.
	EGM96 = mustEllipsoid(6378136.3, 1/298.256415099, 3986004.415e8, 7292115e-11,
		body.WithName("EGM96"),
		body.WithLongName("Earth Gravitational Model 1996"),
		body.WithReference("Lemoine, F. G., et al. (1998). The Development of the Joint NASA "+
			"GSFC and the National Imagery and Mapping Agency (NIMA) Geopotential "+
			"Model EGM96. NASA Goddard Space Flight Center."),
	)
)

// Planetary bodies.
var (
	// Mars2009 is the Mars reference ellipsoid of Ardalan et al. (2009).
	Mars2009 = mustEllipsoid(3395428, (3395428.0-3377678.0)/3395428.0, 42828.372e9, 7.0882181e-5,
		body.WithName("Mars2009"),
		body.WithLongName("Mars Ellipsoid"),
		body.WithReference("Ardalan, A. A., Karimi, R., & Grafarend, E. W. (2009). A New "+
			"Reference Equipotential Surface, and Reference Ellipsoid for the Planet "+
			"Mars. Earth, Moon, and Planets, 106(1), 1. doi:10.1007/s11038-009-9342-7"),
	)

	// Venus2015 is the Venus spheroid. The negative angular velocity encodes
	// its retrograde rotation.
	Venus2015 = mustSphere(6051878, 324.858592e12, -299.24e-9,
		body.WithName("Venus2015"),
		body.WithLongName("Venus Spheroid"),
		body.WithReference(wieczorek2015),
	)

	// Moon2015 is the Moon spheroid.
	Moon2015 = mustSphere(1737151, 4.90280007e12, 2.6617073e-6,
		body.WithName("Moon2015"),
		body.WithLongName("Moon Spheroid"),
		body.WithReference(wieczorek2015),
	)

	// Mercury2015 is the Mercury spheroid.
	Mercury2015 = mustSphere(2439372, 22.031839221e12, 1.2400172589e-6,
		body.WithName("Mercury2015"),
		body.WithLongName("Mercury Spheroid"),
		body.WithReference(wieczorek2015),
	)

	// Vesta2012 is the triaxial ellipsoid of asteroid (4) Vesta from the Dawn
	// mission.
	Vesta2012 = mustTriaxial(286300, 278600, 223200, 1.729094e10, 326.71050958367e-6,
		body.WithName("Vesta2012"),
		body.WithLongName("Vesta Triaxial Ellipsoid"),
		body.WithReference("Russell, C. T., Raymond, C. A., Coradini, A., McSween, H. Y., "+
			"Zuber, M. T., Nathues, A., et al. (2012). Dawn at Vesta: Testing the "+
			"Protoplanetary Paradigm. Science. doi:10.1126/science.1219381"),
	)
)

// registry indexes the catalog by short name, in a stable listing order.
var registry = []body.Body{
	WGS84, GRS80, EGM96,
	Mars2009, Venus2015, Moon2015, Mercury2015, Vesta2012,
}

// All returns the catalog bodies in a stable order. The slice is a copy; the
// bodies themselves are shared immutable records.
func All() []body.Body {
	return append([]body.Body(nil), registry...)
}

// Get returns the catalog body with the given short name, or ErrUnknownBody.
func Get(name string) (body.Body, error) {
	for _, b := range registry {
		if b.Name() == name {
			return b, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

// mustEllipsoid constructs a catalog ellipsoid, panicking on invalid static
// data. Catalog parameters are fixed at compile time, so a failure here is a
// programming error, not user input.
func mustEllipsoid(a, f, gm, omega float64, opts ...body.Option) *body.Ellipsoid {
	e, err := body.NewEllipsoid(a, f, gm, omega, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// mustSphere constructs a catalog sphere, panicking on invalid static data.
func mustSphere(radius, gm, omega float64, opts ...body.Option) *body.Sphere {
	s, err := body.NewSphere(radius, gm, omega, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// mustTriaxial constructs a catalog triaxial ellipsoid, panicking on invalid
// static data.
func mustTriaxial(a, b, c, gm, omega float64, opts ...body.Option) *body.TriaxialEllipsoid {
	t, err := body.NewTriaxialEllipsoid(a, b, c, gm, omega, opts...)
	if err != nil {
		panic(err)
	}

	return t
}
