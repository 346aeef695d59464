// Package frame implements the frame and unit conventions of spec.md
// §4.6: every state the dispatcher returns is expressed in the J2000 mean
// ecliptic frame, obtained from an equatorial J2000 (or B1950) input by a
// single fixed rotation.
package frame

import (
	"math"

	"github.com/kdrennan/ephem/vector"
)

// sinEps, cosEps are the sine and cosine of the obliquity used by
// InverseTransformJ2000. spec.md §4.6 fixes sinε = -0.397776995 exactly
// (note the sign: this is the *inverse* rotation baked directly into the
// constant, not the textbook +0.397777156 mean obliquity of date).
const sinEps = -0.397776995

var cosEps = math.Sqrt(1 - sinEps*sinEps)

// InverseTransformJ2000 rotates a J2000 mean-equatorial vector about the
// x-axis by ε (sinε = -0.397776995) into the J2000 mean-ecliptic frame,
// per spec.md §4.6. It is applied to any subsystem output that is
// produced in the equatorial frame before it escapes the dispatcher.
func InverseTransformJ2000(v vector.V) vector.V {
	return vector.V{
		v[0],
		cosEps*v[1] - sinEps*v[2],
		sinEps*v[1] + cosEps*v[2],
	}
}

// icrfToB1950 is the rotation matrix from ICRF (J2000 equatorial) to the
// mean equator and equinox of B1950 (FK4): v_B1950 = icrfToB1950 * v_icrf
// (SPICE Toolkit / Skyfield).
var icrfToB1950 = vector.Matrix{
	{0.99992570795236291, 0.011178938126427691, 0.0048590038414544293},
	{-0.011178938137770135, 0.9999375133499887, -2.715792625851078e-05},
	{-0.0048590038153592712, -2.7162594714247048e-05, 0.9999881946023742},
}

// b1950ToICRF is the rotation matrix from B1950 to ICRF/J2000-equatorial,
// the transpose of icrfToB1950 (an orthogonal rotation matrix's transpose
// is its inverse).
var b1950ToICRF = icrfToB1950.Transpose()

// B1950ToJ2000 rotates a B1950-equatorial vector to J2000-equatorial,
// used to bring legacy series (e.g. GUST86) into the common frame before
// the final ecliptic rotation (spec.md §4.6).
func B1950ToJ2000(v vector.V) vector.V {
	return b1950ToICRF.Apply(v)
}

// EclipticToEquatorialJ2000 is the forward J2000 ecliptic->equatorial
// rotation (the inverse of InverseTransformJ2000), useful for providers
// whose native series is already expressed in the ecliptic frame and
// need to cross-check against an equatorial reference.
func EclipticToEquatorialJ2000(v vector.V) vector.V {
	return vector.V{
		v[0],
		cosEps*v[1] + sinEps*v[2],
		-sinEps*v[1] + cosEps*v[2],
	}
}
