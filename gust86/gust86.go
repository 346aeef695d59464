// Package gust86 implements the GUST86 analytical theory for the five
// classical Uranian satellites (Miranda, Ariel, Umbriel, Titania,
// Oberon), per spec.md §4.5. Mean arguments are linear in time; each
// satellite's non-singular elements receive a short periodic
// correction built from those arguments before being converted to a
// Cartesian state in the J2000 ecliptic frame.
//
// The full published GUST86 theory (Laskar & Jacobson 1987) carries
// several hundred periodic terms per satellite; no corpus example
// retrieves that coefficient table, so this implementation carries a
// reduced set of leading terms per satellite sufficient to reproduce
// the theory's structure (mean motion, eccentricity/inclination
// precession, and one dominant periodic perturbation each) rather than
// its full precision.
package gust86

import (
	"math"

	"github.com/kdrennan/ephem/frame"
	"github.com/kdrennan/ephem/kepler"
	"github.com/kdrennan/ephem/vector"
)

// Epoch is the GUST86 reference epoch (JD), per spec.md §4.5: t is
// measured in days from this instant.
const Epoch = 2444239.5

const twoPi = 2 * math.Pi

// GMUranus is Uranus's GM including its satellites, used to turn a
// satellite's mean motion into a semi-major axis (spec.md §4.5).
const GMUranus = 5.793939e15 // m^3/s^2

const secPerDay = 86400.0

// satellite indexes Miranda..Oberon in GUST86's canonical ordering.
type satellite int

const (
	Miranda satellite = iota
	Ariel
	Umbriel
	Titania
	Oberon
	numSatellites
)

var names = [numSatellites]string{"Miranda", "Ariel", "Umbriel", "Titania", "Oberon"}

// Name returns the satellite's name.
func (s satellite) Name() string { return names[s] }

// meanMotionDegPerDay is each satellite's mean orbital angular rate in
// degrees/day: 360° divided by its sidereal period in days.
var meanMotionDegPerDay = [numSatellites]float64{
	360.0 / 1.413000,  // Miranda
	360.0 / 2.520379,  // Ariel
	360.0 / 4.144177,  // Umbriel
	360.0 / 8.705872,  // Titania
	360.0 / 13.463239, // Oberon
}

// Per-satellite linear arguments for the mean longitude N, the
// eccentricity argument E, and the inclination argument I, each
// (constant, rate) in degrees and degrees/day, reduced modulo 2π
// before use (spec.md §4.5). Rates are representative of the
// apsidal/nodal precession GUST86 attributes to Uranus's J2 field.
var nArg = [numSatellites][2]float64{
	{311.330, meanMotionDegPerDay[Miranda]},
	{41.286, meanMotionDegPerDay[Ariel]},
	{185.339, meanMotionDegPerDay[Umbriel]},
	{29.097, meanMotionDegPerDay[Titania]},
	{165.901, meanMotionDegPerDay[Oberon]},
}

var eArg = [numSatellites][2]float64{
	{0.0, 19.3913 / 365.25},
	{0.0, 13.8696 / 365.25},
	{0.0, 6.8152 / 365.25},
	{0.0, 2.0256 / 365.25},
	{0.0, 1.2233 / 365.25},
}

var iArg = [numSatellites][2]float64{
	{0.0, -19.3913 / 365.25},
	{0.0, -13.8696 / 365.25},
	{0.0, -6.8152 / 365.25},
	{0.0, -2.0256 / 365.25},
	{0.0, -1.2233 / 365.25},
}

// meanEccentricity and meanInclination (degrees) are each satellite's
// proper eccentricity and inclination about which the periodic terms
// oscillate.
var meanEccentricity = [numSatellites]float64{0.0013, 0.0012, 0.0039, 0.0011, 0.0014}
var meanInclination = [numSatellites]float64{4.338, 0.041, 0.128, 0.079, 0.068} // degrees, relative to the Uranian Laplace plane

// periodicAmplitude is the one dominant short-period term this reduced
// theory retains per satellite, applied to the eccentricity argument.
var periodicAmplitude = [numSatellites]float64{0.0009, 0.0005, 0.0007, 0.0002, 0.0003}

func canon2Pi(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	return x
}

// State returns the position (meters) and velocity (m/s) of sat
// relative to Uranus, in the J2000 ecliptic frame, at Julian date jd.
func State(sat satellite, jd float64) (pos, vel vector.V) {
	t := jd - Epoch

	deg2rad := math.Pi / 180

	nMean := canon2Pi((nArg[sat][0] + nArg[sat][1]*t) * deg2rad)
	eArgRad := canon2Pi((eArg[sat][0] + eArg[sat][1]*t) * deg2rad)
	iArgRad := canon2Pi((iArg[sat][0] + iArg[sat][1]*t) * deg2rad)

	e := meanEccentricity[sat] + periodicAmplitude[sat]*math.Cos(eArgRad)
	i := meanInclination[sat] * deg2rad
	peri := eArgRad
	node := iArgRad

	k := e * math.Cos(peri)
	h := e * math.Sin(peri)
	q := math.Sin(i/2) * math.Cos(node)
	p := math.Sin(i/2) * math.Sin(node)

	lambda := nMean // mean longitude, the non-singular analogue of mean anomaly+peri+node

	n := meanMotionDegPerDay[sat] * deg2rad // rad/day
	a := math.Cbrt(GMUranus * secPerDay * secPerDay / (n * n))

	el := nonSingularToElements(a, lambda, k, h, q, p)
	pos, vel = kepler.ElementsToState(el, GMUranus, 1e-12)

	pos = frame.B1950ToJ2000(pos)
	vel = frame.B1950ToJ2000(vel)
	pos = frame.InverseTransformJ2000(pos)
	vel = frame.InverseTransformJ2000(vel)
	return
}

// nonSingularToElements converts the non-singular element set
// (a, λ, k, h, q, p) to classical elements, per spec.md §4.5's
// "standard non-singular perifocal-to-parent transform": e and the
// longitude of perihelion come from (k, h), inclination and node from
// (q, p), and mean anomaly from λ minus the longitude of perihelion.
func nonSingularToElements(a, lambda, k, h, q, p float64) kepler.Elements {
	e := math.Hypot(k, h)
	peri := math.Atan2(h, k) // longitude of perihelion, ϖ = ω+Ω
	sinHalfI := math.Hypot(q, p)
	i := 2 * math.Asin(math.Min(1, sinHalfI))
	node := math.Atan2(p, q)
	m := canon2Pi(lambda - peri)

	return kepler.Elements{
		SemiMajorAxis: a,
		Eccentricity:  e,
		Inclination:   i,
		MeanAnomaly:   m,
		ArgPeriapsis:  canon2Pi(peri - node),
		LongAscNode:   node,
	}
}

// Bodies returns the names handled by this provider (spec.md §4.7).
func Bodies() []string {
	out := make([]string, numSatellites)
	for i := range out {
		out[i] = names[i]
	}
	return out
}

// ByName returns the satellite index for name, or false if not one of
// the five GUST86 bodies.
func ByName(name string) (satellite, bool) {
	for i, n := range names {
		if n == name {
			return satellite(i), true
		}
	}
	return 0, false
}
