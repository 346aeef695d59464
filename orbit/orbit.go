// Package orbit evaluates the two orbit-parameter record shapes of
// spec.md §3 — a 16-double seed-plus-rates-plus-long-period record for
// Jupiter through Pluto, and a 7-double instantaneous-element record for
// comets and minor planets — at an arbitrary Julian date, and samples the
// resulting orbit for plotting or coverage checks (spec.md §4.2).
package orbit

import (
	"math"

	"github.com/kdrennan/ephem/kepler"
	"github.com/kdrennan/ephem/timescale"
	"github.com/kdrennan/ephem/vector"
)

const deg2rad = math.Pi / 180

// defaultEps is the Kepler-solver tolerance used throughout this package
// when the caller doesn't need a different one.
const defaultEps = 1e-12

// Record16 holds the 16-double orbit-parameter record: seed elements, per
// century rates, and up to four long-period terms (b, c, s, f), per
// spec.md §3. Angles are stored in degrees (the record's native unit);
// a is in AU.
type Record16 struct {
	A0, ADot       float64 // semi-major axis (AU) and its rate (AU/century)
	E0, EDot       float64 // eccentricity and its rate (1/century)
	I0, IDot       float64 // inclination (deg) and its rate (deg/century)
	L0, LDot       float64 // mean longitude (deg) and its rate (deg/century)
	Peri0, PeriDot float64 // longitude of perihelion ϖ (deg) and its rate
	Node0, NodeDot float64 // longitude of ascending node Ω (deg) and its rate
	B, C, S, F     float64 // long-period terms, deg: M += B·T² + C·cos(F·T) + S·sin(F·T)
}

// Record7 holds the 7-double instantaneous orbit-parameter record used
// for comets and asteroids: a (AU), e, i (deg), ω (deg), Ω (deg),
// perihelion-passage Julian date Tp, and mean motion n (deg/day).
type Record7 struct {
	A, E, I, ArgPeri, Node float64
	Tp                     float64
	N                      float64 // deg/day
}

func canonDeg(a float64) float64 {
	a = math.Mod(a+180, 360)
	if a <= 0 {
		a += 360
	}
	return a - 180
}

// Evaluate produces classical elements (radians) at Julian date jd for a
// 16-element record, per spec.md §4.2: a,e,i,L,ϖ,Ω are linear in century T
// past J2000; ω = ϖ-Ω; M = L-ϖ + long-period correction.
func (r Record16) Evaluate(jd float64) kepler.Elements {
	T := timescale.CenturiesSinceJ2000(jd)

	a := r.A0 + r.ADot*T
	e := r.E0 + r.EDot*T
	i := r.I0 + r.IDot*T
	l := r.L0 + r.LDot*T
	peri := r.Peri0 + r.PeriDot*T
	node := r.Node0 + r.NodeDot*T

	w := peri - node
	m := l - peri
	if r.F != 0 || r.B != 0 || r.C != 0 || r.S != 0 {
		fRad := r.F * deg2rad
		m += r.B*T*T + r.C*math.Cos(fRad*T) + r.S*math.Sin(fRad*T)
	}

	return kepler.Elements{
		SemiMajorAxis: a * auMeters,
		Eccentricity:  e,
		Inclination:   i * deg2rad,
		MeanAnomaly:   canonDeg(m) * deg2rad,
		ArgPeriapsis:  canonDeg(w) * deg2rad,
		LongAscNode:   node * deg2rad,
	}
}

// auMeters is 1 AU in meters (spec.md GLOSSARY).
const auMeters = 1.49597870691e11

// Evaluate produces classical elements (radians) at Julian date jd for a
// 7-element record: M = (jd-Tp)*n, canonicalized only for elliptic orbits
// (spec.md §4.2).
func (r Record7) Evaluate(jd float64) kepler.Elements {
	m := (jd - r.Tp) * r.N
	if r.E < 1 {
		m = canonDeg(m)
	}
	a := r.A
	if r.E >= 1 {
		a = -math.Abs(r.A)
	}
	return kepler.Elements{
		SemiMajorAxis: a * auMeters,
		Eccentricity:  r.E,
		Inclination:   r.I * deg2rad,
		MeanAnomaly:   m * deg2rad,
		ArgPeriapsis:  r.ArgPeri * deg2rad,
		LongAscNode:   r.Node * deg2rad,
	}
}

// Position returns the heliocentric position (meters) of the given
// elements at the gravitational parameter mu (m^3/s^2), via Kepler/
// hyperbolic-Kepler solution and perifocal-to-frame rotation (spec.md
// §4.2).
func Position(el kepler.Elements, mu float64) vector.V {
	pos, _ := kepler.ElementsToState(el, mu, defaultEps)
	return pos
}

// Velocity returns the heliocentric velocity (m/s) of the given elements,
// using the analytic perifocal-velocity formulas of spec.md §4.2 (the
// "preferred" path, rather than numeric differentiation).
func Velocity(el kepler.Elements, mu float64) vector.V {
	_, vel := kepler.ElementsToState(el, mu, defaultEps)
	return vel
}

// State returns both position and velocity in one Kepler solve.
func State(el kepler.Elements, mu float64) (pos, vel vector.V) {
	return kepler.ElementsToState(el, mu, defaultEps)
}

// samplePoints is the fixed number of points spec.md §4.2 requires
// ("Orbit sampling: return 361 points").
const samplePoints = 361

// Sample returns 361 (position,velocity) pairs around one full orbital
// cycle for an elliptic orbit (stepping the eccentric anomaly uniformly
// over [0, 2π]), or a symmetric window around perihelion for a
// hyperbolic orbit (stepping the hyperbolic anomaly over [-Hmax, Hmax]).
func Sample(el kepler.Elements, mu float64) [][2]vector.V {
	out := make([][2]vector.V, samplePoints)
	if el.Eccentricity < 1 {
		for k := 0; k < samplePoints; k++ {
			E := 2 * math.Pi * float64(k) / float64(samplePoints-1)
			m := E - el.Eccentricity*math.Sin(E)
			e2 := el
			e2.MeanAnomaly = m
			pos, vel := kepler.ElementsToState(e2, mu, defaultEps)
			out[k] = [2]vector.V{pos, vel}
		}
		return out
	}

	const hMax = 3.0 // radians; covers the practically reachable branch of the hyperbola
	for k := 0; k < samplePoints; k++ {
		H := -hMax + 2*hMax*float64(k)/float64(samplePoints-1)
		m := el.Eccentricity*math.Sinh(H) - H
		e2 := el
		e2.MeanAnomaly = m
		pos, vel := kepler.ElementsToState(e2, mu, defaultEps)
		out[k] = [2]vector.V{pos, vel}
	}
	return out
}
