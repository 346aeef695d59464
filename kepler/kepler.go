// Package kepler is the numerical kernel shared by orbit propagation and
// the Lambert solver: Kepler-equation solvers (elliptic and hyperbolic),
// true-anomaly conversion, and state<->elements round-tripping (spec.md
// §4.1).
package kepler

import (
	"math"

	"github.com/kdrennan/ephem/vector"
)

// maxIterations bounds every Halley loop in this package, per spec.md §5
// ("Kepler: 100 iterations").
const maxIterations = 100

// Result carries a solved anomaly plus whether the iteration converged
// within tolerance. Non-convergence is not an error (spec.md §7,
// ErrNonConvergent): callers receive the last estimate and an iteration
// count so they can decide whether to retry with a looser tolerance.
type Result struct {
	Anomaly    float64 // E (elliptic) or H (hyperbolic), radians
	Iterations int
	Converged  bool
}

// SolveElliptic solves M = E - e*sin(E) for E via Halley's method, given
// mean anomaly M (radians), eccentricity e in [0,1), and tolerance eps on
// the residual. Initial guess E0 = M.
func SolveElliptic(m, e, eps float64) Result {
	E := m
	for n := 1; n <= maxIterations; n++ {
		sinE, cosE := math.Sincos(E)
		f := E - e*sinE - m
		if math.Abs(f) < eps {
			return Result{Anomaly: E, Iterations: n - 1, Converged: true}
		}
		denom := 1 - e*cosE
		h := f / denom
		i := (e * sinE) / (2 * denom)
		E -= h / (1 - h*i)
	}
	sinE := math.Sin(E)
	f := E - e*sinE - m
	return Result{Anomaly: E, Iterations: maxIterations, Converged: math.Abs(f) < eps}
}

// SolveHyperbolic solves M = e*sinh(H) - H for H via Halley's method,
// given mean anomaly M (radians), eccentricity e > 1, and tolerance eps.
// Initial guess H0 = M.
func SolveHyperbolic(m, e, eps float64) Result {
	H := m
	for n := 1; n <= maxIterations; n++ {
		sinhH, coshH := math.Sinh(H), math.Cosh(H)
		f := e*sinhH - H - m
		if math.Abs(f) < eps {
			return Result{Anomaly: H, Iterations: n - 1, Converged: true}
		}
		fp := e*coshH - 1
		fpp := e * sinhH
		H -= f / (fp - (f*fpp)/(2*fp))
	}
	sinhH := math.Sinh(H)
	f := e*sinhH - H - m
	return Result{Anomaly: H, Iterations: maxIterations, Converged: math.Abs(f) < eps}
}

// TrueAnomalyElliptic returns the true anomaly ν (radians) from the
// eccentric anomaly E and eccentricity e < 1.
func TrueAnomalyElliptic(E, e float64) float64 {
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}

// TrueAnomalyHyperbolic returns the true anomaly ν (radians) from the
// hyperbolic anomaly H and eccentricity e > 1.
func TrueAnomalyHyperbolic(H, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2))
}

// Elements are the six classical orbital elements, angles in radians,
// matching the invariants of spec.md §3: a < 0 iff e > 1.
type Elements struct {
	SemiMajorAxis float64 // a, same distance unit as the state vectors
	Eccentricity  float64 // e
	Inclination   float64 // i, radians, in [0, π]
	MeanAnomaly   float64 // M, radians, in (-π, π] when e < 1; unwrapped when e > 1
	ArgPeriapsis  float64 // ω, radians, canonicalized to (-π, π]
	LongAscNode   float64 // Ω, radians
}

// canonPi maps an angle to (-π, π].
func canonPi(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// ElementsToState converts classical orbital elements to a Cartesian
// state (position, velocity) about a body of gravitational parameter mu,
// in the frame in which Ω, i, ω are defined (spec.md §4.2).
func ElementsToState(el Elements, mu, eps float64) (pos, vel vector.V) {
	e := el.Eccentricity
	rot := vector.PerifocalToFrame(el.LongAscNode, el.Inclination, el.ArgPeriapsis)

	if e < 1 {
		res := SolveElliptic(el.MeanAnomaly, e, eps)
		E := res.Anomaly
		sinE, cosE := math.Sincos(E)
		a := el.SemiMajorAxis
		pPQW := vector.V{a * (cosE - e), a * math.Sqrt(1-e*e) * sinE, 0}

		nu := TrueAnomalyElliptic(E, e)
		speed := math.Sqrt(mu / (a * (1 - e*e)))
		cosNu, sinNu := math.Cos(nu), math.Sin(nu)
		vPQW := vector.V{speed * -sinNu, speed * (cosNu + e), 0}

		return rot.Apply(pPQW), rot.Apply(vPQW)
	}

	// Hyperbolic: el.MeanAnomaly carries M = e*sinh(H) - H (same role as
	// the elliptic mean anomaly, per spec.md §4.2).
	res := SolveHyperbolic(el.MeanAnomaly, e, eps)
	H := res.Anomaly
	a := el.SemiMajorAxis // negative
	absA := math.Abs(a)
	sinhH, coshH := math.Sinh(H), math.Cosh(H)
	pPQW := vector.V{absA * (e - coshH), absA * math.Sqrt(e*e-1) * sinhH, 0}

	// Hdot from sqrt(|a|*(e^2-1)*mu) = a^2*sqrt(e^2-1)*(e*coshH-1)*Hdot.
	num := math.Sqrt(absA * (e*e - 1) * mu)
	den := absA * absA * math.Sqrt(e*e-1) * (e*coshH - 1)
	Hdot := num / den
	vPQW := vector.V{-absA * Hdot * sinhH, absA * math.Sqrt(e*e-1) * Hdot * coshH, 0}

	return rot.Apply(pPQW), rot.Apply(vPQW)
}

// StateToElements converts a Cartesian state (position, velocity) about a
// body of gravitational parameter mu into classical orbital elements,
// using angular momentum, the eccentricity vector, and the ascending-node
// vector (spec.md §4.1). For near-zero inclination or eccentricity the
// individual Ω/ω values may be indeterminate; the composite Ω+ω+ν is
// still well-defined and round-trips through ElementsToState.
func StateToElements(pos, vel vector.V, mu float64) Elements {
	r := pos.Norm()
	v := vel.Norm()

	h := pos.Cross(vel)
	hNorm := h.Norm()

	rdv := pos.Dot(vel)
	factor := v*v - mu/r
	eVec := vector.V{
		(factor*pos[0] - rdv*vel[0]) / mu,
		(factor*pos[1] - rdv*vel[1]) / mu,
		(factor*pos[2] - rdv*vel[2]) / mu,
	}
	e := eVec.Norm()

	nVec := vector.V{-h[1], h[0], 0}
	n := nVec.Norm()

	p := hNorm * hNorm / mu
	var a float64
	if math.Abs(e-1) < 1e-12 {
		a = math.Inf(1)
	} else {
		a = p / (1 - e*e)
	}

	inc := math.Acos(clamp(h[2]/hNorm, -1, 1))

	var node float64
	if n > 1e-15 {
		node = math.Atan2(h[0], -h[1])
		if node < 0 {
			node += 2 * math.Pi
		}
	}

	nu := trueAnomalyFromState(eVec, e, nVec, n, pos, vel, r, rdv)
	w := argPeriapsisFromState(eVec, e, nVec, n, pos, vel)

	var E float64
	switch {
	case e < 1:
		sNu2, cNu2 := math.Sin(nu/2), math.Cos(nu/2)
		E = 2 * math.Atan2(math.Sqrt(1-e)*sNu2, math.Sqrt(1+e)*cNu2)
		if E < 0 {
			E += 2 * math.Pi
		}
	case e > 1:
		tanNu2 := math.Tan(nu / 2)
		ratio := tanNu2 / math.Sqrt((e+1)/(e-1))
		E = 2 * math.Atanh(ratio)
	}

	var M float64
	switch {
	case e < 1:
		M = math.Mod(E-e*math.Sin(E)+2*math.Pi, 2*math.Pi)
		if M > math.Pi {
			M -= 2 * math.Pi
		}
	case e > 1:
		M = e*math.Sinh(E) - E
	}

	return Elements{
		SemiMajorAxis: a,
		Eccentricity:  e,
		Inclination:   inc,
		MeanAnomaly:   M,
		ArgPeriapsis:  canonPi(w),
		LongAscNode:   node,
	}
}

func trueAnomalyFromState(eVec vector.V, e float64, nVec vector.V, n float64, pos, vel vector.V, r, rdv float64) float64 {
	switch {
	case e > 1e-12:
		nu := vector.AngleBetween(eVec, pos)
		if rdv < 0 {
			nu = 2*math.Pi - nu
		}
		if e > 1-1e-12 {
			nu = canonPi(nu)
		}
		return nu
	case n < 1e-12:
		nu := math.Acos(clamp(pos[0]/r, -1, 1))
		if vel[0] > 0 {
			nu = 2*math.Pi - nu
		}
		return nu
	default:
		nu := vector.AngleBetween(nVec, pos)
		if pos[2] < 0 {
			nu = 2*math.Pi - nu
		}
		return nu
	}
}

func argPeriapsisFromState(eVec vector.V, e float64, nVec vector.V, n float64, pos, vel vector.V) float64 {
	switch {
	case e < 1e-12:
		return 0
	case n > 1e-12:
		w := vector.AngleBetween(nVec, eVec)
		if eVec[2] < 0 {
			w = 2*math.Pi - w
		}
		return w
	default:
		w := math.Atan2(eVec[1], eVec[0])
		if w < 0 {
			w += 2 * math.Pi
		}
		if pos.Cross(vel)[2] < 0 {
			w = 2*math.Pi - w
		}
		return w
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
