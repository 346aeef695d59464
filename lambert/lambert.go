// Package lambert solves Gauss's two-point boundary value problem via
// Izzo's algorithm (spec.md §4.9): given two position vectors and a
// time of flight, find every transfer orbit's velocity at each
// endpoint, including multiple-revolution solutions.
//
// No corpus example implements Izzo's algorithm; this package is
// grounded directly on spec.md §4.9's own description of the published
// method (the same non-dimensional λ/T/x/y formulation and closed-form
// T(x) derivatives used across the open-source orbital-mechanics
// literature), written in this module's own idiom rather than ported
// from any single reference implementation.
package lambert

import (
	"math"

	"github.com/kdrennan/ephem/ephemerr"
	"github.com/kdrennan/ephem/vector"
)

// Solution is one transfer orbit returned by Solve: the velocity at
// each endpoint, the number of complete revolutions it makes, and the
// Householder iteration count spent converging it (spec.md §7's
// "NonConvergent is a diagnostic, not a fault" policy).
type Solution struct {
	V1, V2      vector.V
	Revolutions int
	Iterations  int
}

const (
	zeroRevTol  = 1e-5
	multiRevTol = 1e-8
	maxIter     = 15
	halleyTol   = 1e-8
	maxHalley   = 15
	hyp2f1Tol   = 1e-11
)

// Solve returns every transfer orbit from r1 to r2 in tof seconds under
// gravitational parameter mu, per spec.md §4.9. cw selects clockwise
// (as seen from the positive normal of r1×r2) motion; nmaxCap bounds
// the number of revolutions considered. The solution count is always
// 2*Nmax+1, where Nmax <= nmaxCap.
func Solve(r1, r2 vector.V, tof, mu float64, cw bool, nmaxCap int) ([]Solution, error) {
	if tof <= 0 || mu <= 0 {
		return nil, ephemerr.Wrapf(ephemerr.ErrLambertDegenerate, "lambert: tof %v, mu %v", tof, mu)
	}

	r1n, r2n := r1.Norm(), r2.Norm()
	if r1n == 0 || r2n == 0 {
		return nil, ephemerr.Wrap(ephemerr.ErrLambertDegenerate, "lambert: zero-length position vector")
	}

	c := r2.Sub(r1).Norm()
	s := (c + r1n + r2n) / 2

	i1, i2 := r1.Scale(1 / r1n), r2.Scale(1 / r2n)
	ih := i1.Cross(i2)
	if math.Abs(ih[2]) < 1e-14 {
		return nil, ephemerr.Wrap(ephemerr.ErrLambertDegenerate, "lambert: rotation sense undetermined")
	}
	ih = ih.Scale(1 / ih.Norm())

	lambda := math.Sqrt(math.Max(0, 1-c/s))

	var it1, it2 vector.V
	if ih[2] < 0 {
		lambda = -lambda
		it1 = i1.Cross(ih)
		it2 = i2.Cross(ih)
	} else {
		it1 = ih.Cross(i1)
		it2 = ih.Cross(i2)
	}
	if cw {
		lambda = -lambda
		it1 = it1.Neg()
		it2 = it2.Neg()
	}

	T := math.Sqrt(2*mu/(s*s*s)) * tof

	nmax := int(T / math.Pi)
	if nmax > 0 {
		tMin, ok := minimumTimeOfFlight(lambda, nmax)
		if ok && T < tMin {
			nmax--
		}
	}
	if nmax > nmaxCap {
		nmax = nmaxCap
	}
	if nmax < 0 {
		nmax = 0
	}

	rho := (r1n - r2n) / c
	sigma := math.Sqrt(math.Max(0, 1-rho*rho))
	gamma := math.Sqrt(mu * s / 2)

	reconstruct := func(x float64, revs, iters int) Solution {
		y := computeY(x, lambda)
		vr1 := gamma * ((lambda*y - x) - rho*(lambda*y+x)) / r1n
		vr2 := -gamma * ((lambda*y - x) + rho*(lambda*y+x)) / r2n
		vt := gamma * sigma * (y + lambda*x)
		vt1 := vt / r1n
		vt2 := vt / r2n
		return Solution{
			V1:          i1.Scale(vr1).Add(it1.Scale(vt1)),
			V2:          i2.Scale(vr2).Add(it2.Scale(vt2)),
			Revolutions: revs,
			Iterations:  iters,
		}
	}

	var out []Solution

	x0 := initialGuessZeroRev(T, lambda)
	x, iters := householder(T, x0, lambda, 0, zeroRevTol)
	out = append(out, reconstruct(x, 0, iters))

	for n := 1; n <= nmax; n++ {
		xl := initialGuessMultiRev(T, n, true)
		x, iters := householder(T, xl, lambda, n, multiRevTol)
		out = append(out, reconstruct(x, n, iters))

		xr := initialGuessMultiRev(T, n, false)
		x, iters = householder(T, xr, lambda, n, multiRevTol)
		out = append(out, reconstruct(x, n, iters))
	}

	return out, nil
}

// computeY is the standard Izzo relation y = sqrt(1 - λ²(1-x²)).
func computeY(x, lambda float64) float64 {
	return math.Sqrt(math.Max(0, 1-lambda*lambda*(1-x*x)))
}

// computePsi is the auxiliary angle used by the Lagrange/Lancaster
// branches of timeOfFlight.
func computePsi(x, y, lambda float64) float64 {
	switch {
	case x >= -1 && x < 1:
		return math.Acos(clamp(x*y+lambda*(1-x*x), -1, 1))
	case x > 1:
		return math.Asinh((y - x*lambda) * math.Sqrt(x*x-1))
	default:
		return 0
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

// timeOfFlight evaluates T(x, N): Battin's series for zero-revolution
// x in (√0.6, √1.4), and the Lagrange closed form for every other case.
// There is no separate Lancaster branch for a middle band of |x-1|.
func timeOfFlight(x, y, lambda float64, n int) float64 {
	if n == 0 && x > math.Sqrt(0.6) && x < math.Sqrt(1.4) {
		eta := y - lambda*x
		s1 := (1 - lambda - x*eta) * 0.5
		q := 4.0 / 3.0 * hyp2F1b(s1)
		return (eta*eta*eta*q + 4*lambda*eta) * 0.5
	}
	psi := computePsi(x, y, lambda)
	return (((psi+float64(n)*math.Pi)/math.Sqrt(math.Abs(1-x*x)) - x + lambda*y) /
		(1 - x*x))
}

// hyp2F1b sums Battin's hypergeometric series F(3,1;5/2;x) to
// tolerance 1e-11 (spec.md §4.9).
func hyp2F1b(x float64) float64 {
	if x >= 1.0 {
		return math.Inf(1)
	}
	res, term := 1.0, 1.0
	for i := 0; i < 1000; i++ {
		term = term * (3+float64(i)) * (1+float64(i)) / (2.5+float64(i)) * x / (float64(i) + 1)
		next := res + term
		if math.Abs(next-res) < hyp2f1Tol {
			return next
		}
		res = next
	}
	return res
}

// tofDerivative1/2/3 are the analytic first, second, and third
// derivatives of T(x) with respect to x (spec.md §4.9), in terms of
// the current (x, y) and the value of T(x) itself.
//
// Per spec.md §9's documented Open Question, the reference algebra's
// derivative helper takes a parameter conventionally named T but is
// actually called with the instantaneous T(x) evaluated at the current
// x (not the caller's target time of flight); that argument-passing
// convention is preserved here exactly rather than "corrected".
func tofDerivative1(x, y, tAtX, lambda float64) float64 {
	return (3*tAtX*x - 2 + 2*lambda*lambda*lambda*x/y) / (1 - x*x)
}

func tofDerivative2(x, y, tAtX, dT, lambda float64) float64 {
	return (3*tAtX + 5*x*dT + 2*(1-lambda*lambda)*lambda*lambda*lambda/(y*y*y)) / (1 - x*x)
}

func tofDerivative3(x, y, dT, ddT, lambda float64) float64 {
	return (7*x*ddT + 8*dT - 6*(1-lambda*lambda)*math.Pow(lambda, 5)*x/math.Pow(y, 5)) / (1 - x*x)
}

// householder runs the Householder iteration of spec.md §4.9 from
// initial guess x0 toward the x whose T(x, n) equals targetT, returning
// the converged (or best-effort, if the iteration cap is hit) x and
// the iteration count actually used.
func householder(targetT, x0, lambda float64, n int, tol float64) (x float64, iterations int) {
	x = x0
	for it := 1; it <= maxIter; it++ {
		y := computeY(x, lambda)
		tAtX := timeOfFlight(x, y, lambda, n)
		dT := tofDerivative1(x, y, tAtX, lambda)
		ddT := tofDerivative2(x, y, tAtX, dT, lambda)
		dddT := tofDerivative3(x, y, dT, ddT, lambda)

		delta := tAtX - targetT
		denom := dT*(dT*dT-delta*ddT) + dddT*delta*delta/6
		if denom == 0 {
			return x, it
		}
		xNext := x - delta*(dT*dT-delta*ddT/2)/denom

		iterations = it
		if math.Abs(xNext-x) < tol {
			return xNext, it
		}
		x = xNext
	}
	return x, maxIter
}

// halley finds the x minimizing T(x, n) via Newton-Halley iteration on
// dT/dx = 0, used by minimumTimeOfFlight.
func halley(x0, lambda float64, n int) (x float64, converged bool) {
	x = x0
	for it := 0; it < maxHalley; it++ {
		y := computeY(x, lambda)
		tAtX := timeOfFlight(x, y, lambda, n)
		fder := tofDerivative1(x, y, tAtX, lambda)
		fder2 := tofDerivative2(x, y, tAtX, fder, lambda)
		if fder2 == 0 {
			return x, false
		}
		fder3 := tofDerivative3(x, y, fder, fder2, lambda)
		denom := 2*fder2*fder2 - fder*fder3
		if denom == 0 {
			return x, false
		}
		xNext := x - 2*fder*fder2/denom
		if math.Abs(xNext-x) < halleyTol {
			return xNext, true
		}
		x = xNext
	}
	return x, false
}

// minimumTimeOfFlight locates the T-minimum for n complete revolutions
// (spec.md §4.9's multi-revolution cap step), starting the Halley
// search from x=0.1 (the low-path branch convention).
func minimumTimeOfFlight(lambda float64, n int) (tMin float64, ok bool) {
	xMin, converged := halley(0.1, lambda, n)
	if !converged {
		return 0, false
	}
	y := computeY(xMin, lambda)
	return timeOfFlight(xMin, y, lambda, n), true
}

// initialGuessZeroRev implements spec.md §4.9's piecewise 0-revolution
// initial guess.
func initialGuessZeroRev(T, lambda float64) float64 {
	t00 := math.Acos(lambda) + lambda*math.Sqrt(1-lambda*lambda)
	t1 := 2 * (1 - lambda*lambda*lambda) / 3

	switch {
	case T >= t00:
		return math.Pow(t00/T, 2.0/3.0) - 1
	case T < t1:
		return 5.0/2.0*t1/T*(t1-T)/(1-math.Pow(lambda, 5)) + 1
	default:
		return math.Pow(T/t00, math.Log2(t1/t00)) - 1
	}
}

// initialGuessMultiRev implements spec.md §4.9's multi-revolution
// left/right branch initial guesses.
func initialGuessMultiRev(T float64, n int, leftBranch bool) float64 {
	if leftBranch {
		tmp := math.Pow((float64(n)*math.Pi+math.Pi)/(8*T), 2.0/3.0)
		return (tmp - 1) / (tmp + 1)
	}
	tmp := math.Pow(8*T/(float64(n)*math.Pi), 2.0/3.0)
	return (tmp - 1) / (tmp + 1)
}
