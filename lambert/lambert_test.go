package lambert

import (
	"math"
	"testing"

	"github.com/kdrennan/ephem/kepler"
	"github.com/kdrennan/ephem/vector"
)

const (
	auMeters = 1.49597870691e11
	gmSun    = 1.32712440018e20
)

// propagate advances (r, v) by tof seconds under mu, via the Kepler
// solver, for verifying Lambert's solution (spec.md §8 invariant 5).
func propagate(r, v vector.V, mu, tof float64) vector.V {
	el := kepler.StateToElements(r, v, mu)
	n := math.Sqrt(mu / math.Pow(math.Abs(el.SemiMajorAxis), 3))
	el.MeanAnomaly += n * tof
	pos, _ := kepler.ElementsToState(el, mu, 1e-12)
	return pos
}

func relError(a, b vector.V) float64 {
	return a.Sub(b).Norm() / b.Norm()
}

func TestSolveS5ZeroRevSingleSolution(t *testing.T) {
	r1 := vector.V{auMeters, 0, 0}
	r2 := vector.V{0, auMeters, 0}
	tof := 2.5e6

	sols, err := Solve(r1, r2, tof, gmSun, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("len(sols) = %d, want 1", len(sols))
	}

	got := propagate(r1, sols[0].V1, gmSun, tof)
	if e := relError(got, r2); e > 1e-4 {
		t.Errorf("propagated position relative error = %v, want < 1e-4; got %v want %v", e, got, r2)
	}
}

func TestSolveS6MultiRevFiveSolutions(t *testing.T) {
	r1 := vector.V{auMeters, 0, 0}
	r2 := vector.V{0, auMeters, 0}
	tof := 3.0e7

	sols, err := Solve(r1, r2, tof, gmSun, false, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sols) != 5 {
		t.Fatalf("len(sols) = %d, want 5 (2*Nmax+1 for Nmax=2)", len(sols))
	}
	for i, sol := range sols {
		got := propagate(r1, sol.V1, gmSun, tof)
		if e := relError(got, r2); e > 5e-3 {
			t.Errorf("solution %d: propagated position relative error = %v", i, e)
		}
	}
}

func TestSolveDegenerateTOF(t *testing.T) {
	r1 := vector.V{auMeters, 0, 0}
	r2 := vector.V{0, auMeters, 0}
	if _, err := Solve(r1, r2, -1, gmSun, false, 0); err == nil {
		t.Error("expected an error for non-positive tof")
	}
}

func TestSolveDegenerateMu(t *testing.T) {
	r1 := vector.V{auMeters, 0, 0}
	r2 := vector.V{0, auMeters, 0}
	if _, err := Solve(r1, r2, 2.5e6, 0, false, 0); err == nil {
		t.Error("expected an error for non-positive mu")
	}
}

func TestSolveCollinearDegenerate(t *testing.T) {
	r1 := vector.V{auMeters, 0, 0}
	r2 := vector.V{2 * auMeters, 0, 0}
	if _, err := Solve(r1, r2, 2.5e6, gmSun, false, 0); err == nil {
		t.Error("expected a degenerate-rotation-sense error for collinear positions")
	}
}

func TestHyp2F1bMatchesKnownSeries(t *testing.T) {
	// hyp2F1b(0) should return exactly 1 (the series' constant term).
	if v := hyp2F1b(0); v != 1 {
		t.Errorf("hyp2F1b(0) = %v, want 1", v)
	}
}

func TestComputeYAtZeroLambda(t *testing.T) {
	if y := computeY(0.5, 0); y != 1 {
		t.Errorf("computeY(0.5, 0) = %v, want 1", y)
	}
}
