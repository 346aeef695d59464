package frame

import (
	"math"
	"testing"

	"github.com/kdrennan/ephem/vector"
)

func TestInverseTransformJ2000PreservesX(t *testing.T) {
	v := vector.V{1.23, 4.56, 7.89}
	got := InverseTransformJ2000(v)
	if got[0] != v[0] {
		t.Errorf("x component changed: got %v, want %v", got[0], v[0])
	}
}

func TestInverseTransformJ2000IsOrthogonal(t *testing.T) {
	v := vector.V{1.23, 4.56, 7.89}
	got := InverseTransformJ2000(v)
	if math.Abs(got.Norm()-v.Norm()) > 1e-12 {
		t.Errorf("rotation changed magnitude: got %v, want %v", got.Norm(), v.Norm())
	}
}

// TestFrameConsistency implements spec.md §8 invariant 7: the ecliptic
// x-axis of the output frame lies in the plane fixed by sinε =
// -0.397776995 relative to the equatorial x-axis (which is preserved).
func TestFrameConsistency(t *testing.T) {
	equatorialX := vector.V{1, 0, 0}
	got := InverseTransformJ2000(equatorialX)
	want := vector.V{1, 0, 0}
	if got != want {
		t.Errorf("x-axis rotated: got %v, want %v", got, want)
	}

	// The y and z components rotate by exactly the fixed angle whose
	// sine is -0.397776995.
	equatorialY := vector.V{0, 1, 0}
	got = InverseTransformJ2000(equatorialY)
	if math.Abs(got[1]-cosEps) > 1e-15 || math.Abs(got[2]-sinEps) > 1e-15 {
		t.Errorf("rotated y = %v, want (0, %v, %v)", got, cosEps, sinEps)
	}
}

func TestInverseTransformRoundTrip(t *testing.T) {
	v := vector.V{100, 200, 300}
	got := EclipticToEquatorialJ2000(InverseTransformJ2000(v))
	for i := range v {
		if math.Abs(got[i]-v[i]) > 1e-9 {
			t.Errorf("round trip[%d] = %v, want %v", i, got[i], v[i])
		}
	}
}

func TestB1950ToJ2000IsOrthogonal(t *testing.T) {
	v := vector.V{1, 2, 3}
	got := B1950ToJ2000(v)
	if math.Abs(got.Norm()-v.Norm()) > 1e-9 {
		t.Errorf("B1950ToJ2000 changed magnitude: got %v, want %v", got.Norm(), v.Norm())
	}
}

func TestB1950MatrixRoundTrip(t *testing.T) {
	v := vector.V{0.5, -0.3, 0.8}
	b1950 := icrfToB1950.Apply(v)
	back := B1950ToJ2000(b1950)
	for i := range v {
		if math.Abs(back[i]-v[i]) > 1e-9 {
			t.Errorf("round trip[%d] = %v, want %v", i, back[i], v[i])
		}
	}
}
