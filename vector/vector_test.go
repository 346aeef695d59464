package vector

import (
	"math"
	"testing"
)

func TestDotCross(t *testing.T) {
	a := V{1, 0, 0}
	b := V{0, 1, 0}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	c := a.Cross(b)
	want := V{0, 0, 1}
	if c != want {
		t.Errorf("Cross = %v, want %v", c, want)
	}
}

func TestNormUnit(t *testing.T) {
	a := V{3, 4, 0}
	if got := a.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm = %v, want 5", got)
	}
	u := a.Unit()
	if math.Abs(u.Norm()-1) > 1e-12 {
		t.Errorf("Unit norm = %v, want 1", u.Norm())
	}
	if Zero.Unit() != Zero {
		t.Errorf("Unit of Zero should be Zero")
	}
}

func TestAngleBetween(t *testing.T) {
	a := V{1, 0, 0}
	b := V{0, 1, 0}
	got := AngleBetween(a, b)
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("AngleBetween = %v, want pi/2", got)
	}
	if AngleBetween(a, a) > 1e-12 {
		t.Errorf("AngleBetween(a,a) should be ~0")
	}
}

func TestRotateZIdentityAtZero(t *testing.T) {
	v := V{1, 2, 3}
	got := RotateZ(0).Apply(v)
	if got != v {
		t.Errorf("RotateZ(0) = %v, want %v", got, v)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	v := V{0, 1, 0}
	got := RotateX(math.Pi / 2).Apply(v)
	want := V{0, 0, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("RotateX(pi/2)*%v = %v, want %v", v, got, want)
		}
	}
}

func TestMatrixTransposeIsInverseForRotation(t *testing.T) {
	m := RotateZ(0.7).Mul(RotateX(0.3))
	prod := m.Mul(m.Transpose())
	ident := Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(prod[i][j]-ident[i][j]) > 1e-9 {
				t.Errorf("m*m^T[%d][%d] = %v, want %v", i, j, prod[i][j], ident[i][j])
			}
		}
	}
}

func TestPerifocalToFrameIdentityWhenAnglesZero(t *testing.T) {
	m := PerifocalToFrame(0, 0, 0)
	v := V{1, 2, 3}
	got := m.Apply(v)
	for i := range v {
		if math.Abs(got[i]-v[i]) > 1e-12 {
			t.Errorf("PerifocalToFrame(0,0,0)*v = %v, want %v", got, v)
		}
	}
}
