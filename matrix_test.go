package swr

import (
	"math"
	"testing"
)

func TestMat4_IdentityIsNeutral(t *testing.T) {
	v := V4(1, 2, 3, 1)
	got := Identity4().MulVec4(v)
	if got != v {
		t.Errorf("Identity().MulVec4(%v) = %v, want %v", v, got, v)
	}
}

func TestMat4_TranslatePoint(t *testing.T) {
	m := Translate4(1, 2, 3)
	got := m.MulPoint(V3(0, 0, 0))
	want := V3(1, 2, 3)
	if got != want {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}
}

func TestMat4_TranslateDirUnaffected(t *testing.T) {
	m := Translate4(1, 2, 3)
	got := m.MulDir(V3(5, 6, 7))
	want := V3(5, 6, 7)
	if got != want {
		t.Errorf("MulDir through translation = %v, want %v (directions ignore translation)", got, want)
	}
}

func TestMat4_ScalePoint(t *testing.T) {
	m := Scale4(2, 3, 4)
	got := m.MulPoint(V3(1, 1, 1))
	want := V3(2, 3, 4)
	if got != want {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}
}

func TestMat4_RotateAxisQuarterTurnAboutZ(t *testing.T) {
	m := RotateAxis(0, 0, 1, math.Pi/2)
	got := m.MulPoint(V3(1, 0, 0))
	want := V3(0, 1, 0)
	const eps = 1e-9
	if !approx(got.X, want.X, eps) || !approx(got.Y, want.Y, eps) || !approx(got.Z, want.Z, eps) {
		t.Errorf("rotate 90deg about Z: got %v, want %v", got, want)
	}
}

func TestMat4_Mul(t *testing.T) {
	t1 := Translate4(1, 0, 0)
	t2 := Translate4(0, 1, 0)
	combined := t1.Mul(t2)
	got := combined.MulPoint(V3(0, 0, 0))
	want := V3(1, 1, 0)
	if got != want {
		t.Errorf("combined translate = %v, want %v", got, want)
	}
}

func TestLookAtLH_EyeAtOriginOfViewSpace(t *testing.T) {
	m := LookAtLH(V3(0, 0, -5), V3(0, 0, 0), V3(0, 1, 0))
	got := m.MulPoint(V3(0, 0, -5))
	const eps = 1e-9
	if !approx(got.X, 0, eps) || !approx(got.Y, 0, eps) || !approx(got.Z, 0, eps) {
		t.Errorf("eye point in view space = %v, want origin", got)
	}
}

func TestLookAtLH_TargetIsOnPositiveZAxis(t *testing.T) {
	m := LookAtLH(V3(0, 0, -5), V3(0, 0, 0), V3(0, 1, 0))
	got := m.MulPoint(V3(0, 0, 0))
	if got.Z <= 0 {
		t.Errorf("target z in view space = %v, want > 0 (left-handed, forward is +z)", got.Z)
	}
}

func TestPerspectiveFovLH_MapsNearAndFarPlanes(t *testing.T) {
	const zn, zf = 1.0, 100.0
	m := PerspectiveFovLH(math.Pi/2, 1, zn, zf)

	near := m.MulVec4(V4(0, 0, zn, 1))
	if near.W == 0 || !approx(near.Z/near.W, 0, 1e-9) {
		t.Errorf("near plane z/w = %v, want 0", near.Z/near.W)
	}

	far := m.MulVec4(V4(0, 0, zf, 1))
	if far.W == 0 || !approx(far.Z/far.W, 1, 1e-9) {
		t.Errorf("far plane z/w = %v, want 1", far.Z/far.W)
	}
}

func TestMat4_InverseOfIdentity(t *testing.T) {
	got := Identity4().Inverse()
	if got != Identity4() {
		t.Errorf("Inverse(Identity) = %v, want Identity", got)
	}
}

func TestMat4_InverseRoundTrip(t *testing.T) {
	m := Translate4(2, -3, 5).Mul(Scale4(2, 2, 2))
	inv := m.Inverse()
	roundTrip := m.Mul(inv)
	const eps = 1e-9
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			if !approx(roundTrip.M[r][c], want, eps) {
				t.Errorf("m*inv[%d][%d] = %v, want %v", r, c, roundTrip.M[r][c], want)
			}
		}
	}
}

func TestMat4_Transpose(t *testing.T) {
	m := Mat4{M: [4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}}
	got := m.Transpose()
	if got.M[0][1] != m.M[1][0] || got.M[2][3] != m.M[3][2] {
		t.Errorf("Transpose mismatch: got %v", got)
	}
}

func TestNormalMatrix_UnderUniformScalePreservesDirection(t *testing.T) {
	model := Scale4(2, 2, 2)
	nm := NormalMatrix(model)
	n := V3(1, 0, 0)
	got := nm.MulDir(n).Normalize()
	want := V3(1, 0, 0)
	const eps = 1e-9
	if !approx(got.X, want.X, eps) || !approx(got.Y, want.Y, eps) || !approx(got.Z, want.Z, eps) {
		t.Errorf("NormalMatrix under uniform scale = %v, want %v", got, want)
	}
}
