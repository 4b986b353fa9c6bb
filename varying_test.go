package swr

import "testing"

func TestVarying_SetGetRoundTrip(t *testing.T) {
	var v Varying
	v.SetScalar(0, 1.5)
	v.SetVec2(1, V2(1, 2))
	v.SetVec3(2, V3(1, 2, 3))
	v.SetVec4(3, V4(1, 2, 3, 4))

	if got := v.Scalar(0); got != 1.5 {
		t.Fatalf("Scalar(0) = %v, want 1.5", got)
	}
	if got := v.Vec2(1); got != V2(1, 2) {
		t.Fatalf("Vec2(1) = %v, want (1,2)", got)
	}
	if got := v.Vec3(2); got != V3(1, 2, 3) {
		t.Fatalf("Vec3(2) = %v, want (1,2,3)", got)
	}
	if got := v.Vec4(3); got != V4(1, 2, 3, 4) {
		t.Fatalf("Vec4(3) = %v, want (1,2,3,4)", got)
	}
}

func TestVarying_MissingKeyReadsZero(t *testing.T) {
	var v Varying
	if got := v.Scalar(99); got != 0 {
		t.Fatalf("Scalar(99) = %v, want 0", got)
	}
	if got := v.Vec3(99); got != (Vec3{}) {
		t.Fatalf("Vec3(99) = %v, want zero vector", got)
	}
}

func TestVarying_ResetClearsAllNamespaces(t *testing.T) {
	var v Varying
	v.SetScalar(0, 1)
	v.SetVec4(0, V4(1, 1, 1, 1))
	v.reset()
	if got := v.Scalar(0); got != 0 {
		t.Fatalf("Scalar(0) after reset = %v, want 0", got)
	}
	if got := v.Vec4(0); got != (Vec4{}) {
		t.Fatalf("Vec4(0) after reset = %v, want zero", got)
	}
}

func TestInterpolateVarying_WeightsBlendLinearly(t *testing.T) {
	var v0, v1, v2, out Varying
	v0.SetScalar(0, 10)
	v1.SetScalar(0, 20)
	v2.SetScalar(0, 30)

	interpolateVarying(&out, &v0, &v1, &v2, 1, 0, 0)
	if got := out.Scalar(0); got != 10 {
		t.Fatalf("weight (1,0,0) = %v, want 10", got)
	}

	interpolateVarying(&out, &v0, &v1, &v2, 0, 0, 1)
	if got := out.Scalar(0); got != 30 {
		t.Fatalf("weight (0,0,1) = %v, want 30", got)
	}

	interpolateVarying(&out, &v0, &v1, &v2, 1.0/3, 1.0/3, 1.0/3)
	if got := out.Scalar(0); !approx(got, 20, 1e-9) {
		t.Fatalf("equal weights = %v, want 20", got)
	}
}

func TestInterpolateVarying_KeyMissingFromOtherVerticesReadsZero(t *testing.T) {
	var v0, v1, v2, out Varying
	// Only v0 defines key 5; v1 and v2 must read back as zero for it,
	// per the "missing implies zero" resolution.
	v0.SetScalar(5, 9)

	interpolateVarying(&out, &v0, &v1, &v2, 1.0/3, 1.0/3, 1.0/3)
	if got := out.Scalar(5); !approx(got, 3, 1e-9) {
		t.Fatalf("Scalar(5) = %v, want 3 (9/3 + 0 + 0)", got)
	}
}

func TestInterpolateVarying_OnlyVisitsV0Keys(t *testing.T) {
	var v0, v1, v2, out Varying
	v1.SetScalar(7, 42) // a key absent from v0 must never appear in out

	interpolateVarying(&out, &v0, &v1, &v2, 1, 0, 0)
	if got := out.Scalar(7); got != 0 {
		t.Fatalf("Scalar(7) = %v, want 0 (key not present in v0)", got)
	}
}
