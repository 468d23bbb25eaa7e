package math

import (
	gomath "math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("normalizing zero vector should return zero, got %v", zero)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at t=1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Vec3{5, 10, 15}) {
		t.Errorf("Lerp at t=0.5 = %v, want {5 10 15}", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{12, 0, 10, 2},
		{-3, 0, 10, 7},
		{47, 5, 45, 7},
		{10, 0, 10, 0}, // upper bound is exclusive
	}

	for _, tt := range tests {
		got := Wrap(tt.v, tt.lo, tt.hi)
		if absf(got-tt.want) > 0.0001 {
			t.Errorf("Wrap(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
		if got < tt.lo || got >= tt.hi {
			t.Errorf("Wrap(%v, %v, %v) = %v outside [lo, hi)", tt.v, tt.lo, tt.hi, got)
		}
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(gomath.Pi / 2))
	p := [3]float32{1, 0, 0}
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if absf(result[0]) > 0.001 || absf(result[1]) > 0.001 || absf(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestTRSOrder(t *testing.T) {
	// Scale applies before translation: a unit point scaled by 2 then moved
	// by (10,0,0) lands at 12, not 22.
	m := TRS(Vec3{10, 0, 0}, Vec3{}, Vec3{2, 2, 2})
	got := m.TransformPoint([3]float32{1, 0, 0})
	if absf(got[0]-12) > 0.001 {
		t.Errorf("TRS scale-then-translate: got %v, want x=12", got)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
