package lighting

import (
	gomath "math"
	"testing"
)

func TestDirectionNormalized(t *testing.T) {
	tests := []struct {
		azimuth, elevation float64
	}{
		{0, 0},
		{90, 45},
		{180, 52},
		{270, 89},
	}
	for _, tt := range tests {
		d := Direction(tt.azimuth, tt.elevation)
		len := gomath.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
		if gomath.Abs(len-1) > 1e-5 {
			t.Errorf("Direction(%v, %v) length = %v, want 1", tt.azimuth, tt.elevation, len)
		}
	}
}

func TestDirectionStraightUp(t *testing.T) {
	d := Direction(0, 90)
	if gomath.Abs(float64(d[1]-1)) > 1e-5 {
		t.Errorf("Direction(0, 90) = %v, want y=1", d)
	}
}

func TestMoonStaysAboveHorizon(t *testing.T) {
	for _, elapsed := range []float64{0, 60, 600, 1200, 7200} {
		d := MoonDirection(elapsed)
		if d[1] <= 0 {
			t.Errorf("moon below horizon at t=%v: %v", elapsed, d)
		}
	}
}

func TestMoonDrifts(t *testing.T) {
	a := MoonDirection(0)
	b := MoonDirection(300)
	if a == b {
		t.Error("expected the moon to move over five minutes")
	}
}
