package camera

import (
	"testing"
)

func TestZoomClamped(t *testing.T) {
	c := New()

	for i := 0; i < 200; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("zoomed in distance = %v, want clamp at %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 200; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("zoomed out distance = %v, want clamp at %v", c.Distance, c.MaxDistance)
	}
}

func TestPitchClamped(t *testing.T) {
	c := New()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.RotationX, c.MaxPitch)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.RotationX, c.MinPitch)
	}
}

func TestPositionRespectsDistance(t *testing.T) {
	c := New()
	c.Center.Y = 0

	pos := c.Position()
	if d := pos.Length(); absf(d-c.Distance) > 0.01 {
		t.Errorf("camera at distance %v from center, want %v", d, c.Distance)
	}
}

func TestAutoOrbitDriftsWhenIdle(t *testing.T) {
	c := New()
	start := c.RotationY

	c.Update(1)
	if c.RotationY == start {
		t.Error("expected idle camera to drift")
	}
}

func TestDragSuspendsAutoOrbit(t *testing.T) {
	c := New()
	c.HandleDrag(1, 0)

	start := c.RotationY
	c.Update(0.1)
	if c.RotationY != start {
		t.Error("drift should pause right after a drag")
	}

	// After the idle delay the drift resumes.
	for i := 0; i < 100; i++ {
		c.Update(0.1)
	}
	if c.RotationY == start {
		t.Error("drift should resume after the idle delay")
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
