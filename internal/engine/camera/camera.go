// Package camera provides the orbit camera used by the garden viewer.
package camera

import (
	gomath "math"

	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// OrbitCamera orbits around a center point. When idle it drifts slowly
// around the garden on its own; any drag input suspends the drift.
type OrbitCamera struct {
	Center mathx.Vec3

	// Spherical coordinates
	Distance  float32 // distance from center
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// AutoOrbitSpeed is the idle yaw drift in radians per second.
	AutoOrbitSpeed float32
	// idleDelay is how long after the last drag the drift resumes.
	idleDelay float64
	sinceDrag float64
}

// New creates an orbit camera framed on the garden.
func New() *OrbitCamera {
	return &OrbitCamera{
		Center:          mathx.Vec3{Y: 6},
		Distance:        70,
		RotationX:       0.45,
		RotationY:       0.6,
		MinDistance:     15,
		MaxDistance:     220,
		MinPitch:        -0.2,
		MaxPitch:        1.45,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		AutoOrbitSpeed:  0.04,
		idleDelay:       5,
		sinceDrag:       10, // drifting from the start
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mathx.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return mathx.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mathx.Mat4 {
	return mathx.LookAt(c.Position(), c.Center, mathx.Vec3{Y: 1})
}

// Update advances the idle drift. Call once per frame.
func (c *OrbitCamera) Update(dt float64) {
	c.sinceDrag += dt
	if c.sinceDrag >= c.idleDelay {
		c.RotationY += c.AutoOrbitSpeed * float32(dt)
	}
}

// HandleDrag updates rotation based on mouse drag delta and suspends the
// idle drift.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.sinceDrag = 0
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandleMovement pans the center point based on keyboard input. Speed
// scales with distance for a consistent feel.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01

	dirX := float32(gomath.Sin(float64(c.RotationY)))
	dirZ := float32(gomath.Cos(float64(c.RotationY)))
	rightX := float32(gomath.Cos(float64(c.RotationY)))
	rightZ := float32(-gomath.Sin(float64(c.RotationY)))

	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
	c.Center.Y += up * speed
}
