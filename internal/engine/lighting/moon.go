// Package lighting provides light direction utilities for the garden.
package lighting

import "math"

// Direction converts azimuth/elevation angles to a light direction vector.
// Azimuth is rotation around the Y axis in degrees, elevation is degrees
// above the horizon. Returns a normalized vector pointing toward the light.
func Direction(azimuth, elevation float64) [3]float32 {
	azRad := azimuth * math.Pi / 180.0
	elRad := elevation * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return [3]float32{x, y, z}
}

// MoonDirection returns the garden's moonlight at the given elapsed time.
// The moon drifts slowly around the island, a full circuit every twenty
// minutes, holding a fixed elevation so the scene never goes dark.
func MoonDirection(elapsed float64) [3]float32 {
	azimuth := 55 + elapsed*(360.0/1200.0)
	return Direction(azimuth, 52)
}
