// Package anim computes per-frame transforms for garden objects. Every
// visual property at time t is a pure function of the object's fixed
// parameters and t; there is no accumulated state, so animation is fully
// restartable at any instant.
package anim

import (
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// Kind selects the closed-form expression evaluated for an object.
type Kind int

const (
	// KindFloat bobs vertically, the island and orb motion.
	KindFloat Kind = iota
	// KindSway rocks around the Z axis, tree and foliage motion.
	KindSway
	// KindSpin rotates steadily around the Y axis.
	KindSpin
	// KindShimmer pulses opacity, used by mist and glow quads.
	KindShimmer
	// KindDrift traces a slow lissajous path in the XZ plane.
	KindDrift
	// KindGlow pulses color between Color and ColorB.
	KindGlow
)

// Params are the fixed per-object animation parameters. Instances are
// created once at scene construction and never mutated.
type Params struct {
	Kind      Kind
	Speed     float32 // base angular speed, radians per second
	Phase     float32 // phase offset, radians
	Amplitude float32 // primary sinusoid amplitude
	Secondary float32 // secondary sinusoid amplitude

	// Color endpoints for KindGlow; ignored by other kinds.
	Color  [3]float32
	ColorB [3]float32
}

// MaxOffset returns the bound on any positional offset component:
// the sum of the configured amplitudes.
func (p Params) MaxOffset() float32 {
	return absf(p.Amplitude) + absf(p.Secondary)
}

// Transform is an instantaneous evaluation result. Zero rotation and
// offset, unit scale and opacity mean "leave the object at rest".
type Transform struct {
	Offset   mathx.Vec3
	Rotation mathx.Vec3
	Scale    float32
	Opacity  float32
	Color    [3]float32
}

// Evaluate computes the transform for the given parameters at the given
// elapsed time. Calling it twice with the same inputs yields bit-identical
// results.
func Evaluate(p Params, elapsed float64) Transform {
	t := float32(elapsed)
	out := Transform{Scale: 1, Opacity: 1, Color: [3]float32{1, 1, 1}}

	// Two incommensurate frequencies avoid a perceptible repeat period
	// within a viewing session.
	primary := mathx.Sin(t*p.Speed + p.Phase)
	secondary := mathx.Sin(t*p.Speed*0.537 + p.Phase*1.71)

	switch p.Kind {
	case KindFloat:
		out.Offset.Y = p.Amplitude*primary + p.Secondary*secondary

	case KindSway:
		out.Rotation.Z = p.Amplitude*primary + p.Secondary*secondary
		out.Rotation.X = p.Secondary * 0.4 * mathx.Sin(t*p.Speed*0.291+p.Phase)

	case KindSpin:
		out.Rotation.Y = t*p.Speed + p.Phase

	case KindShimmer:
		pulse := 0.5 + 0.5*primary
		out.Opacity = mathx.Clamp(1-p.Amplitude*pulse, 0, 1)

	case KindDrift:
		out.Offset.X = p.Amplitude * primary
		out.Offset.Z = p.Amplitude * mathx.Cos(t*p.Speed*0.813+p.Phase)
		out.Offset.Y = p.Secondary * secondary

	case KindGlow:
		blend := 0.5 + 0.5*primary
		for i := 0; i < 3; i++ {
			out.Color[i] = mathx.Lerp(p.Color[i], p.ColorB[i], blend)
		}
	}

	return out
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
