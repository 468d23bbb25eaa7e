package anim

import (
	"math/rand"

	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// FieldConfig describes a looping particle field. Particles rising (or
// falling) out of the configured band are reset to a re-randomized
// position inside it rather than clamped, so the field loops continuously
// instead of piling up at a boundary.
type FieldConfig struct {
	Count int
	Seed  int64

	// Vertical band [Floor, Ceiling).
	Floor   float32
	Ceiling float32

	// Horizontal extent: particles stay within this XZ radius of origin.
	Radius float32

	// Vertical speed range; negative values make particles fall.
	MinSpeed float32
	MaxSpeed float32

	// Horizontal wobble amplitude, a sinusoid of the particle's own height.
	DriftAmplitude float32
}

// Particle is one element of a field. Positions is the per-frame rewritten
// buffer; everything else is fixed at spawn or reset.
type Particle struct {
	Pos   mathx.Vec3
	Speed float32
	Phase float32
}

// Field is a looping particle field. Unlike Evaluate-driven objects, the
// particle buffer is intentionally rewritten each frame.
type Field struct {
	Config    FieldConfig
	Particles []Particle

	rng *rand.Rand
}

// NewField creates a field with particles scattered through the valid band
// using the configured seed.
func NewField(cfg FieldConfig) *Field {
	f := &Field{
		Config:    cfg,
		Particles: make([]Particle, cfg.Count),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
	for i := range f.Particles {
		f.respawn(&f.Particles[i], false)
	}
	return f
}

// Advance moves every particle by dt seconds. A particle leaving the
// vertical band or the radial bound is reset inside the band.
func (f *Field) Advance(dt float64) {
	for i := range f.Particles {
		p := &f.Particles[i]

		p.Pos.Y += p.Speed * float32(dt)
		// Height-dependent wobble keeps horizontal motion a pure function
		// of the particle's own coordinates.
		wobble := f.Config.DriftAmplitude * float32(dt)
		p.Pos.X += wobble * mathx.Sin(p.Pos.Y*0.7+p.Phase)
		p.Pos.Z += wobble * mathx.Cos(p.Pos.Y*0.53+p.Phase*1.3)

		if p.Pos.Y >= f.Config.Ceiling || p.Pos.Y < f.Config.Floor {
			f.respawn(p, true)
			continue
		}
		if f.Config.Radius > 0 {
			if d := (mathx.Vec2{X: p.Pos.X, Y: p.Pos.Z}).Length(); d > f.Config.Radius {
				f.respawn(p, true)
			}
		}
	}
}

// respawn re-randomizes a particle within the valid band. When wrapped is
// true the particle re-enters from the band edge it travels away from, so
// the loop reads as continuous.
func (f *Field) respawn(p *Particle, wrapped bool) {
	cfg := f.Config

	angle := f.rng.Float32() * float32(mathx.TwoPi)
	dist := cfg.Radius * f.rng.Float32()
	p.Pos.X = dist * mathx.Cos(angle)
	p.Pos.Z = dist * mathx.Sin(angle)

	p.Speed = cfg.MinSpeed + f.rng.Float32()*(cfg.MaxSpeed-cfg.MinSpeed)
	p.Phase = f.rng.Float32() * float32(mathx.TwoPi)

	band := cfg.Ceiling - cfg.Floor
	switch {
	case !wrapped:
		p.Pos.Y = cfg.Floor + f.rng.Float32()*band
	case p.Speed >= 0:
		// Rising particles re-enter near the floor.
		p.Pos.Y = cfg.Floor + f.rng.Float32()*band*0.25
	default:
		// Falling particles re-enter near the ceiling.
		p.Pos.Y = cfg.Ceiling - f.rng.Float32()*band*0.25 - 0.0001
	}
}
