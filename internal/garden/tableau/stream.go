package tableau

import (
	"github.com/oliviahylam/zen-garden/internal/garden/mesh"
	"github.com/oliviahylam/zen-garden/internal/garden/scenegraph"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// StreamStyle selects the water surface character. The alternate variants
// share the ripple mechanism and differ only in wave parameters.
type StreamStyle int

const (
	// StreamClassic is the default gently running water.
	StreamClassic StreamStyle = iota
	// StreamCascade has shorter, faster ripples.
	StreamCascade
	// StreamStill is nearly flat, a reflecting pool.
	StreamStill
)

// RippleSurface is the one deliberate exception to mesh immutability: its
// vertex heights are rewritten every frame as a pure function of elapsed
// time and the undeformed base positions, so it remains fully restartable.
type RippleSurface struct {
	Node *scenegraph.Node

	base      [][3]float32
	amplitude float32
	frequency float32
	speed     float32
}

// buildStream creates the water ribbon crossing the island.
func buildStream(style StreamStyle) (*scenegraph.Node, *RippleSurface, error) {
	m, err := mesh.Generate(
		mesh.Plane{Width: 52, Depth: 7, SegmentsX: 40, SegmentsZ: 6},
		mesh.Displacement{},
	)
	if err != nil {
		return nil, nil, err
	}

	node := scenegraph.New("stream")
	node.Mesh = m
	node.Position = mathx.Vec3{Y: 0.4}
	node.Rotation = mathx.Vec3{Y: 0.5}
	node.Color = [3]float32{0.45, 0.68, 0.82}
	node.Opacity = 0.75

	surface := &RippleSurface{
		Node:      node,
		base:      make([][3]float32, len(m.Positions)),
		amplitude: 0.18,
		frequency: 0.55,
		speed:     1.6,
	}
	copy(surface.base, m.Positions)

	switch style {
	case StreamCascade:
		surface.amplitude = 0.3
		surface.frequency = 1.1
		surface.speed = 2.8
	case StreamStill:
		surface.amplitude = 0.04
		surface.speed = 0.5
	}

	return node, surface, nil
}

// Update rewrites the surface heights for the given elapsed time. Two
// crossing wave trains of different frequency keep the pattern from
// visibly repeating.
func (r *RippleSurface) Update(elapsed float64) {
	t := float32(elapsed)
	m := r.Node.Mesh

	for i, p := range r.base {
		w1 := mathx.Sin(p[0]*r.frequency + t*r.speed)
		w2 := mathx.Sin(p[2]*r.frequency*2.3 - t*r.speed*0.71 + 1.4)
		m.Positions[i][1] = p[1] + r.amplitude*(w1+0.5*w2)
	}
}

// MaxHeight returns the bound on any rippled vertex height above its base.
func (r *RippleSurface) MaxHeight() float32 {
	return r.amplitude * 1.5
}
