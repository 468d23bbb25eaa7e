package tableau

import (
	"fmt"
	"math/rand"

	"github.com/oliviahylam/zen-garden/internal/garden/anim"
	"github.com/oliviahylam/zen-garden/internal/garden/mesh"
	"github.com/oliviahylam/zen-garden/internal/garden/noise"
	"github.com/oliviahylam/zen-garden/internal/garden/scenegraph"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// buildDome raises the open lattice sheltering the garden center: a ring
// of leaning arch ribs meeting under a small floating cap.
func buildDome() (*scenegraph.Node, error) {
	dome := scenegraph.New("dome")
	dome.Position = mathx.Vec3{Y: 1}

	const (
		ribs      = 8
		footprint = float32(9)
		ribLength = float32(14)
	)

	rib, err := mesh.Generate(
		mesh.Tube{Radius: 0.22, Length: ribLength, Rings: 8, Segments: 8},
		mesh.Displacement{
			Amplitude: [3]float32{0.25, 0, 0.25},
			Frequency: [3]float32{0.4, 0, 0.4},
		},
	)
	if err != nil {
		return nil, err
	}

	for i := 0; i < ribs; i++ {
		angle := float32(i) / ribs * float32(mathx.TwoPi)

		node := scenegraph.New(fmt.Sprintf("rib-%d", i))
		node.Mesh = rib
		node.Position = mathx.Vec3{
			X: footprint * mathx.Cos(angle),
			Y: ribLength * 0.42,
			Z: footprint * mathx.Sin(angle),
		}
		// Lean each rib toward the apex.
		node.Rotation = mathx.Vec3{X: 0.62 * mathx.Sin(angle), Z: 0.62 * mathx.Cos(angle)}
		node.Color = [3]float32{0.55, 0.5, 0.45}
		dome.Add(node)
	}

	crown, err := mesh.Generate(mesh.Sphere{Radius: 1.6, Rings: 8, Segments: 12}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	capNode := scenegraph.New("cap")
	capNode.Mesh = crown
	capNode.Position = mathx.Vec3{Y: ribLength*0.82 + 1}
	capNode.Scale = mathx.Vec3{X: 1, Y: 0.45, Z: 1}
	capNode.Color = [3]float32{0.6, 0.55, 0.5}
	capNode.Anim = &anim.Params{Kind: anim.KindSpin, Speed: 0.1}
	dome.Add(capNode)

	return dome, nil
}

// buildLanterns places stone lanterns along the stream edge, each carrying
// a glow orb pulsing between warm tones.
func buildLanterns(count int, rng *rand.Rand) ([]*scenegraph.Node, error) {
	var lanterns []*scenegraph.Node

	base, err := mesh.Generate(mesh.Tube{Radius: 0.3, Length: 1.4, Rings: 3, Segments: 6}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	hood, err := mesh.Generate(mesh.Sphere{Radius: 0.55, Rings: 5, Segments: 8}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	orb, err := mesh.Generate(mesh.Sphere{Radius: 0.28, Rings: 6, Segments: 8}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		lantern := scenegraph.New(fmt.Sprintf("lantern-%d", i))
		lantern.Position = scatterXZ(rng, islandRadius*0.3, islandRadius*0.7)
		lantern.Position.Y = 1.3

		post := scenegraph.New("post")
		post.Mesh = base
		post.Position = mathx.Vec3{Y: 0.7}
		post.Color = [3]float32{0.5, 0.48, 0.45}
		lantern.Add(post)

		roof := scenegraph.New("roof")
		roof.Mesh = hood
		roof.Position = mathx.Vec3{Y: 1.7}
		roof.Scale = mathx.Vec3{X: 1, Y: 0.5, Z: 1}
		roof.Color = [3]float32{0.45, 0.43, 0.4}
		lantern.Add(roof)

		light := scenegraph.New("light")
		light.Mesh = orb
		light.Position = mathx.Vec3{Y: 1.35}
		light.Anim = &anim.Params{
			Kind:   anim.KindGlow,
			Speed:  0.9 + rng.Float32()*0.4,
			Phase:  rng.Float32() * float32(mathx.TwoPi),
			Color:  [3]float32{1, 0.85, 0.55},
			ColorB: [3]float32{1, 0.65, 0.35},
		}
		lantern.Add(light)

		lanterns = append(lanterns, lantern)
	}

	return lanterns, nil
}

// buildPebbles scatters small noise-roughened stones over the terrain.
func buildPebbles(count int, rng *rand.Rand, terrain *noise.Perlin) ([]*scenegraph.Node, error) {
	var pebbles []*scenegraph.Node

	// A handful of shared shapes; variety comes from placement and scale.
	shapes := make([]*mesh.Mesh, 0, 4)
	for s := 0; s < 4; s++ {
		m, err := mesh.Generate(
			mesh.Sphere{Radius: 0.3, Rings: 5, Segments: 7},
			mesh.Displacement{
				Noise:          terrain,
				NoiseAmplitude: 0.08,
				NoiseFrequency: 3.5 + float64(s),
			},
		)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, m)
	}

	for i := 0; i < count; i++ {
		pebble := scenegraph.New(fmt.Sprintf("pebble-%d", i))
		pebble.Mesh = shapes[rng.Intn(len(shapes))]
		pebble.Position = scatterXZ(rng, 2, islandRadius*0.9)
		pebble.Position.Y = 1.1
		pebble.Rotation.Y = rng.Float32() * float32(mathx.TwoPi)
		pebble.Scale = mathx.Vec3{
			X: 0.6 + rng.Float32()*1.2,
			Y: 0.4 + rng.Float32()*0.5,
			Z: 0.6 + rng.Float32()*1.2,
		}
		tone := 0.45 + rng.Float32()*0.25
		pebble.Color = [3]float32{tone, tone, tone * 1.02}
		pebbles = append(pebbles, pebble)
	}

	return pebbles, nil
}

// buildOrbs releases slow drifting light orbs above the garden.
func buildOrbs(count int, rng *rand.Rand) ([]*scenegraph.Node, error) {
	m, err := mesh.Generate(mesh.Sphere{Radius: 0.35, Rings: 8, Segments: 10}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}

	var orbs []*scenegraph.Node
	for i := 0; i < count; i++ {
		orb := scenegraph.New(fmt.Sprintf("orb-%d", i))
		orb.Mesh = m
		orb.Position = scatterXZ(rng, 3, islandRadius*0.8)
		orb.Position.Y = 4 + rng.Float32()*8
		orb.Opacity = 0.85
		orb.Anim = &anim.Params{
			Kind:      anim.KindDrift,
			Speed:     0.2 + rng.Float32()*0.3,
			Phase:     rng.Float32() * float32(mathx.TwoPi),
			Amplitude: 1.5 + rng.Float32()*1.5,
			Secondary: 0.8,
		}
		orb.Color = [3]float32{0.8, 0.9, 1}
		orbs = append(orbs, orb)
	}

	return orbs, nil
}
