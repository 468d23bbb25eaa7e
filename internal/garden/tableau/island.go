package tableau

import (
	"github.com/oliviahylam/zen-garden/internal/garden/anim"
	"github.com/oliviahylam/zen-garden/internal/garden/mesh"
	"github.com/oliviahylam/zen-garden/internal/garden/noise"
	"github.com/oliviahylam/zen-garden/internal/garden/scenegraph"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// buildIsland creates the floating island: a gently rolling terrain cap
// over a craggy rock underside. The whole island bobs slowly; everything
// placed on it inherits the motion.
func buildIsland(terrain *noise.Perlin) (*scenegraph.Node, error) {
	island := scenegraph.New("island")
	island.Anim = &anim.Params{
		Kind:      anim.KindFloat,
		Speed:     0.25,
		Amplitude: 0.8,
		Secondary: 0.3,
	}

	// Terrain: a flattened sphere with rolling noise, calm at the rim so
	// the silhouette stays clean.
	top, err := mesh.Generate(
		mesh.Sphere{Radius: islandRadius, Rings: 24, Segments: 36},
		mesh.Displacement{
			Amplitude:      [3]float32{0, 1.4, 0},
			Frequency:      [3]float32{0, 0.21, 0},
			Octaves:        3,
			Falloff:        0.6,
			Noise:          terrain,
			NoiseAmplitude: 1.1,
			NoiseFrequency: 0.08,
		},
	)
	if err != nil {
		return nil, err
	}

	terrainNode := scenegraph.New("terrain")
	terrainNode.Mesh = top
	terrainNode.Scale = mathx.Vec3{X: 1, Y: 0.35, Z: 1}
	terrainNode.Color = [3]float32{0.42, 0.62, 0.35}
	island.Add(terrainNode)

	// Underside rock: rougher displacement, hanging below the terrain.
	rock, err := mesh.Generate(
		mesh.Sphere{Radius: islandRadius * 0.82, Rings: 16, Segments: 24},
		mesh.Displacement{
			Amplitude:      [3]float32{1.8, 2.6, 1.8},
			Frequency:      [3]float32{0.33, 0.27, 0.41},
			Octaves:        2,
			Noise:          terrain,
			NoiseAmplitude: 2.2,
			NoiseFrequency: 0.12,
		},
	)
	if err != nil {
		return nil, err
	}

	rockNode := scenegraph.New("underside")
	rockNode.Mesh = rock
	rockNode.Position = mathx.Vec3{Y: -7}
	rockNode.Scale = mathx.Vec3{X: 1, Y: 0.75, Z: 1}
	rockNode.Color = [3]float32{0.38, 0.33, 0.3}
	island.Add(rockNode)

	return island, nil
}
