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

// TreeStyle selects the bonsai silhouette.
type TreeStyle int

const (
	// TreeUpright grows straight with a broad crown.
	TreeUpright TreeStyle = iota
	// TreeCascade leans hard with foliage spilling to one side.
	TreeCascade
	// TreeWindswept leans gently, crown trailing.
	TreeWindswept

	treeStyleCount
)

// buildTrees scatters bonsai across the island. Style, size and placement
// all come from the seeded rng, so a seed reproduces the grove exactly.
func buildTrees(count int, rng *rand.Rand, terrain *noise.Perlin) ([]*scenegraph.Node, error) {
	var trees []*scenegraph.Node

	for i := 0; i < count; i++ {
		style := TreeStyle(rng.Intn(int(treeStyleCount)))
		tree, err := buildTree(i, style, rng, terrain)
		if err != nil {
			return nil, err
		}

		tree.Position = scatterXZ(rng, islandRadius*0.25, islandRadius*0.85)
		tree.Position.Y = 1.5
		tree.Rotation.Y = rng.Float32() * float32(mathx.TwoPi)
		s := 0.7 + rng.Float32()*0.7
		tree.Scale = mathx.Vec3{X: s, Y: s, Z: s}

		trees = append(trees, tree)
	}

	return trees, nil
}

func buildTree(index int, style TreeStyle, rng *rand.Rand, terrain *noise.Perlin) (*scenegraph.Node, error) {
	tree := scenegraph.New(fmt.Sprintf("tree-%d", index))
	tree.Anim = &anim.Params{
		Kind:      anim.KindSway,
		Speed:     0.6 + rng.Float32()*0.5,
		Phase:     rng.Float32() * float32(mathx.TwoPi),
		Amplitude: 0.035,
		Secondary: 0.012,
	}

	trunk, err := mesh.Generate(
		mesh.Tube{Radius: 0.35, Length: 5, Rings: 6, Segments: 8},
		mesh.Displacement{
			Amplitude: [3]float32{0.12, 0, 0.12},
			Frequency: [3]float32{0.8, 0, 1.1},
		},
	)
	if err != nil {
		return nil, err
	}

	trunkNode := scenegraph.New("trunk")
	trunkNode.Mesh = trunk
	trunkNode.Position = mathx.Vec3{Y: 2.5}
	trunkNode.Color = [3]float32{0.4, 0.29, 0.2}

	var lean float32
	switch style {
	case TreeCascade:
		lean = 0.5
	case TreeWindswept:
		lean = 0.25
	}
	trunkNode.Rotation.Z = lean
	tree.Add(trunkNode)

	// Foliage: a few noise-roughened spheres clustered by style.
	clumps := 2 + rng.Intn(3)
	for c := 0; c < clumps; c++ {
		foliage, err := mesh.Generate(
			mesh.Sphere{Radius: 1.3 + rng.Float32()*0.8, Rings: 8, Segments: 10},
			mesh.Displacement{
				Noise:          terrain,
				NoiseAmplitude: 0.3,
				NoiseFrequency: 0.9,
			},
		)
		if err != nil {
			return nil, err
		}

		clump := scenegraph.New(fmt.Sprintf("foliage-%d", c))
		clump.Mesh = foliage
		clump.Color = [3]float32{0.25, 0.45 + rng.Float32()*0.15, 0.25}

		spread := 1.2
		drop := float32(0)
		if style == TreeCascade {
			spread = 2.2
			drop = 1.5
		}
		clump.Position = mathx.Vec3{
			X: lean*4 + (rng.Float32()-0.5)*float32(spread)*2,
			Y: 5.2 - drop + (rng.Float32()-0.5)*1.2,
			Z: (rng.Float32() - 0.5) * float32(spread) * 2,
		}
		tree.Add(clump)
	}

	return tree, nil
}
