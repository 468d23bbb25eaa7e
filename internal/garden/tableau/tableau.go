// Package tableau composes the zen garden: a floating island, stream,
// bonsai trees, rabbit sculptures, dome, lanterns, pebbles and the
// atmospheric particle fields. The tree is built once from a parameter
// set; everything that moves afterwards is driven by elapsed time alone.
package tableau

import (
	"fmt"
	"math/rand"

	"github.com/oliviahylam/zen-garden/internal/garden/anim"
	"github.com/oliviahylam/zen-garden/internal/garden/noise"
	"github.com/oliviahylam/zen-garden/internal/garden/scenegraph"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// Params selects how much of everything the garden gets. Seed drives
// every scatter placement; the same Params always build the same garden.
type Params struct {
	Seed int64

	TreeCount    int
	RabbitCount  int
	PebbleCount  int
	LanternCount int

	DustCount    int
	MistCount    int
	DropletCount int
	OrbCount     int

	Stream StreamStyle
}

// Default returns the garden used by the viewer when nothing is
// configured.
func Default() Params {
	return Params{
		Seed:         7,
		TreeCount:    9,
		RabbitCount:  5,
		PebbleCount:  40,
		LanternCount: 4,
		DustCount:    160,
		MistCount:    60,
		DropletCount: 80,
		OrbCount:     12,
	}
}

// PlacedField is a particle field positioned in the world.
type PlacedField struct {
	Field  *anim.Field
	Center mathx.Vec3
	Color  [3]float32
	// Size is the point sprite size hint for the renderer.
	Size float32
}

// Scene is the built garden: the node tree, the placed particle fields,
// and the stream surfaces whose vertices are rewritten each frame.
type Scene struct {
	Root    *scenegraph.Node
	Fields  []*PlacedField
	Streams []*RippleSurface
}

// islandRadius is the footprint everything else is placed within.
const islandRadius float32 = 30

// Build constructs the whole garden from the parameter set.
func Build(p Params) (*Scene, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))
	terrain := noise.New(p.Seed)

	root := scenegraph.New("garden")

	island, err := buildIsland(terrain)
	if err != nil {
		return nil, fmt.Errorf("island: %w", err)
	}

	stream, surface, err := buildStream(p.Stream)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	island.Add(stream)

	trees, err := buildTrees(p.TreeCount, rng, terrain)
	if err != nil {
		return nil, fmt.Errorf("trees: %w", err)
	}
	island.Add(trees...)

	rabbits, err := buildRabbits(p.RabbitCount, rng)
	if err != nil {
		return nil, fmt.Errorf("rabbits: %w", err)
	}
	island.Add(rabbits...)

	dome, err := buildDome()
	if err != nil {
		return nil, fmt.Errorf("dome: %w", err)
	}
	island.Add(dome)

	lanterns, err := buildLanterns(p.LanternCount, rng)
	if err != nil {
		return nil, fmt.Errorf("lanterns: %w", err)
	}
	island.Add(lanterns...)

	pebbles, err := buildPebbles(p.PebbleCount, rng, terrain)
	if err != nil {
		return nil, fmt.Errorf("pebbles: %w", err)
	}
	island.Add(pebbles...)

	orbs, err := buildOrbs(p.OrbCount, rng)
	if err != nil {
		return nil, fmt.Errorf("orbs: %w", err)
	}
	island.Add(orbs...)

	root.Add(island)

	return &Scene{
		Root:    root,
		Fields:  buildFields(p, rng),
		Streams: []*RippleSurface{surface},
	}, nil
}

func validate(p Params) error {
	counts := map[string]int{
		"tree_count":    p.TreeCount,
		"rabbit_count":  p.RabbitCount,
		"pebble_count":  p.PebbleCount,
		"lantern_count": p.LanternCount,
		"dust_count":    p.DustCount,
		"mist_count":    p.MistCount,
		"droplet_count": p.DropletCount,
		"orb_count":     p.OrbCount,
	}
	for name, c := range counts {
		if c < 0 {
			return fmt.Errorf("tableau: %s must be >= 0, got %d", name, c)
		}
	}
	return nil
}

// scatterXZ picks a point within the given radius of the island center.
func scatterXZ(rng *rand.Rand, minRadius, maxRadius float32) mathx.Vec3 {
	angle := rng.Float32() * float32(mathx.TwoPi)
	dist := minRadius + rng.Float32()*(maxRadius-minRadius)
	return mathx.Vec3{
		X: dist * mathx.Cos(angle),
		Z: dist * mathx.Sin(angle),
	}
}
