package tableau

import (
	"fmt"
	"math/rand"

	"github.com/oliviahylam/zen-garden/internal/garden/anim"
	"github.com/oliviahylam/zen-garden/internal/garden/mesh"
	"github.com/oliviahylam/zen-garden/internal/garden/scenegraph"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// RabbitPose selects the sculpture posture.
type RabbitPose int

const (
	// PoseSitting is upright with ears raised.
	PoseSitting RabbitPose = iota
	// PoseAlert stretches tall, ears straight up.
	PoseAlert
	// PoseCrouching hugs the ground, ears laid back.
	PoseCrouching

	rabbitPoseCount
)

// buildRabbits scatters stone rabbit sculptures across the island. They
// are static statuary apart from a barely visible breathing bob.
func buildRabbits(count int, rng *rand.Rand) ([]*scenegraph.Node, error) {
	var rabbits []*scenegraph.Node

	for i := 0; i < count; i++ {
		pose := RabbitPose(rng.Intn(int(rabbitPoseCount)))
		rabbit, err := buildRabbit(i, pose, rng)
		if err != nil {
			return nil, err
		}

		rabbit.Position = scatterXZ(rng, islandRadius*0.2, islandRadius*0.8)
		rabbit.Position.Y = 1.2
		rabbit.Rotation.Y = rng.Float32() * float32(mathx.TwoPi)

		rabbits = append(rabbits, rabbit)
	}

	return rabbits, nil
}

func buildRabbit(index int, pose RabbitPose, rng *rand.Rand) (*scenegraph.Node, error) {
	rabbit := scenegraph.New(fmt.Sprintf("rabbit-%d", index))
	rabbit.Anim = &anim.Params{
		Kind:      anim.KindFloat,
		Speed:     1.1,
		Phase:     rng.Float32() * float32(mathx.TwoPi),
		Amplitude: 0.02,
	}

	grey := 0.6 + rng.Float32()*0.15
	color := [3]float32{grey, grey * 0.97, grey * 0.92}

	bodyScale := mathx.Vec3{X: 1, Y: 0.85, Z: 1.25}
	headY := float32(1.05)
	earTilt := float32(0.15)
	switch pose {
	case PoseAlert:
		bodyScale = mathx.Vec3{X: 0.85, Y: 1.15, Z: 0.9}
		headY = 1.45
		earTilt = 0
	case PoseCrouching:
		bodyScale = mathx.Vec3{X: 1.05, Y: 0.55, Z: 1.45}
		headY = 0.7
		earTilt = 0.9
	}

	body, err := mesh.Generate(mesh.Sphere{Radius: 0.7, Rings: 8, Segments: 10}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	bodyNode := scenegraph.New("body")
	bodyNode.Mesh = body
	bodyNode.Position = mathx.Vec3{Y: 0.55}
	bodyNode.Scale = bodyScale
	bodyNode.Color = color
	rabbit.Add(bodyNode)

	head, err := mesh.Generate(mesh.Sphere{Radius: 0.4, Rings: 6, Segments: 8}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	headNode := scenegraph.New("head")
	headNode.Mesh = head
	headNode.Position = mathx.Vec3{Y: headY, Z: 0.45}
	headNode.Color = color
	rabbit.Add(headNode)

	ear, err := mesh.Generate(mesh.Tube{Radius: 0.08, Length: 0.55, Rings: 2, Segments: 6}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	for _, side := range []float32{-1, 1} {
		earNode := scenegraph.New("ear")
		earNode.Mesh = ear
		earNode.Position = mathx.Vec3{X: side * 0.16, Y: headY + 0.45, Z: 0.4}
		earNode.Rotation = mathx.Vec3{X: -earTilt, Z: side * -0.12}
		earNode.Color = color
		rabbit.Add(earNode)
	}

	tail, err := mesh.Generate(mesh.Sphere{Radius: 0.15, Rings: 4, Segments: 6}, mesh.Displacement{})
	if err != nil {
		return nil, err
	}
	tailNode := scenegraph.New("tail")
	tailNode.Mesh = tail
	tailNode.Position = mathx.Vec3{Y: 0.55, Z: -0.8 * bodyScale.Z}
	tailNode.Color = [3]float32{0.92, 0.9, 0.88}
	rabbit.Add(tailNode)

	return rabbit, nil
}
