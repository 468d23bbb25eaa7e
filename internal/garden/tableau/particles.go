package tableau

import (
	"math/rand"

	"github.com/oliviahylam/zen-garden/internal/garden/anim"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// buildFields creates the three atmospheric particle fields: dust motes
// rising through the whole volume, mist hugging the ground, and droplets
// falling back toward the stream. Each field gets its own seed derived
// from the scene rng so field counts can change without reshuffling the
// scatter of everything else.
func buildFields(p Params, rng *rand.Rand) []*PlacedField {
	var fields []*PlacedField

	if p.DustCount > 0 {
		dust := anim.NewField(anim.FieldConfig{
			Count:          p.DustCount,
			Seed:           rng.Int63(),
			Floor:          5,
			Ceiling:        45,
			Radius:         islandRadius * 1.3,
			MinSpeed:       0.2,
			MaxSpeed:       0.7,
			DriftAmplitude: 0.6,
		})
		fields = append(fields, &PlacedField{
			Field: dust,
			Color: [3]float32{1, 0.98, 0.9},
			Size:  2,
		})
	}

	if p.MistCount > 0 {
		mist := anim.NewField(anim.FieldConfig{
			Count:          p.MistCount,
			Seed:           rng.Int63(),
			Floor:          1,
			Ceiling:        6,
			Radius:         islandRadius,
			MinSpeed:       0.05,
			MaxSpeed:       0.18,
			DriftAmplitude: 1.1,
		})
		fields = append(fields, &PlacedField{
			Field: mist,
			Color: [3]float32{0.9, 0.95, 1},
			Size:  9,
		})
	}

	if p.DropletCount > 0 {
		droplets := anim.NewField(anim.FieldConfig{
			Count:          p.DropletCount,
			Seed:           rng.Int63(),
			Floor:          0.5,
			Ceiling:        10,
			Radius:         8,
			MinSpeed:       -4,
			MaxSpeed:       -1.5,
			DriftAmplitude: 0.15,
		})
		fields = append(fields, &PlacedField{
			Field:  droplets,
			Center: mathx.Vec3{Y: 0.4},
			Color:  [3]float32{0.7, 0.85, 1},
			Size:   3,
		})
	}

	return fields
}
