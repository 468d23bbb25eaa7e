package mesh

import (
	gomath "math"
	"testing"

	"github.com/oliviahylam/zen-garden/internal/garden/noise"
)

func TestZeroDisplacementIsIdentity(t *testing.T) {
	shapes := []Shape{
		Sphere{Radius: 5, Rings: 8, Segments: 12},
		Plane{Width: 20, Depth: 10, SegmentsX: 6, SegmentsZ: 4},
		Tube{Radius: 1.5, Length: 8, Rings: 4, Segments: 10},
	}

	for _, shape := range shapes {
		base := shape.build()
		got, err := Generate(shape, Displacement{})
		if err != nil {
			t.Fatalf("Generate(%T, zero): %v", shape, err)
		}

		if len(got.Positions) != len(base.Positions) {
			t.Fatalf("%T: vertex count %d, want %d", shape, len(got.Positions), len(base.Positions))
		}
		for i := range base.Positions {
			if got.Positions[i] != base.Positions[i] {
				t.Fatalf("%T: vertex %d moved under zero displacement: %v != %v",
					shape, i, got.Positions[i], base.Positions[i])
			}
		}
	}
}

func TestDisplacementBounded(t *testing.T) {
	shape := Sphere{Radius: 5, Rings: 12, Segments: 16}
	d := Displacement{
		Amplitude: [3]float32{0.4, 0.8, 0.4},
		Frequency: [3]float32{1.3, 0.7, 1.9},
		Octaves:   3,
	}

	base := shape.build()
	got, err := Generate(shape, d)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Harmonic sum with halving octave amplitudes is bounded by 2*amplitude
	// per axis.
	for i := range base.Positions {
		for axis := 0; axis < 3; axis++ {
			delta := absf(got.Positions[i][axis] - base.Positions[i][axis])
			bound := 2 * d.Amplitude[axis]
			if delta > bound+0.0001 {
				t.Fatalf("vertex %d axis %d displaced %v, bound %v", i, axis, delta, bound)
			}
		}
	}
}

func TestNoiseDisplacementSeeded(t *testing.T) {
	shape := Sphere{Radius: 3, Rings: 6, Segments: 8}
	d := Displacement{
		Noise:          noise.New(42),
		NoiseAmplitude: 0.5,
		NoiseFrequency: 0.8,
	}

	a, err := Generate(shape, d)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	d.Noise = noise.New(42)
	b, err := Generate(shape, d)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("same seed produced different geometry at vertex %d", i)
		}
	}
}

func TestNormalsUnitLength(t *testing.T) {
	shape := Plane{Width: 10, Depth: 10, SegmentsX: 8, SegmentsZ: 8}
	d := Displacement{
		Amplitude: [3]float32{0, 1.2, 0},
		Frequency: [3]float32{0, 0.9, 0},
		Octaves:   2,
	}

	m, err := Generate(shape, d)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, n := range m.Normals {
		l := gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if l < 0.999 || l > 1.001 {
			t.Fatalf("normal %d has length %v, want ~1", i, l)
		}
	}
}

func TestFalloffFlattensRim(t *testing.T) {
	shape := Plane{Width: 20, Depth: 20, SegmentsX: 10, SegmentsZ: 10}
	d := Displacement{
		Amplitude: [3]float32{0, 2, 0},
		Frequency: [3]float32{0, 1.1, 0},
		Falloff:   1,
	}

	base := shape.build()
	m, err := Generate(shape, d)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Corner vertices are at the full extent, so displacement there must be
	// fully attenuated.
	for i, p := range base.Positions {
		dist := gomath.Sqrt(float64(p[0]*p[0] + p[2]*p[2]))
		if dist < float64(shape.extent()) {
			continue
		}
		delta := absf(m.Positions[i][1] - p[1])
		if delta > 0.0001 {
			t.Fatalf("rim vertex %d displaced %v, want 0", i, delta)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"negative radius", Sphere{Radius: -1, Rings: 4, Segments: 8}},
		{"too few rings", Sphere{Radius: 1, Rings: 1, Segments: 8}},
		{"too few segments", Tube{Radius: 1, Length: 2, Rings: 2, Segments: 2}},
		{"zero plane segments", Plane{Width: 1, Depth: 1, SegmentsX: 0, SegmentsZ: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.shape, Displacement{}); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestNonFiniteDisplacementRejected(t *testing.T) {
	shape := Sphere{Radius: 1, Rings: 4, Segments: 6}
	d := Displacement{
		Amplitude: [3]float32{float32(gomath.NaN()), 0, 0},
	}
	if _, err := Generate(shape, d); err == nil {
		t.Error("expected error for NaN amplitude, got nil")
	}

	d = Displacement{
		Amplitude: [3]float32{1, 0, 0},
		Frequency: [3]float32{float32(gomath.Inf(1)), 0, 0},
	}
	if _, err := Generate(shape, d); err == nil {
		t.Error("expected error for Inf frequency, got nil")
	}
}

func TestIndicesInRange(t *testing.T) {
	shapes := []Shape{
		Sphere{Radius: 2, Rings: 5, Segments: 7},
		Plane{Width: 4, Depth: 4, SegmentsX: 3, SegmentsZ: 5},
		Tube{Radius: 1, Length: 3, Rings: 2, Segments: 6},
	}

	for _, shape := range shapes {
		m, err := Generate(shape, Displacement{})
		if err != nil {
			t.Fatalf("Generate(%T): %v", shape, err)
		}
		if len(m.Indices)%3 != 0 {
			t.Errorf("%T: index count %d not a multiple of 3", shape, len(m.Indices))
		}
		for _, idx := range m.Indices {
			if int(idx) >= len(m.Positions) {
				t.Fatalf("%T: index %d out of range (%d vertices)", shape, idx, len(m.Positions))
			}
		}
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
