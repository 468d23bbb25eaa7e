package mesh

import (
	"errors"
	"fmt"
	gomath "math"
)

var errNonFinite = errors.New("mesh: displacement parameters must be finite")

// Shape is a canonical parametric base shape.
type Shape interface {
	validate() error
	build() *Mesh
	// extent is the characteristic radius used by falloff attenuation.
	extent() float32
}

// Sphere is a latitude/longitude sphere centered at the origin.
type Sphere struct {
	Radius   float32
	Rings    int // latitudinal subdivisions, >= 2
	Segments int // longitudinal subdivisions, >= 3
}

func (s Sphere) validate() error {
	if s.Radius < 0 {
		return fmt.Errorf("mesh: sphere radius must be >= 0, got %v", s.Radius)
	}
	if s.Rings < 2 || s.Segments < 3 {
		return fmt.Errorf("mesh: sphere needs rings >= 2 and segments >= 3, got %d/%d", s.Rings, s.Segments)
	}
	return nil
}

func (s Sphere) extent() float32 { return s.Radius }

func (s Sphere) build() *Mesh {
	m := &Mesh{}

	for ring := 0; ring <= s.Rings; ring++ {
		v := float64(ring) / float64(s.Rings)
		theta := v * gomath.Pi
		sinT := gomath.Sin(theta)
		cosT := gomath.Cos(theta)

		for seg := 0; seg <= s.Segments; seg++ {
			u := float64(seg) / float64(s.Segments)
			phi := u * 2 * gomath.Pi

			nx := float32(sinT * gomath.Cos(phi))
			ny := float32(cosT)
			nz := float32(sinT * gomath.Sin(phi))

			m.Positions = append(m.Positions, [3]float32{nx * s.Radius, ny * s.Radius, nz * s.Radius})
			m.Normals = append(m.Normals, [3]float32{nx, ny, nz})
			m.UVs = append(m.UVs, [2]float32{float32(u), float32(v)})
		}
	}

	stride := uint32(s.Segments + 1)
	for ring := 0; ring < s.Rings; ring++ {
		for seg := 0; seg < s.Segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			m.Indices = append(m.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return m
}

// Plane is a subdivided rectangle in the XZ plane centered at the origin,
// facing +Y.
type Plane struct {
	Width     float32
	Depth     float32
	SegmentsX int
	SegmentsZ int
}

func (p Plane) validate() error {
	if p.Width < 0 || p.Depth < 0 {
		return fmt.Errorf("mesh: plane dimensions must be >= 0, got %v x %v", p.Width, p.Depth)
	}
	if p.SegmentsX < 1 || p.SegmentsZ < 1 {
		return fmt.Errorf("mesh: plane needs segments >= 1, got %d/%d", p.SegmentsX, p.SegmentsZ)
	}
	return nil
}

func (p Plane) extent() float32 {
	if p.Width > p.Depth {
		return p.Width / 2
	}
	return p.Depth / 2
}

func (p Plane) build() *Mesh {
	m := &Mesh{}

	for iz := 0; iz <= p.SegmentsZ; iz++ {
		v := float32(iz) / float32(p.SegmentsZ)
		z := (v - 0.5) * p.Depth

		for ix := 0; ix <= p.SegmentsX; ix++ {
			u := float32(ix) / float32(p.SegmentsX)
			x := (u - 0.5) * p.Width

			m.Positions = append(m.Positions, [3]float32{x, 0, z})
			m.Normals = append(m.Normals, [3]float32{0, 1, 0})
			m.UVs = append(m.UVs, [2]float32{u, v})
		}
	}

	stride := uint32(p.SegmentsX + 1)
	for iz := 0; iz < p.SegmentsZ; iz++ {
		for ix := 0; ix < p.SegmentsX; ix++ {
			a := uint32(iz)*stride + uint32(ix)
			b := a + stride
			m.Indices = append(m.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return m
}

// Tube is an open-ended cylinder along the Y axis centered at the origin.
type Tube struct {
	Radius   float32
	Length   float32
	Rings    int // subdivisions along the length, >= 1
	Segments int // subdivisions around the circumference, >= 3
}

func (t Tube) validate() error {
	if t.Radius < 0 || t.Length < 0 {
		return fmt.Errorf("mesh: tube dimensions must be >= 0, got r=%v l=%v", t.Radius, t.Length)
	}
	if t.Rings < 1 || t.Segments < 3 {
		return fmt.Errorf("mesh: tube needs rings >= 1 and segments >= 3, got %d/%d", t.Rings, t.Segments)
	}
	return nil
}

func (t Tube) extent() float32 { return t.Radius }

func (t Tube) build() *Mesh {
	m := &Mesh{}

	for ring := 0; ring <= t.Rings; ring++ {
		v := float32(ring) / float32(t.Rings)
		y := (v - 0.5) * t.Length

		for seg := 0; seg <= t.Segments; seg++ {
			u := float64(seg) / float64(t.Segments)
			phi := u * 2 * gomath.Pi

			nx := float32(gomath.Cos(phi))
			nz := float32(gomath.Sin(phi))

			m.Positions = append(m.Positions, [3]float32{nx * t.Radius, y, nz * t.Radius})
			m.Normals = append(m.Normals, [3]float32{nx, 0, nz})
			m.UVs = append(m.UVs, [2]float32{float32(u), v})
		}
	}

	stride := uint32(t.Segments + 1)
	for ring := 0; ring < t.Rings; ring++ {
		for seg := 0; seg < t.Segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			m.Indices = append(m.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}

	return m
}
