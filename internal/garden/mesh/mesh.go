// Package mesh builds procedural garden geometry: canonical parametric
// shapes perturbed by closed-form displacement, with recomputed normals.
package mesh

import (
	gomath "math"

	"github.com/oliviahylam/zen-garden/internal/garden/noise"
)

// Mesh holds indexed triangle geometry ready for upload. Instances are
// immutable after generation, except for ripple-style surfaces whose
// positions are intentionally rewritten each frame.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// Displacement describes the closed-form perturbation applied to a base
// shape. The zero value is the identity: Generate returns the undeformed
// shape bit-exactly.
type Displacement struct {
	// Per-axis harmonic terms: displacement along each axis is a sum of
	// sine terms of the vertex's own coordinates.
	Amplitude [3]float32
	Frequency [3]float32
	// Octaves of the harmonic sum; values below 1 are treated as 1.
	Octaves int

	// Falloff attenuates displacement with distance from the shape's
	// center axis, 0 = no attenuation, 1 = zero displacement at the rim.
	Falloff float32

	// Optional seeded gradient-noise term displacing along the vertex
	// normal. Nil Noise or zero NoiseAmplitude disables it.
	Noise          *noise.Perlin
	NoiseAmplitude float32
	NoiseFrequency float64
}

func (d Displacement) zero() bool {
	return d.Amplitude == [3]float32{} && (d.Noise == nil || d.NoiseAmplitude == 0)
}

// Generate builds the shape's canonical geometry and applies the
// displacement. It cannot fail for valid numeric input; invalid shape
// parameters are reported as errors.
func Generate(shape Shape, d Displacement) (*Mesh, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if err := validateDisplacement(d); err != nil {
		return nil, err
	}

	m := shape.build()
	if d.zero() {
		return m, nil
	}

	displace(m, d, shape.extent())
	recomputeNormals(m)
	return m, nil
}

func validateDisplacement(d Displacement) error {
	for i := 0; i < 3; i++ {
		if isBad(d.Amplitude[i]) || isBad(d.Frequency[i]) {
			return errNonFinite
		}
	}
	if isBad(d.NoiseAmplitude) || isBad(d.Falloff) {
		return errNonFinite
	}
	return nil
}

func isBad(v float32) bool {
	f := float64(v)
	return gomath.IsNaN(f) || gomath.IsInf(f, 0)
}

// displace perturbs every vertex in place. extent is the shape's
// characteristic radius, used for the falloff term.
func displace(m *Mesh, d Displacement, extent float32) {
	octaves := d.Octaves
	if octaves < 1 {
		octaves = 1
	}

	for i, p := range m.Positions {
		var offset [3]float32

		// Harmonic terms of the vertex's own coordinates. Each axis mixes
		// the other two coordinates so the pattern is not axis-aligned.
		coord := [3]float32{p[1] + p[2], p[2] + p[0], p[0] + p[1]}
		for axis := 0; axis < 3; axis++ {
			if d.Amplitude[axis] == 0 {
				continue
			}
			amp := d.Amplitude[axis]
			freq := d.Frequency[axis]
			for o := 0; o < octaves; o++ {
				offset[axis] += amp * sin32(freq*coord[axis])
				amp *= 0.5
				freq *= 2
			}
		}

		// Gradient-noise term along the canonical normal.
		if d.Noise != nil && d.NoiseAmplitude != 0 {
			f := d.NoiseFrequency
			if f == 0 {
				f = 1
			}
			n := d.Noise.Noise3D(float64(p[0])*f, float64(p[1])*f, float64(p[2])*f)
			nrm := m.Normals[i]
			s := d.NoiseAmplitude * float32(n)
			offset[0] += nrm[0] * s
			offset[1] += nrm[1] * s
			offset[2] += nrm[2] * s
		}

		// Distance-from-center attenuation.
		if d.Falloff > 0 && extent > 0 {
			dist := float32(gomath.Sqrt(float64(p[0]*p[0] + p[2]*p[2])))
			att := 1 - d.Falloff*dist/extent
			if att < 0 {
				att = 0
			}
			offset[0] *= att
			offset[1] *= att
			offset[2] *= att
		}

		m.Positions[i] = [3]float32{p[0] + offset[0], p[1] + offset[1], p[2] + offset[2]}
	}
}

// recomputeNormals rebuilds vertex normals from the displaced positions by
// accumulating face cross products, then averaging across vertices that
// share a position (seam columns on spheres and tubes).
func recomputeNormals(m *Mesh) {
	for i := range m.Normals {
		m.Normals[i] = [3]float32{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Positions[m.Indices[i]]
		b := m.Positions[m.Indices[i+1]]
		c := m.Positions[m.Indices[i+2]]

		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := cross(e1, e2)

		for _, idx := range []uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]} {
			m.Normals[idx][0] += n[0]
			m.Normals[idx][1] += n[1]
			m.Normals[idx][2] += n[2]
		}
	}

	smoothSharedNormals(m)

	for i := range m.Normals {
		m.Normals[i] = normalize(m.Normals[i])
	}
}

// smoothSharedNormals averages accumulated normals at quantized shared
// positions so duplicated seam vertices shade continuously.
func smoothSharedNormals(m *Mesh) {
	const epsilon float32 = 0.001

	posMap := make(map[[3]int32][]int)
	for i := range m.Positions {
		key := [3]int32{
			int32(m.Positions[i][0] / epsilon),
			int32(m.Positions[i][1] / epsilon),
			int32(m.Positions[i][2] / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, indices := range posMap {
		if len(indices) < 2 {
			continue
		}
		var sum [3]float32
		for _, idx := range indices {
			sum[0] += m.Normals[idx][0]
			sum[1] += m.Normals[idx][1]
			sum[2] += m.Normals[idx][2]
		}
		for _, idx := range indices {
			m.Normals[idx] = sum
		}
	}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func sin32(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}
