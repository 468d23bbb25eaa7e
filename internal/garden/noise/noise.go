// Package noise provides seeded gradient noise for organic surface variation.
package noise

import (
	"math"
	"math/rand"
)

// Perlin generates coherent gradient noise from a seed-shuffled
// permutation table. The same seed always yields the same field.
type Perlin struct {
	perm [512]int
}

// New creates a noise generator for the given seed.
func New(seed int64) *Perlin {
	p := &Perlin{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(256, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}
	return p
}

// Noise3D returns a noise value in roughly [-1, 1] for 3D coordinates.
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	a := p.perm[X] + Y
	aa := p.perm[a] + Z
	ab := p.perm[a+1] + Z
	b := p.perm[X+1] + Y
	ba := p.perm[b] + Z
	bb := p.perm[b+1] + Z

	return lerp(w, lerp(v, lerp(u, grad(p.perm[aa], x, y, z),
		grad(p.perm[ba], x-1, y, z)),
		lerp(u, grad(p.perm[ab], x, y-1, z),
			grad(p.perm[bb], x-1, y-1, z))),
		lerp(v, lerp(u, grad(p.perm[aa+1], x, y, z-1),
			grad(p.perm[ba+1], x-1, y, z-1)),
			lerp(u, grad(p.perm[ab+1], x, y-1, z-1),
				grad(p.perm[bb+1], x-1, y-1, z-1))))
}

// Noise2D returns a noise value for 2D coordinates.
func (p *Perlin) Noise2D(x, y float64) float64 {
	return p.Noise3D(x, y, 0)
}

// Fractal sums octaves of noise and normalizes the result to [0, 1].
// Each octave multiplies frequency by lacunarity and amplitude by
// persistence.
func (p *Perlin) Fractal(x, y, freq float64, octaves int, lacunarity, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}

	var total, maxAmp float64
	amp := 1.0

	for i := 0; i < octaves; i++ {
		total += p.Noise2D(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}

	return (total/maxAmp + 1.0) / 2.0
}

// Fractal3D is the 3D counterpart of Fractal, normalized to [0, 1].
func (p *Perlin) Fractal3D(x, y, z, freq float64, octaves int, lacunarity, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}

	var total, maxAmp float64
	amp := 1.0

	for i := 0; i < octaves; i++ {
		total += p.Noise3D(x*freq, y*freq, z*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}

	return (total/maxAmp + 1.0) / 2.0
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
