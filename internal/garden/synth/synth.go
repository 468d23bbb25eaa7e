// Package synth generates looping ambient audio buffers. Each voice is a
// fixed-length sample array built from filtered noise or sparse decaying
// bursts; the host playback layer loops it indefinitely.
package synth

import (
	"fmt"
	gomath "math"
	"math/rand"
	"time"
)

// Voice identifies one ambient sound generator.
type Voice int

const (
	// VoiceWater is the stream: filtered noise under slow swells.
	VoiceWater Voice = iota
	// VoiceBreeze is wind through the trees: darker noise with slow
	// amplitude modulation.
	VoiceBreeze
	// VoiceBirds is sparse high chirps with an upward glide.
	VoiceBirds
	// VoiceBubbles is sparse low pops from the stream bed.
	VoiceBubbles
)

// String returns the voice name used in logs and source labels.
func (v Voice) String() string {
	switch v {
	case VoiceWater:
		return "water"
	case VoiceBreeze:
		return "breeze"
	case VoiceBirds:
		return "birds"
	case VoiceBubbles:
		return "bubbles"
	default:
		return fmt.Sprintf("voice(%d)", int(v))
	}
}

// Synthesize builds one voice buffer. The result has exactly
// duration * sampleRate samples, every sample in [-1, 1]. The seed fixes
// the random component, so the same seed reproduces the same buffer.
func Synthesize(voice Voice, duration time.Duration, sampleRate int, seed int64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("synth: sample rate must be positive, got %d", sampleRate)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("synth: duration must be positive, got %v", duration)
	}

	n := int(gomath.Round(duration.Seconds() * float64(sampleRate)))
	rng := rand.New(rand.NewSource(seed))

	var buf []float64
	switch voice {
	case VoiceWater:
		buf = water(n, sampleRate, rng)
	case VoiceBreeze:
		buf = breeze(n, sampleRate, rng)
	case VoiceBirds:
		buf = chirps(n, sampleRate, rng, chirpSpec{
			probability: 0.00003,
			minFreq:     2000, maxFreq: 4200,
			minDur: 0.12, maxDur: 0.3,
			glide:     600,
			amplitude: 0.35,
			decay:     18,
		})
	case VoiceBubbles:
		buf = chirps(n, sampleRate, rng, chirpSpec{
			probability: 0.00008,
			minFreq:     380, maxFreq: 900,
			minDur: 0.03, maxDur: 0.09,
			glide:     -150,
			amplitude: 0.3,
			decay:     45,
		})
	default:
		return nil, fmt.Errorf("synth: unknown voice %d", int(voice))
	}

	return clampBuffer(buf), nil
}

// water mixes uniform noise with slow sine swells, then rounds it off with
// a low-pass so it reads as running water rather than static.
func water(n, sampleRate int, rng *rand.Rand) []float64 {
	buf := make([]float64, n)
	dt := 1.0 / float64(sampleRate)

	for i := range buf {
		t := float64(i) * dt
		noise := rng.Float64()*2 - 1
		swell := 0.18*gomath.Sin(2*gomath.Pi*0.4*t) +
			0.1*gomath.Sin(2*gomath.Pi*1.3*t+0.7)
		buf[i] = 0.55*noise + swell
	}

	lowPass(buf, 800, sampleRate)
	// Remove the sub-audible rumble the swells leave behind.
	highPass(buf, 40, sampleRate)
	return buf
}

// breeze is darker filtered noise with a slow amplitude swell.
func breeze(n, sampleRate int, rng *rand.Rand) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
	lowPass(buf, 400, sampleRate)

	dt := 1.0 / float64(sampleRate)
	for i := range buf {
		t := float64(i) * dt
		am := 0.55 + 0.45*gomath.Sin(2*gomath.Pi*0.07*t)
		buf[i] *= am * 0.9
	}
	return buf
}

type chirpSpec struct {
	probability      float64 // per-sample trigger chance
	minFreq, maxFreq float64 // burst center frequency range, Hz
	minDur, maxDur   float64 // burst length range, seconds
	glide            float64 // frequency drift over the burst, Hz
	amplitude        float64
	decay            float64 // exponential envelope rate, 1/s
}

// chirps writes mostly silence, with occasional short decaying sinusoid
// bursts at random positions and frequencies.
func chirps(n, sampleRate int, rng *rand.Rand, spec chirpSpec) []float64 {
	buf := make([]float64, n)
	sr := float64(sampleRate)

	for i := 0; i < n; i++ {
		if rng.Float64() >= spec.probability {
			continue
		}

		freq := spec.minFreq + rng.Float64()*(spec.maxFreq-spec.minFreq)
		dur := spec.minDur + rng.Float64()*(spec.maxDur-spec.minDur)
		length := int(dur * sr)
		phase := rng.Float64() * 2 * gomath.Pi

		for j := 0; j < length && i+j < n; j++ {
			t := float64(j) / sr
			f := freq + spec.glide*t/dur
			env := gomath.Exp(-spec.decay * t)
			buf[i+j] += spec.amplitude * env * gomath.Sin(2*gomath.Pi*f*t+phase)
		}

		// Skip past the burst so bursts do not stack into clipping.
		i += length
	}

	return buf
}
