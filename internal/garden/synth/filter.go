package synth

import gomath "math"

// lowPass applies a one-pole low-pass filter in place and returns the
// buffer. cutoff is in Hz.
func lowPass(samples []float64, cutoff float64, sampleRate int) []float64 {
	if cutoff <= 0 || len(samples) == 0 {
		return samples
	}
	rc := 1.0 / (2 * gomath.Pi * cutoff)
	dt := 1.0 / float64(sampleRate)
	alpha := dt / (rc + dt)

	y := samples[0]
	for i, x := range samples {
		y += alpha * (x - y)
		samples[i] = y
	}
	return samples
}

// highPass applies a one-pole high-pass filter in place and returns the
// buffer. cutoff is in Hz.
func highPass(samples []float64, cutoff float64, sampleRate int) []float64 {
	if cutoff <= 0 || len(samples) == 0 {
		return samples
	}
	rc := 1.0 / (2 * gomath.Pi * cutoff)
	dt := 1.0 / float64(sampleRate)
	alpha := rc / (rc + dt)

	y := samples[0]
	prevX := samples[0]
	for i, x := range samples {
		y = alpha * (y + x - prevX)
		prevX = x
		samples[i] = y
	}
	return samples
}

// clampBuffer hard-limits every sample to [-1, 1] in place.
func clampBuffer(samples []float64) []float64 {
	for i, s := range samples {
		if s > 1 {
			samples[i] = 1
		} else if s < -1 {
			samples[i] = -1
		}
	}
	return samples
}
