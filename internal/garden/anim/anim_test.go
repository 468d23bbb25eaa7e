package anim

import (
	"testing"
)

func TestEvaluateDeterministic(t *testing.T) {
	params := []Params{
		{Kind: KindFloat, Speed: 1.2, Phase: 0.4, Amplitude: 2, Secondary: 0.5},
		{Kind: KindSway, Speed: 0.8, Phase: 1.1, Amplitude: 0.15, Secondary: 0.05},
		{Kind: KindSpin, Speed: 0.3},
		{Kind: KindShimmer, Speed: 2.0, Amplitude: 0.6},
		{Kind: KindDrift, Speed: 0.5, Phase: 3.3, Amplitude: 4, Secondary: 1},
		{Kind: KindGlow, Speed: 1.5, Color: [3]float32{1, 0.8, 0.4}, ColorB: [3]float32{0.4, 0.6, 1}},
	}
	times := []float64{0, 0.016, 1, 17.3, 1000.5}

	for _, p := range params {
		for _, tm := range times {
			a := Evaluate(p, tm)
			b := Evaluate(p, tm)
			if a != b {
				t.Errorf("Evaluate(%+v, %v) not deterministic: %+v != %+v", p, tm, a, b)
			}
		}
	}
}

func TestOffsetWithinAmplitudeBound(t *testing.T) {
	params := []Params{
		{Kind: KindFloat, Speed: 1.7, Phase: 0.9, Amplitude: 3, Secondary: 1},
		{Kind: KindDrift, Speed: 0.6, Phase: 2.2, Amplitude: 2.5, Secondary: 0.75},
	}

	for _, p := range params {
		bound := p.MaxOffset()
		for i := 0; i < 2000; i++ {
			tm := float64(i) * 0.037
			tr := Evaluate(p, tm)
			for axis, v := range [3]float32{tr.Offset.X, tr.Offset.Y, tr.Offset.Z} {
				if absf(v) > bound+0.0001 {
					t.Fatalf("kind %v axis %d offset %v exceeds bound %v at t=%v",
						p.Kind, axis, v, bound, tm)
				}
			}
		}
	}
}

func TestShimmerOpacityRange(t *testing.T) {
	p := Params{Kind: KindShimmer, Speed: 3, Amplitude: 0.9}

	for i := 0; i < 1000; i++ {
		tr := Evaluate(p, float64(i)*0.021)
		if tr.Opacity < 0 || tr.Opacity > 1 {
			t.Fatalf("opacity %v outside [0, 1]", tr.Opacity)
		}
	}
}

func TestGlowBlendsEndpoints(t *testing.T) {
	p := Params{
		Kind:   KindGlow,
		Speed:  1,
		Color:  [3]float32{1, 0.5, 0},
		ColorB: [3]float32{0, 0.5, 1},
	}

	for i := 0; i < 1000; i++ {
		tr := Evaluate(p, float64(i)*0.013)
		for c := 0; c < 3; c++ {
			lo, hi := p.Color[c], p.ColorB[c]
			if lo > hi {
				lo, hi = hi, lo
			}
			if tr.Color[c] < lo-0.0001 || tr.Color[c] > hi+0.0001 {
				t.Fatalf("color channel %d = %v outside [%v, %v]", c, tr.Color[c], lo, hi)
			}
		}
	}
}

func TestRestingTransform(t *testing.T) {
	// Zero amplitudes must leave the object at rest regardless of time.
	p := Params{Kind: KindFloat, Speed: 2}
	tr := Evaluate(p, 123.456)

	if tr.Offset != (Evaluate(p, 0).Offset) {
		t.Error("zero-amplitude float should not move")
	}
	if tr.Scale != 1 || tr.Opacity != 1 {
		t.Errorf("resting transform should have unit scale and opacity, got %v/%v", tr.Scale, tr.Opacity)
	}
}
