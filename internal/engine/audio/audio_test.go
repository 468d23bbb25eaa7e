package audio

import (
	"testing"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New(44100)
	if m == nil {
		t.Fatal("New() returned nil")
	}

	if m.MasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.MasterVolume())
	}
	if m.Ready() {
		t.Error("manager should not be ready before Init and Unlock")
	}
}

func TestSetVolumeClamped(t *testing.T) {
	m := New(44100)

	m.SetMasterVolume(0.5)
	if m.MasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.MasterVolume())
	}

	m.SetMasterVolume(2.0)
	if m.MasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.MasterVolume())
	}

	m.SetMasterVolume(-1.0)
	if m.MasterVolume() != 0.0 {
		t.Errorf("master volume = %f, want 0.0 (clamped)", m.MasterVolume())
	}
}

func TestVoiceDeferredUntilUnlock(t *testing.T) {
	m := New(44100)

	buf := make([]float64, 1024)
	src, err := m.StartVoice("water", buf, 44100)
	if err != nil {
		t.Fatalf("StartVoice: %v", err)
	}

	// Speaker never initialized: the voice must be queued, not playing.
	if src.Playing() {
		t.Error("voice should not play before Unlock")
	}
	if len(m.Sources()) != 1 {
		t.Errorf("expected 1 registered source, got %d", len(m.Sources()))
	}
}

func TestStartVoiceValidation(t *testing.T) {
	m := New(44100)

	if _, err := m.StartVoice("empty", nil, 44100); err == nil {
		t.Error("expected error for empty buffer")
	}
	if _, err := m.StartVoice("bad-rate", make([]float64, 16), 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestCloseStopsEachSourceOnce(t *testing.T) {
	m := New(44100)

	buf := make([]float64, 256)
	var sources []*Source
	for _, name := range []string{"water", "breeze", "birds", "bubbles"} {
		src, err := m.StartVoice(name, buf, 44100)
		if err != nil {
			t.Fatalf("StartVoice(%s): %v", name, err)
		}
		sources = append(sources, src)
	}

	m.Close()

	for _, src := range sources {
		if got := src.StopCount(); got != 1 {
			t.Errorf("source %s stopped %d times, want exactly 1", src.Name(), got)
		}
	}

	// Closing again must not stop anything a second time.
	m.Close()
	for _, src := range sources {
		if got := src.StopCount(); got != 1 {
			t.Errorf("source %s stopped %d times after double Close, want 1", src.Name(), got)
		}
	}
}

func TestExplicitStopThenCloseIsSingleStop(t *testing.T) {
	m := New(44100)

	src, err := m.StartVoice("water", make([]float64, 64), 44100)
	if err != nil {
		t.Fatalf("StartVoice: %v", err)
	}

	src.Stop()
	m.Close()

	if got := src.StopCount(); got != 1 {
		t.Errorf("stop count = %d, want 1", got)
	}
}

func TestStartVoiceAfterCloseFails(t *testing.T) {
	m := New(44100)
	m.Close()

	if _, err := m.StartVoice("late", make([]float64, 16), 44100); err == nil {
		t.Error("expected error starting voice after Close")
	}
}

func TestLoopBufferWraps(t *testing.T) {
	lb := &loopBuffer{samples: []float64{0.1, 0.2, 0.3}}

	out := make([][2]float64, 7)
	n, ok := lb.Stream(out)
	if !ok || n != 7 {
		t.Fatalf("Stream returned %d/%v, want 7/true", n, ok)
	}

	want := []float64{0.1, 0.2, 0.3, 0.1, 0.2, 0.3, 0.1}
	for i, w := range want {
		if out[i][0] != w || out[i][1] != w {
			t.Errorf("sample %d = %v, want stereo %v", i, out[i], w)
		}
	}
}
